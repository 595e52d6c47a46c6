// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package catalog

// State is the browsing state of a single session: the loaded catalog, the
// active category and query, the recipes they select and the recipe that is
// currently open. State is a value; every transition returns a new State and
// leaves the receiver untouched.
type State struct {
	catalog  *Catalog
	category string
	query    string
	visible  []Recipe
	current  *Recipe
}

// NewState returns the initial state for a catalog: every category, no
// query, nothing open.
func NewState(c *Catalog) State {
	s := State{catalog: c, category: AllCategories}
	s.visible = c.Filter(s.category, s.query)
	return s
}

// WithQuery returns a state with the query replaced and the visible recipes
// recomputed.
func (s State) WithQuery(query string) State {
	s.query = query
	s.visible = s.catalog.Filter(s.category, s.query)
	return s
}

// WithCategory returns a state with the category selector replaced and the
// visible recipes recomputed. An empty selector resets to AllCategories.
func (s State) WithCategory(category string) State {
	if category == "" {
		category = AllCategories
	}
	s.category = category
	s.visible = s.catalog.Filter(s.category, s.query)
	return s
}

// Open returns a state with the recipe of the given id open. When no recipe
// has that id the state is returned unchanged and found is false.
func (s State) Open(id string) (next State, found bool) {
	if s.catalog == nil {
		return s, false
	}
	r, ok := Lookup(s.catalog.Recipes, id)
	if !ok {
		return s, false
	}
	s.current = &r
	return s, true
}

// Close returns a state with no recipe open.
func (s State) Close() State {
	s.current = nil
	return s
}

// Catalog returns the catalog the state browses.
func (s State) Catalog() *Catalog { return s.catalog }

// Category returns the active category selector.
func (s State) Category() string { return s.category }

// Query returns the active query.
func (s State) Query() string { return s.query }

// Visible returns a copy of the recipes selected by the category and query.
func (s State) Visible() []Recipe {
	out := make([]Recipe, len(s.visible))
	copy(out, s.visible)
	return out
}

// Current returns the open recipe, if any.
func (s State) Current() (Recipe, bool) {
	if s.current == nil {
		return Recipe{}, false
	}
	return *s.current, true
}
