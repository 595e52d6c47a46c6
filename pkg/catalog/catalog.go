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

import (
	"log/slog"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	apperrors "github.com/mchmarny/brewbook/pkg/errors"
)

// Catalog is the resolved, read-only view of a dataset. A new Catalog is
// built on every load and never modified afterwards.
type Catalog struct {
	LastUpdated string         `json:"lastUpdated,omitempty" yaml:"lastUpdated,omitempty"`
	Meta        map[string]any `json:"meta,omitempty" yaml:"meta,omitempty"`
	Categories  []string       `json:"categories" yaml:"categories"`
	Recipes     []Recipe       `json:"recipes" yaml:"recipes"`
}

// Reload resolves every recipe in the dataset against the dataset's bases
// and computes the category set. Recipes keep their dataset order. A nil
// dataset yields an empty catalog.
func Reload(ds *Dataset) *Catalog {
	start := time.Now()
	defer func() {
		reloadDuration.Observe(time.Since(start).Seconds())
	}()

	if ds == nil {
		ds = &Dataset{}
	}

	bases := IndexBases(ds.Bases)
	recipes := make([]Recipe, 0, len(ds.Recipes))
	for _, r := range ds.Recipes {
		if r.BaseID != "" {
			if _, ok := bases[r.BaseID]; !ok {
				danglingBases.Inc()
				slog.Warn("recipe references unknown base, using recipe as-is",
					"recipe", r.ID, "baseId", r.BaseID)
			}
		}
		recipes = append(recipes, Expand(r, bases))
	}

	c := &Catalog{
		LastUpdated: ds.LastUpdated,
		Meta:        mergeExtra(nil, ds.Meta),
		Categories:  Categories(recipes),
		Recipes:     recipes,
	}
	catalogRecipes.Set(float64(len(recipes)))

	slog.Debug("catalog reloaded",
		"bases", len(bases),
		"recipes", len(recipes),
		"categories", len(c.Categories))

	return c
}

// Lookup returns the first recipe with the given id.
func Lookup(recipes []Recipe, id string) (Recipe, bool) {
	for _, r := range recipes {
		if r.ID == id {
			return r, true
		}
	}
	return Recipe{}, false
}

// Categories returns the distinct non-empty categories of the recipes in
// collation order.
func Categories(recipes []Recipe) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, r := range recipes {
		if r.Category == "" || seen[r.Category] {
			continue
		}
		seen[r.Category] = true
		out = append(out, r.Category)
	}
	collate.New(language.English).SortStrings(out)
	return out
}

// Get returns the recipe with the given id or a NOT_FOUND error.
func (c *Catalog) Get(id string) (Recipe, error) {
	if c == nil {
		return Recipe{}, apperrors.New(apperrors.ErrCodeNotFound, "catalog not loaded")
	}
	r, ok := Lookup(c.Recipes, id)
	if !ok {
		return Recipe{}, apperrors.NewWithContext(apperrors.ErrCodeNotFound,
			"recipe not found", map[string]any{"id": id})
	}
	return r, nil
}

// Filter applies Filter to the catalog's recipes.
func (c *Catalog) Filter(category, query string) []Recipe {
	if c == nil {
		return []Recipe{}
	}
	return Filter(c.Recipes, category, query)
}
