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
	"strings"
)

// AllCategories is the category selector that matches every recipe.
const AllCategories = "all"

// Filter returns the recipes that pass both the category and the query
// predicates, in input order. The input is not modified.
func Filter(recipes []Recipe, category, query string) []Recipe {
	out := make([]Recipe, 0, len(recipes))
	for _, r := range recipes {
		if Matches(r, category, query) {
			out = append(out, r)
		}
	}
	filterResults.WithLabelValues(resultLabel(len(out))).Inc()
	return out
}

// Matches reports whether a single recipe passes the category selector and
// the free-text query.
//
// The category must equal the selector exactly unless the selector is
// AllCategories. An empty selector only matches recipes without a category;
// callers that treat it as every category default it themselves. A blank
// query matches everything; otherwise the trimmed, lower-cased query must be
// a substring of the recipe's search text.
func Matches(r Recipe, category, query string) bool {
	return matchesCategory(r, category) && matchesQuery(r, query)
}

func matchesCategory(r Recipe, category string) bool {
	if category == AllCategories {
		return true
	}
	return r.Category == category
}

func matchesQuery(r Recipe, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(strings.TrimSpace(SearchText(r))), q)
}

// SearchText returns the text a query is matched against: name, category,
// tags, each measurement as "label value", cup prep, build steps, the steps
// of every build order, and common mistakes, joined by single spaces. Build
// order titles are display headings and are not searched.
func SearchText(r Recipe) string {
	parts := make([]string, 0, 2+len(r.Tags)+len(r.Measurements)+len(r.CupPrep)+
		len(r.BuildSteps)+len(r.CommonMistakes))
	parts = append(parts, r.Name, r.Category)
	parts = append(parts, r.Tags...)
	for _, m := range r.Measurements {
		parts = append(parts, m.Label+" "+m.Value)
	}
	parts = append(parts, r.CupPrep...)
	parts = append(parts, r.BuildSteps...)
	for _, bo := range r.BuildOrders {
		parts = append(parts, bo.Steps...)
	}
	parts = append(parts, r.CommonMistakes...)
	return strings.Join(parts, " ")
}

func resultLabel(n int) string {
	if n == 0 {
		return "empty"
	}
	return "match"
}
