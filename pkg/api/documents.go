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

package api

import (
	"strconv"
	"strings"

	"github.com/mchmarny/brewbook/pkg/catalog"
	"github.com/mchmarny/brewbook/pkg/header"
	"github.com/mchmarny/brewbook/pkg/oci"
)

// RecipeList is the filtered recipe collection returned by list operations.
type RecipeList struct {
	header.Header `json:",inline" yaml:",inline"`

	LastUpdated string           `json:"lastUpdated,omitempty" yaml:"lastUpdated,omitempty"`
	Category    string           `json:"category" yaml:"category"`
	Query       string           `json:"query,omitempty" yaml:"query,omitempty"`
	Categories  []string         `json:"categories" yaml:"categories"`
	Count       int              `json:"count" yaml:"count"`
	Recipes     []catalog.Recipe `json:"recipes" yaml:"recipes"`
}

// NewRecipeList filters c by category and query. An empty category selects all.
func NewRecipeList(c *catalog.Catalog, category, query, version string) *RecipeList {
	if category == "" {
		category = catalog.AllCategories
	}

	recipes := c.Filter(category, query)
	l := &RecipeList{
		Header:     header.New(header.KindRecipeList, header.WithVersion(version)),
		Category:   category,
		Query:      strings.TrimSpace(query),
		Categories: []string{},
		Count:      len(recipes),
		Recipes:    recipes,
	}
	if c != nil {
		l.LastUpdated = c.LastUpdated
		l.Categories = c.Categories
	}
	return l
}

// TableRows implements serializer.Tabular.
func (l RecipeList) TableRows() ([]string, [][]string) {
	rows := make([][]string, 0, len(l.Recipes))
	for _, r := range l.Recipes {
		s := catalog.NewSummary(r)
		rows = append(rows, []string{s.ID, s.Name, s.Category, s.Yields, strings.Join(s.Tags, ", ")})
	}
	return []string{"ID", "NAME", "CATEGORY", "YIELDS", "TAGS"}, rows
}

// RecipeDetail is a single resolved recipe prepared for display.
type RecipeDetail struct {
	header.Header  `json:",inline" yaml:",inline"`
	catalog.Detail `json:",inline" yaml:",inline"`

	Category string   `json:"category" yaml:"category"`
	Yields   string   `json:"yields,omitempty" yaml:"yields,omitempty"`
	Tags     []string `json:"tags" yaml:"tags"`
}

// NewRecipeDetail builds the detail document for r.
func NewRecipeDetail(r catalog.Recipe, version string) *RecipeDetail {
	tags := []string{}
	tags = append(tags, r.Tags...)
	return &RecipeDetail{
		Header:   header.New(header.KindRecipeDetail, header.WithVersion(version)),
		Detail:   catalog.NewDetail(r),
		Category: r.Category,
		Yields:   r.Yields,
		Tags:     tags,
	}
}

// TableRows implements serializer.Tabular.
func (d RecipeDetail) TableRows() ([]string, [][]string) {
	rows := [][]string{
		{"recipe", d.ID, d.Title},
		{"subtitle", "", d.Subtitle},
	}
	for _, m := range d.Measurements {
		rows = append(rows, []string{"measurement", m.Label, m.Value})
	}
	for i, s := range d.CupPrep {
		rows = append(rows, []string{"cup prep", strconv.Itoa(i + 1), s.Text})
	}
	for _, sec := range d.Build {
		for i, s := range sec.Steps {
			rows = append(rows, []string{sec.Title, strconv.Itoa(i + 1), s.Text})
		}
	}
	for _, m := range d.Mistakes {
		rows = append(rows, []string{"mistake", "", m})
	}
	if len(d.Tags) > 0 {
		rows = append(rows, []string{"tags", "", strings.Join(d.Tags, ", ")})
	}
	return []string{"SECTION", "ITEM", "VALUE"}, rows
}

// CategoryCount is one entry of a CategoryList.
type CategoryCount struct {
	Name    string `json:"name" yaml:"name"`
	Recipes int    `json:"recipes" yaml:"recipes"`
}

// CategoryList enumerates the categories of a catalog in display order.
type CategoryList struct {
	header.Header `json:",inline" yaml:",inline"`

	LastUpdated string          `json:"lastUpdated,omitempty" yaml:"lastUpdated,omitempty"`
	Categories  []CategoryCount `json:"categories" yaml:"categories"`
}

// NewCategoryList counts the recipes of each category in c.
func NewCategoryList(c *catalog.Catalog, version string) *CategoryList {
	l := &CategoryList{
		Header:     header.New(header.KindCategoryList, header.WithVersion(version)),
		Categories: []CategoryCount{},
	}
	if c == nil {
		return l
	}

	l.LastUpdated = c.LastUpdated
	counts := make(map[string]int, len(c.Categories))
	for _, r := range c.Recipes {
		counts[r.Category]++
	}
	for _, name := range c.Categories {
		l.Categories = append(l.Categories, CategoryCount{Name: name, Recipes: counts[name]})
	}
	return l
}

// TableRows implements serializer.Tabular.
func (l CategoryList) TableRows() ([]string, [][]string) {
	rows := make([][]string, 0, len(l.Categories))
	for _, c := range l.Categories {
		rows = append(rows, []string{c.Name, strconv.Itoa(c.Recipes)})
	}
	return []string{"CATEGORY", "RECIPES"}, rows
}

// PublishResult reports where a dataset was published.
type PublishResult struct {
	header.Header `json:",inline" yaml:",inline"`

	Reference string `json:"reference" yaml:"reference"`
	Digest    string `json:"digest" yaml:"digest"`
	Recipes   int    `json:"recipes" yaml:"recipes"`
}

// NewPublishResult wraps an OCI push result.
func NewPublishResult(res *oci.PushResult, recipes int, version string) *PublishResult {
	return &PublishResult{
		Header:    header.New(header.KindPublishResult, header.WithVersion(version)),
		Reference: res.Reference,
		Digest:    res.Digest,
		Recipes:   recipes,
	}
}

// TableRows implements serializer.Tabular.
func (p PublishResult) TableRows() ([]string, [][]string) {
	return []string{"REFERENCE", "DIGEST", "RECIPES"},
		[][]string{{p.Reference, p.Digest, strconv.Itoa(p.Recipes)}}
}
