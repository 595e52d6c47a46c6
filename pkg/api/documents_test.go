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
	"encoding/json"
	"testing"

	"github.com/mchmarny/brewbook/pkg/header"
	"github.com/mchmarny/brewbook/pkg/oci"
	"github.com/mchmarny/brewbook/pkg/serializer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecipeList(t *testing.T) {
	c := testCatalog(t)

	t.Run("empty category selects all", func(t *testing.T) {
		l := NewRecipeList(c, "", "", "1.0.0")
		assert.Equal(t, header.KindRecipeList, l.Kind)
		assert.Equal(t, "all", l.Category)
		assert.Equal(t, 3, l.Count)
		assert.Equal(t, "2026-01-12", l.LastUpdated)
		assert.Equal(t, []string{"Espresso", "Milk", "Tea"}, l.Categories)
		assert.Equal(t, "1.0.0", l.Metadata["version"])
	})

	t.Run("category and query", func(t *testing.T) {
		l := NewRecipeList(c, "all", " DOSE ", "")
		require.Len(t, l.Recipes, 1)
		assert.Equal(t, "americano", l.Recipes[0].ID)
		assert.Equal(t, "DOSE", l.Query)
	})

	t.Run("no match is an empty list", func(t *testing.T) {
		l := NewRecipeList(c, "Tea", "dose", "")
		assert.NotNil(t, l.Recipes)
		assert.Zero(t, l.Count)
	})

	t.Run("nil catalog", func(t *testing.T) {
		l := NewRecipeList(nil, "", "", "")
		assert.NotNil(t, l.Recipes)
		assert.NotNil(t, l.Categories)
	})
}

func TestRecipeListJSON(t *testing.T) {
	l := NewRecipeList(testCatalog(t), "Espresso", "", "")

	data, err := json.Marshal(l)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "RecipeList", got["kind"])
	assert.Equal(t, header.APIVersion, got["apiVersion"])
	assert.Equal(t, "Espresso", got["category"])
	recipes, ok := got["recipes"].([]any)
	require.True(t, ok)
	require.Len(t, recipes, 1)
}

func TestRecipeListTableRows(t *testing.T) {
	l := NewRecipeList(testCatalog(t), "", "", "")
	hdr, rows := l.TableRows()
	assert.Equal(t, []string{"ID", "NAME", "CATEGORY", "YIELDS", "TAGS"}, hdr)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"americano", "Americano", "Espresso", "", "classic, hot"}, rows[0])

	out, err := serializer.Marshal(serializer.FormatTable, l)
	require.NoError(t, err)
	assert.Contains(t, string(out), "Oat Latte")
}

func TestNewRecipeDetail(t *testing.T) {
	c := testCatalog(t)
	r, err := c.Get("oat-latte")
	require.NoError(t, err)

	d := NewRecipeDetail(r, "")
	assert.Equal(t, header.KindRecipeDetail, d.Kind)
	assert.Equal(t, "Oat Latte", d.Title)
	assert.Equal(t, "Milk • 1 cup", d.Subtitle)
	require.Len(t, d.Build, 2)
	assert.Equal(t, "Iced", d.Build[1].Title)
	assert.NotNil(t, d.Tags)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "RecipeDetail", got["kind"])
	assert.Equal(t, "oat-latte", got["id"])
	assert.Equal(t, "Milk", got["category"])

	hdr, rows := d.TableRows()
	assert.Equal(t, []string{"SECTION", "ITEM", "VALUE"}, hdr)
	assert.Contains(t, rows, []string{"Hot", "1", "Steam oat milk"})
}

func TestRecipeDetailYAMLInline(t *testing.T) {
	c := testCatalog(t)
	r, err := c.Get("americano")
	require.NoError(t, err)

	out, err := serializer.Marshal(serializer.FormatYAML, NewRecipeDetail(r, ""))
	require.NoError(t, err)
	assert.Contains(t, string(out), "kind: RecipeDetail")
	assert.Contains(t, string(out), "title: Americano")
}

func TestNewCategoryList(t *testing.T) {
	l := NewCategoryList(testCatalog(t), "")
	assert.Equal(t, header.KindCategoryList, l.Kind)
	assert.Equal(t, []CategoryCount{
		{Name: "Espresso", Recipes: 1},
		{Name: "Milk", Recipes: 1},
		{Name: "Tea", Recipes: 1},
	}, l.Categories)

	empty := NewCategoryList(nil, "")
	assert.NotNil(t, empty.Categories)
	assert.Empty(t, empty.Categories)
}

func TestNewPublishResult(t *testing.T) {
	p := NewPublishResult(&oci.PushResult{
		Digest:    "sha256:abc",
		Reference: "ghcr.io/acme/recipes:v1",
	}, 3, "1.0.0")

	assert.Equal(t, header.KindPublishResult, p.Kind)
	hdr, rows := p.TableRows()
	assert.Equal(t, []string{"REFERENCE", "DIGEST", "RECIPES"}, hdr)
	assert.Equal(t, [][]string{{"ghcr.io/acme/recipes:v1", "sha256:abc", "3"}}, rows)
}
