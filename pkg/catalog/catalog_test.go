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
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	apperrors "github.com/mchmarny/brewbook/pkg/errors"
)

func loadTestdata(t *testing.T) *Dataset {
	t.Helper()
	data, err := os.ReadFile("testdata/recipes.yaml")
	require.NoError(t, err)
	var ds Dataset
	require.NoError(t, yaml.Unmarshal(data, &ds))
	return &ds
}

func TestReload(t *testing.T) {
	c := Reload(loadTestdata(t))

	assert.Equal(t, "2026-01-12", c.LastUpdated)
	assert.Equal(t, "Dial in every morning before service.", c.Meta["notes"])
	assert.Equal(t, []string{"americano", "oat-latte", "cold-brew", "hojicha"}, ids(c.Recipes))
	assert.Equal(t, []string{"Cold", "Espresso", "Milk", "Tea"}, c.Categories)

	americano, ok := Lookup(c.Recipes, "americano")
	require.True(t, ok)
	assert.Equal(t, Measurements{
		{Label: "Dose", Value: "18g"},
		{Label: "Yield", Value: "36g"},
		{Label: "Time", Value: "27-30s"},
		{Label: "Water", Value: "150ml"},
	}, americano.Measurements)
	assert.Equal(t, Strings{"classic", "hot"}, americano.Tags)
	assert.Equal(t, Strings{"Warm the cup with hot water"}, americano.CupPrep)

	latte, ok := Lookup(c.Recipes, "oat-latte")
	require.True(t, ok)
	require.Len(t, latte.BuildOrders, 2)
	assert.Equal(t, Strings{"Uneven tamp causes channeling", "Overheating the oat milk"}, latte.CommonMistakes)

	hojicha, ok := Lookup(c.Recipes, "hojicha")
	require.True(t, ok)
	assert.Empty(t, hojicha.Measurements)
	assert.Equal(t, Strings{"roasted"}, hojicha.Tags)
}

func TestReloadIdempotent(t *testing.T) {
	ds := loadTestdata(t)
	assert.Equal(t, Reload(ds), Reload(ds))
}

func TestReloadNil(t *testing.T) {
	c := Reload(nil)
	require.NotNil(t, c)
	assert.Empty(t, c.Recipes)
	assert.Empty(t, c.Categories)
}

func TestCategories(t *testing.T) {
	recipes := []Recipe{
		{Category: "Tea"},
		{Category: ""},
		{Category: "espresso"},
		{Category: "Cold"},
		{Category: "Tea"},
	}
	assert.Equal(t, []string{"Cold", "espresso", "Tea"}, Categories(recipes))
	assert.NotNil(t, Categories(nil))
}

func TestCategoriesCaseVariants(t *testing.T) {
	got := Categories([]Recipe{{Category: "milk"}, {Category: "Milk"}})
	assert.ElementsMatch(t, []string{"milk", "Milk"}, got)
}

func TestLookupFirstMatch(t *testing.T) {
	recipes := []Recipe{{ID: "a", Name: "first"}, {ID: "a", Name: "second"}}
	r, ok := Lookup(recipes, "a")
	require.True(t, ok)
	assert.Equal(t, "first", r.Name)

	_, ok = Lookup(recipes, "b")
	assert.False(t, ok)
}

func TestCatalogGet(t *testing.T) {
	c := Reload(loadTestdata(t))

	r, err := c.Get("cold-brew")
	require.NoError(t, err)
	assert.Equal(t, "Cold Brew", r.Name)

	_, err = c.Get("nope")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeNotFound))

	var nilCatalog *Catalog
	_, err = nilCatalog.Get("x")
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeNotFound))
	assert.Empty(t, nilCatalog.Filter(AllCategories, ""))
}
