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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const malformedJSON = `{
  "lastUpdated": "2026-01-12",
  "meta": {"notes": "house recipes"},
  "bases": [
    {"id": "espresso", "measurements": [{"label": "Dose", "value": "18g"}, "bogus", 7], "tags": ["classic", 3, null]},
    "not-a-base"
  ],
  "recipes": [
    {"id": "r1", "name": "Latte", "category": "Milk", "baseId": "espresso", "cupPrep": "warm cup", "glass": "tulip"},
    {"id": 42, "name": ["x"], "category": "Milk", "buildOrders": [{"title": "Hot", "steps": ["pull", 1]}, "x"]},
    17
  ]
}`

func TestDatasetDecodeJSONDefensive(t *testing.T) {
	var ds Dataset
	require.NoError(t, json.Unmarshal([]byte(malformedJSON), &ds))

	assert.Equal(t, "2026-01-12", ds.LastUpdated)
	assert.Equal(t, "house recipes", ds.Meta["notes"])

	require.Len(t, ds.Bases, 1)
	assert.Equal(t, Measurements{{Label: "Dose", Value: "18g"}}, ds.Bases[0].Measurements)
	assert.Equal(t, Strings{"classic"}, ds.Bases[0].Tags)

	require.Len(t, ds.Recipes, 2)
	assert.Empty(t, ds.Recipes[0].CupPrep)
	assert.Equal(t, "tulip", ds.Recipes[0].Extra["glass"])

	assert.Empty(t, ds.Recipes[1].ID)
	assert.Empty(t, ds.Recipes[1].Name)
	require.Len(t, ds.Recipes[1].BuildOrders, 1)
	assert.Equal(t, Strings{"pull"}, ds.Recipes[1].BuildOrders[0].Steps)
}

func TestDatasetDecodeYAMLDefensive(t *testing.T) {
	doc := `
lastUpdated: "2026-01-12"
bases:
  - id: espresso
    measurements:
      - label: Dose
        value: 18g
      - just a string
    cupPrep: nope
recipes:
  - id: r1
    name: Americano
    category: Espresso
    baseId: espresso
    tags: [hot, 1, {a: b}]
    garnish:
      type: none
`
	var ds Dataset
	require.NoError(t, yaml.Unmarshal([]byte(doc), &ds))

	require.Len(t, ds.Bases, 1)
	assert.Equal(t, Measurements{{Label: "Dose", Value: "18g"}}, ds.Bases[0].Measurements)
	assert.Empty(t, ds.Bases[0].CupPrep)

	require.Len(t, ds.Recipes, 1)
	assert.Equal(t, Strings{"hot"}, ds.Recipes[0].Tags)
	assert.Equal(t, map[string]any{"type": "none"}, ds.Recipes[0].Extra["garnish"])
}

func TestDatasetDecodeNonObject(t *testing.T) {
	var ds Dataset
	require.NoError(t, json.Unmarshal([]byte(`[1, 2, 3]`), &ds))
	assert.Empty(t, ds.Recipes)
	assert.Empty(t, ds.Bases)
}

func TestDatasetDecodeInvalid(t *testing.T) {
	var ds Dataset
	assert.Error(t, json.Unmarshal([]byte(`{"recipes": [`), &ds))
}

func TestFamilyTypesDecode(t *testing.T) {
	var s Strings
	require.NoError(t, json.Unmarshal([]byte(`{"a": 1}`), &s))
	assert.Empty(t, s)

	var m Measurements
	require.NoError(t, yaml.Unmarshal([]byte("- label: Milk\n  value: 120ml\n- 3\n"), &m))
	assert.Equal(t, Measurements{{Label: "Milk", Value: "120ml"}}, m)

	var b BuildOrders
	require.NoError(t, json.Unmarshal([]byte(`"oops"`), &b))
	assert.Empty(t, b)
}

func TestRecipeMarshalJSON(t *testing.T) {
	r := Recipe{ID: "r1", Name: "Latte", Category: "Milk"}

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, []any{}, out["tags"])
	assert.Equal(t, []any{}, out["measurements"])
	assert.NotContains(t, out, "baseId")
}

func TestRecipeMarshalExtra(t *testing.T) {
	r := Recipe{ID: "r1", Name: "Latte", Extra: map[string]any{"glass": "tulip", "name": "ignored"}}

	data, err := json.Marshal(r)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "tulip", out["glass"])
	assert.Equal(t, "Latte", out["name"])

	y, err := yaml.Marshal(r)
	require.NoError(t, err)
	var back Recipe
	require.NoError(t, yaml.Unmarshal(y, &back))
	assert.Equal(t, "r1", back.ID)
	assert.Equal(t, "tulip", back.Extra["glass"])
}
