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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDetailBuildOrders(t *testing.T) {
	r := Recipe{
		ID:       "oat-latte",
		Name:     "Oat Latte",
		Category: "Milk",
		Yields:   "12 oz",
		Families: Families{
			Measurements: Measurements{{Label: "Oat milk", Value: "240ml"}},
			CupPrep:      Strings{"Warm the cup"},
			BuildSteps:   Strings{"ignored"},
			BuildOrders: BuildOrders{
				{Title: "Hot", Steps: Strings{"Pull", "Pour"}},
				{Steps: Strings{"Stir"}},
			},
			CommonMistakes: Strings{"Overheating"},
		},
	}

	d := NewDetail(r)
	assert.Equal(t, "Oat Latte", d.Title)
	assert.Equal(t, "Milk • 12 oz", d.Subtitle)
	assert.Equal(t, r.Measurements, d.Measurements)
	assert.Equal(t, []Step{{ID: "cup-0", Text: "Warm the cup"}}, d.CupPrep)
	require.Len(t, d.Build, 2)
	assert.Equal(t, "Hot", d.Build[0].Title)
	assert.Equal(t, []Step{{ID: "build-0-0", Text: "Pull"}, {ID: "build-0-1", Text: "Pour"}}, d.Build[0].Steps)
	assert.Equal(t, DefaultBuildTitle, d.Build[1].Title)
	assert.Equal(t, []string{"Overheating"}, d.Mistakes)

	for _, sec := range d.Build {
		for _, st := range sec.Steps {
			assert.False(t, st.Checked)
		}
	}
}

func TestNewDetailBuildSteps(t *testing.T) {
	d := NewDetail(Recipe{Name: "Cold Brew", Category: "Cold", Families: Families{
		BuildSteps: Strings{"Grind", "Steep"},
	}})

	assert.Equal(t, "Cold", d.Subtitle)
	require.Len(t, d.Build, 1)
	assert.Equal(t, DefaultBuildTitle, d.Build[0].Title)
	assert.Equal(t, []Step{{ID: "build-0", Text: "Grind"}, {ID: "build-1", Text: "Steep"}}, d.Build[0].Steps)
	assert.Nil(t, d.Mistakes)
	assert.NotNil(t, d.Measurements)
	assert.NotNil(t, d.CupPrep)
}

func TestNewDetailEmpty(t *testing.T) {
	d := NewDetail(Recipe{})
	require.Len(t, d.Build, 1)
	assert.Empty(t, d.Build[0].Steps)
	assert.Empty(t, d.Subtitle)
}

func TestNewSummary(t *testing.T) {
	s := NewSummary(Recipe{ID: "a", Name: "A", Category: "C", Yields: "1 cup",
		Families: Families{Tags: Strings{"t1", "t2", "t3", "t4"}}})
	assert.Equal(t, []string{"t1", "t2", "t3"}, s.Tags)
	assert.Equal(t, "1 cup", s.Yields)

	assert.NotNil(t, NewSummary(Recipe{}).Tags)
}
