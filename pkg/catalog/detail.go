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
	"fmt"
)

const (
	// DefaultBuildTitle titles a build group that has no title of its own.
	DefaultBuildTitle = "Build order"

	subtitleSeparator = " • "
	summaryTagLimit   = 3
)

// Step is a single checklist entry. Steps always start unchecked.
type Step struct {
	ID      string `json:"id" yaml:"id"`
	Text    string `json:"text" yaml:"text"`
	Checked bool   `json:"checked" yaml:"checked"`
}

// BuildSection is a titled checklist of build steps.
type BuildSection struct {
	Title string `json:"title" yaml:"title"`
	Steps []Step `json:"steps" yaml:"steps"`
}

// Detail is the display model of one resolved recipe.
type Detail struct {
	ID           string         `json:"id" yaml:"id"`
	Title        string         `json:"title" yaml:"title"`
	Subtitle     string         `json:"subtitle" yaml:"subtitle"`
	Measurements Measurements   `json:"measurements" yaml:"measurements"`
	CupPrep      []Step         `json:"cupPrep" yaml:"cupPrep"`
	Build        []BuildSection `json:"build" yaml:"build"`
	Mistakes     []string       `json:"commonMistakes,omitempty" yaml:"commonMistakes,omitempty"`
}

// Summary is the list-card model of one resolved recipe.
type Summary struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Category string   `json:"category" yaml:"category"`
	Yields   string   `json:"yields" yaml:"yields"`
	Tags     []string `json:"tags" yaml:"tags"`
}

// NewDetail builds the detail model for a recipe. Build groups come from
// BuildOrders when present, otherwise from BuildSteps as a single group.
func NewDetail(r Recipe) Detail {
	d := Detail{
		ID:           r.ID,
		Title:        r.Name,
		Subtitle:     subtitle(r),
		Measurements: cloneMeasurements(r.Measurements),
		CupPrep:      checklist("cup", r.CupPrep),
		Build:        buildSections(r),
	}
	if d.Measurements == nil {
		d.Measurements = Measurements{}
	}
	if len(r.CommonMistakes) > 0 {
		d.Mistakes = cloneStrings(r.CommonMistakes)
	}
	return d
}

// NewSummary builds the list-card model for a recipe. Only the first few
// tags are kept.
func NewSummary(r Recipe) Summary {
	tags := r.Tags
	if len(tags) > summaryTagLimit {
		tags = tags[:summaryTagLimit]
	}
	return Summary{
		ID:       r.ID,
		Name:     r.Name,
		Category: r.Category,
		Yields:   r.Yields,
		Tags:     append([]string{}, tags...),
	}
}

func subtitle(r Recipe) string {
	if r.Yields == "" {
		return r.Category
	}
	return r.Category + subtitleSeparator + r.Yields
}

func buildSections(r Recipe) []BuildSection {
	if len(r.BuildOrders) > 0 {
		sections := make([]BuildSection, 0, len(r.BuildOrders))
		for i, bo := range r.BuildOrders {
			title := bo.Title
			if title == "" {
				title = DefaultBuildTitle
			}
			sections = append(sections, BuildSection{
				Title: title,
				Steps: checklist(fmt.Sprintf("build-%d", i), bo.Steps),
			})
		}
		return sections
	}
	return []BuildSection{{
		Title: DefaultBuildTitle,
		Steps: checklist("build", r.BuildSteps),
	}}
}

func checklist(prefix string, steps Strings) []Step {
	out := make([]Step, 0, len(steps))
	for i, s := range steps {
		out = append(out, Step{ID: fmt.Sprintf("%s-%d", prefix, i), Text: s})
	}
	return out
}
