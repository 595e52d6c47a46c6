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

import "maps"

// BaseIndex maps base ids to bases.
type BaseIndex map[string]Base

// IndexBases builds a lookup of bases by id. When two bases share an id the
// later one wins. Bases without an id are not indexed.
func IndexBases(bases []Base) BaseIndex {
	index := make(BaseIndex, len(bases))
	for _, b := range bases {
		if b.ID == "" {
			continue
		}
		index[b.ID] = b
	}
	return index
}

// Expand resolves a recipe against its base.
//
// A recipe without a base reference, or whose reference is not in the index,
// is returned as an unmodified copy. Otherwise the base is merged first and
// the recipe layered on top:
//
//   - scalar fields take the recipe value when the recipe sets them, even to
//     an empty string; scalars the recipe leaves out are inherited
//   - measurements merge by label: base order is kept, matching labels are
//     replaced in place and new labels are appended in recipe order
//   - cupPrep, buildSteps and buildOrders are replaced wholesale by the
//     recipe list when it is non-empty
//   - commonMistakes and tags are concatenated, base first, without dedup
//   - unknown fields merge key-wise with recipe keys overriding base keys
//
// Neither the base nor the recipe is modified.
func Expand(r Recipe, bases BaseIndex) Recipe {
	if r.BaseID == "" {
		return cloneRecipe(r)
	}
	base, ok := bases[r.BaseID]
	if !ok {
		return cloneRecipe(r)
	}

	return Recipe{
		ID:       r.scalar("id", r.ID, base.ID),
		Name:     r.scalar("name", r.Name, base.Name),
		Category: r.scalar("category", r.Category, base.Category),
		BaseID:   r.BaseID,
		Yields:   r.scalar("yields", r.Yields, base.Yields),
		Families: Families{
			Measurements:   mergeMeasurements(base.Measurements, r.Measurements),
			CupPrep:        replaceStrings(base.CupPrep, r.CupPrep),
			BuildSteps:     replaceStrings(base.BuildSteps, r.BuildSteps),
			BuildOrders:    replaceBuildOrders(base.BuildOrders, r.BuildOrders),
			CommonMistakes: concatStrings(base.CommonMistakes, r.CommonMistakes),
			Tags:           concatStrings(base.Tags, r.Tags),
		},
		Extra: mergeExtra(base.Extra, r.Extra),
	}
}

// mergeMeasurements layers overlay on top of base keyed by label. A label
// repeated within either list keeps its first position and takes the last
// value seen.
func mergeMeasurements(base, overlay Measurements) Measurements {
	merged := make(Measurements, 0, len(base)+len(overlay))
	index := make(map[string]int, len(base)+len(overlay))
	add := func(m Measurement) {
		if i, ok := index[m.Label]; ok {
			merged[i] = m
			return
		}
		index[m.Label] = len(merged)
		merged = append(merged, m)
	}
	for _, m := range base {
		add(m)
	}
	for _, m := range overlay {
		add(m)
	}
	return merged
}

func replaceStrings(base, overlay Strings) Strings {
	if len(overlay) > 0 {
		return cloneStrings(overlay)
	}
	if base == nil {
		return Strings{}
	}
	return cloneStrings(base)
}

func replaceBuildOrders(base, overlay BuildOrders) BuildOrders {
	if len(overlay) > 0 {
		return cloneBuildOrders(overlay)
	}
	if base == nil {
		return BuildOrders{}
	}
	return cloneBuildOrders(base)
}

func concatStrings(base, overlay Strings) Strings {
	out := make(Strings, 0, len(base)+len(overlay))
	out = append(out, base...)
	return append(out, overlay...)
}

func mergeExtra(base, overlay map[string]any) map[string]any {
	if len(base) == 0 && len(overlay) == 0 {
		return nil
	}
	out := make(map[string]any, len(base)+len(overlay))
	for k, v := range base {
		out[k] = cloneValue(v)
	}
	for k, v := range overlay {
		out[k] = cloneValue(v)
	}
	return out
}

// scalar returns the recipe's value for key when the recipe sets it and the
// inherited value otherwise.
func (r Recipe) scalar(key, value, inherited string) string {
	if value != "" || r.explicit[key] {
		return value
	}
	return inherited
}

// cloneRecipe duplicates every list and map reachable from r so callers
// cannot reach back into the source data.
func cloneRecipe(r Recipe) Recipe {
	out := r
	out.Measurements = cloneMeasurements(r.Measurements)
	out.CupPrep = cloneStrings(r.CupPrep)
	out.BuildSteps = cloneStrings(r.BuildSteps)
	out.BuildOrders = cloneBuildOrders(r.BuildOrders)
	out.CommonMistakes = cloneStrings(r.CommonMistakes)
	out.Tags = cloneStrings(r.Tags)
	out.Extra = mergeExtra(nil, r.Extra)
	out.explicit = maps.Clone(r.explicit)
	return out
}

func cloneStrings(s Strings) Strings {
	if s == nil {
		return nil
	}
	out := make(Strings, len(s))
	copy(out, s)
	return out
}

func cloneMeasurements(list Measurements) Measurements {
	if list == nil {
		return nil
	}
	out := make(Measurements, len(list))
	copy(out, list)
	return out
}

func cloneBuildOrders(list BuildOrders) BuildOrders {
	if list == nil {
		return nil
	}
	out := make(BuildOrders, len(list))
	for i, bo := range list {
		out[i] = BuildOrder{Title: bo.Title, Steps: cloneStrings(bo.Steps)}
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = cloneValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return val
	}
}
