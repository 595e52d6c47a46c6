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
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Strings is a list of text entries such as cup prep steps, build steps,
// common mistakes or tags. Decoding never fails on a wrong shape: anything
// that is not a list decodes as an empty list and non-string elements are
// dropped.
type Strings []string

// Measurement is a labeled quantity. The label is the merge key when a
// recipe is expanded against its base.
type Measurement struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Measurements is an ordered list of measurements. Entries that are not
// objects are dropped during decoding.
type Measurements []Measurement

// BuildOrder is a titled group of build steps.
type BuildOrder struct {
	Title string  `json:"title" yaml:"title"`
	Steps Strings `json:"steps" yaml:"steps"`
}

// BuildOrders is an ordered list of build order groups.
type BuildOrders []BuildOrder

// Families holds the optional list fields shared by bases and recipes.
type Families struct {
	Measurements   Measurements `json:"measurements" yaml:"measurements"`
	CupPrep        Strings      `json:"cupPrep" yaml:"cupPrep"`
	BuildSteps     Strings      `json:"buildSteps" yaml:"buildSteps"`
	BuildOrders    BuildOrders  `json:"buildOrders" yaml:"buildOrders"`
	CommonMistakes Strings      `json:"commonMistakes" yaml:"commonMistakes"`
	Tags           Strings      `json:"tags" yaml:"tags"`
}

// Base is a reusable template recipes inherit from by id.
type Base struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
	Yields   string `json:"yields,omitempty" yaml:"yields,omitempty"`

	Families `yaml:",inline"`

	// Extra holds fields the decoder does not know about.
	Extra map[string]any `json:"-" yaml:"-"`
}

// Recipe is a drink recipe. A raw recipe may reference a base through
// BaseID; a resolved recipe has had that base merged in by Expand.
type Recipe struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Category string `json:"category" yaml:"category"`
	BaseID   string `json:"baseId,omitempty" yaml:"baseId,omitempty"`
	Yields   string `json:"yields,omitempty" yaml:"yields,omitempty"`

	Families `yaml:",inline"`

	// Extra holds fields the decoder does not know about.
	Extra map[string]any `json:"-" yaml:"-"`

	// explicit records the scalar keys present in the decoded document, so
	// a key set to an empty value still overrides the base.
	explicit map[string]bool
}

// Dataset is the raw document a catalog is loaded from.
type Dataset struct {
	LastUpdated string         `json:"lastUpdated,omitempty" yaml:"lastUpdated,omitempty"`
	Meta        map[string]any `json:"meta,omitempty" yaml:"meta,omitempty"`
	Bases       []Base         `json:"bases" yaml:"bases"`
	Recipes     []Recipe       `json:"recipes" yaml:"recipes"`
}

var (
	scalarKeys = []string{"id", "name", "category", "yields"}
	familyKeys = []string{"measurements", "cupPrep", "buildSteps", "buildOrders", "commonMistakes", "tags"}
	baseKeys   = keySet(append([]string{"id", "name", "category", "yields"}, familyKeys...))
	recipeKeys = keySet(append([]string{"id", "name", "category", "baseId", "yields"}, familyKeys...))
)

func keySet(keys []string) map[string]bool {
	m := make(map[string]bool, len(keys))
	for _, k := range keys {
		m[k] = true
	}
	return m
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Strings) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = stringsFrom(raw)
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Strings) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*s = stringsFrom(raw)
	return nil
}

// MarshalJSON renders a nil list as an empty array.
func (s Strings) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(s))
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Measurements) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*m = measurementsFrom(raw)
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *Measurements) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*m = measurementsFrom(raw)
	return nil
}

// MarshalJSON renders a nil list as an empty array.
func (m Measurements) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Measurement(m))
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *BuildOrders) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*b = buildOrdersFrom(raw)
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (b *BuildOrders) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*b = buildOrdersFrom(raw)
	return nil
}

// MarshalJSON renders a nil list as an empty array.
func (b BuildOrders) MarshalJSON() ([]byte, error) {
	if b == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]BuildOrder(b))
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *Base) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*b = baseFrom(raw)
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (b *Base) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*b = baseFrom(raw)
	return nil
}

// MarshalJSON inlines Extra next to the known fields.
func (b Base) MarshalJSON() ([]byte, error) {
	type plain Base
	return marshalJSONWithExtra(plain(b), b.Extra)
}

// MarshalYAML inlines Extra next to the known fields.
func (b Base) MarshalYAML() (any, error) {
	type plain Base
	return marshalYAMLWithExtra(plain(b), b.Extra)
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Recipe) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = recipeFrom(raw)
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *Recipe) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*r = recipeFrom(raw)
	return nil
}

// MarshalJSON inlines Extra next to the known fields.
func (r Recipe) MarshalJSON() ([]byte, error) {
	type plain Recipe
	return marshalJSONWithExtra(plain(r), r.Extra)
}

// MarshalYAML inlines Extra next to the known fields.
func (r Recipe) MarshalYAML() (any, error) {
	type plain Recipe
	return marshalYAMLWithExtra(plain(r), r.Extra)
}

// UnmarshalJSON implements json.Unmarshaler. A document that parses but is
// not an object decodes as an empty dataset.
func (d *Dataset) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*d = datasetFrom(raw)
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Dataset) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*d = datasetFrom(raw)
	return nil
}

func datasetFrom(raw any) Dataset {
	var d Dataset
	obj, ok := asObject(raw)
	if !ok {
		return d
	}
	d.LastUpdated = stringFrom(obj["lastUpdated"])
	if meta, ok := asObject(obj["meta"]); ok {
		d.Meta = meta
	}
	if items, ok := obj["bases"].([]any); ok {
		d.Bases = make([]Base, 0, len(items))
		for _, item := range items {
			if _, ok := asObject(item); !ok {
				continue
			}
			d.Bases = append(d.Bases, baseFrom(item))
		}
	}
	if items, ok := obj["recipes"].([]any); ok {
		d.Recipes = make([]Recipe, 0, len(items))
		for _, item := range items {
			if _, ok := asObject(item); !ok {
				continue
			}
			d.Recipes = append(d.Recipes, recipeFrom(item))
		}
	}
	return d
}

func baseFrom(raw any) Base {
	obj, ok := asObject(raw)
	if !ok {
		return Base{}
	}
	return Base{
		ID:       stringFrom(obj["id"]),
		Name:     stringFrom(obj["name"]),
		Category: stringFrom(obj["category"]),
		Yields:   stringFrom(obj["yields"]),
		Families: familiesFrom(obj),
		Extra:    extraFrom(obj, baseKeys),
	}
}

func recipeFrom(raw any) Recipe {
	obj, ok := asObject(raw)
	if !ok {
		return Recipe{}
	}
	return Recipe{
		ID:       stringFrom(obj["id"]),
		Name:     stringFrom(obj["name"]),
		Category: stringFrom(obj["category"]),
		BaseID:   stringFrom(obj["baseId"]),
		Yields:   stringFrom(obj["yields"]),
		Families: familiesFrom(obj),
		Extra:    extraFrom(obj, recipeKeys),
		explicit: presentKeys(obj, scalarKeys),
	}
}

func presentKeys(obj map[string]any, keys []string) map[string]bool {
	var present map[string]bool
	for _, k := range keys {
		if _, ok := obj[k]; !ok {
			continue
		}
		if present == nil {
			present = make(map[string]bool, len(keys))
		}
		present[k] = true
	}
	return present
}

func familiesFrom(obj map[string]any) Families {
	return Families{
		Measurements:   measurementsFrom(obj["measurements"]),
		CupPrep:        stringsFrom(obj["cupPrep"]),
		BuildSteps:     stringsFrom(obj["buildSteps"]),
		BuildOrders:    buildOrdersFrom(obj["buildOrders"]),
		CommonMistakes: stringsFrom(obj["commonMistakes"]),
		Tags:           stringsFrom(obj["tags"]),
	}
}

func extraFrom(obj map[string]any, known map[string]bool) map[string]any {
	var extra map[string]any
	for k, v := range obj {
		if known[k] {
			continue
		}
		if extra == nil {
			extra = make(map[string]any)
		}
		extra[k] = v
	}
	return extra
}

func stringFrom(raw any) string {
	s, _ := raw.(string)
	return s
}

func stringsFrom(raw any) Strings {
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	out := make(Strings, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func measurementsFrom(raw any) Measurements {
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	out := make(Measurements, 0, len(items))
	for _, item := range items {
		obj, ok := asObject(item)
		if !ok {
			continue
		}
		out = append(out, Measurement{
			Label: stringFrom(obj["label"]),
			Value: stringFrom(obj["value"]),
		})
	}
	return out
}

func buildOrdersFrom(raw any) BuildOrders {
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	out := make(BuildOrders, 0, len(items))
	for _, item := range items {
		obj, ok := asObject(item)
		if !ok {
			continue
		}
		out = append(out, BuildOrder{
			Title: stringFrom(obj["title"]),
			Steps: stringsFrom(obj["steps"]),
		})
	}
	return out
}

// asObject returns raw as a string-keyed map. YAML mappings with
// non-string keys are converted by formatting their keys. Nested values
// are normalized the same way so the result always marshals to JSON.
func asObject(raw any) (map[string]any, bool) {
	switch v := raw.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = normalize(item)
		}
		return out, true
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[fmt.Sprint(k)] = normalize(item)
		}
		return out, true
	default:
		return nil, false
	}
}

func normalize(raw any) any {
	switch v := raw.(type) {
	case map[string]any, map[any]any:
		obj, _ := asObject(v)
		return obj
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalize(item)
		}
		return out
	default:
		return v
	}
}

func marshalJSONWithExtra(v any, extra map[string]any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil || len(extra) == 0 {
		return data, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("failed to merge extra fields: %w", err)
	}
	for k, val := range extra {
		if _, exists := fields[k]; exists {
			continue
		}
		encoded, err := json.Marshal(val)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal extra field %q: %w", k, err)
		}
		fields[k] = encoded
	}
	return json.Marshal(fields)
}

func marshalYAMLWithExtra(v any, extra map[string]any) (any, error) {
	if len(extra) == 0 {
		return v, nil
	}
	var node yaml.Node
	if err := node.Encode(v); err != nil {
		return nil, err
	}
	present := make(map[string]bool, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		present[node.Content[i].Value] = true
	}
	keys := make([]string, 0, len(extra))
	for k := range extra {
		if !present[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		var val yaml.Node
		if err := val.Encode(extra[k]); err != nil {
			return nil, fmt.Errorf("failed to encode extra field %q: %w", k, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&val,
		)
	}
	return &node, nil
}
