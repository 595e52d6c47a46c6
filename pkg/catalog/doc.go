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

// Package catalog resolves a drink recipe dataset into a browsable catalog.
//
// A dataset holds reusable bases and recipes. A recipe may name a base with
// baseId; Reload expands each such recipe by merging the base underneath it
// and computes the set of categories:
//
//	ds := &catalog.Dataset{}
//	if err := yaml.Unmarshal(data, ds); err != nil {
//	    return err
//	}
//	c := catalog.Reload(ds)
//	lattes := c.Filter("Milk", "oat")
//
// Decoding is lenient. Optional lists that are missing or have the wrong
// shape decode as empty lists, and malformed entries inside them are
// dropped, so a single bad record never fails a load.
//
// Merge rules are documented on Expand. Filtering is documented on Matches.
//
// State carries the browsing session (category, query, open recipe) as an
// immutable value, and NewDetail turns a recipe into its display model.
package catalog
