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

// Package header provides the common document header for brewbook output.
//
// Every document the CLI writes and every body the API returns starts with
// the same three fields so consumers can tell documents apart without
// inspecting their payload:
//
//	kind: RecipeList
//	apiVersion: brewbook.dev/v1
//	metadata:
//	  timestamp: "2026-01-12T09:30:00Z"
//	  version: v0.4.0
//
// Create a header with New and embed it inline:
//
//	type RecipeList struct {
//	    header.Header `json:",inline" yaml:",inline"`
//	    Recipes []catalog.Recipe `json:"recipes" yaml:"recipes"`
//	}
//
//	list := RecipeList{Header: header.New(header.KindRecipeList, header.WithVersion(version))}
package header
