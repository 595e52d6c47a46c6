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

// Package api serves a recipe catalog over HTTP.
//
// Routes (all GET):
//
//	/v1/recipes?category=&q=   filtered RecipeList
//	/v1/recipes/{id}           RecipeDetail, 404 NOT_FOUND on a miss
//	/v1/categories             CategoryList with per-category counts
//
// The current catalog lives behind an atomic pointer and is replaced in one
// step on every load. With watching enabled, changes to a local dataset file
// trigger a debounced reload; a reload that fails leaves the previous
// catalog in place.
//
// brewbookd reads BREWBOOK_DATASET, BREWBOOK_WATCH, PORT, LOG_LEVEL and
// SHUTDOWN_TIMEOUT_SECONDS from the environment.
package api
