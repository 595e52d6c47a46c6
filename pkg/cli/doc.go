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

// Package cli implements the brewbook command line interface.
//
// # Commands
//
// list - List resolved recipes:
//
//	brewbook list --dataset recipes.yaml [--category Espresso] [--query oat]
//
// show - Show one recipe with its measurements, cup prep and build steps:
//
//	brewbook show americano --dataset recipes.yaml --format table
//
// categories - List categories with recipe counts:
//
//	brewbook categories --dataset recipes.yaml
//
// publish - Push a local dataset file to an OCI registry:
//
//	brewbook publish --dataset recipes.yaml --target oci://ghcr.io/acme/recipes:v1
//
// serve - Run the catalog HTTP API:
//
//	brewbook serve --dataset recipes.yaml --watch
//
// # Dataset Sources
//
// --dataset (or BREWBOOK_DATASET) accepts a file path, an HTTP(S) URL, a
// ConfigMap URI (cm://namespace/name), an OCI reference
// (oci://registry/repo:tag) or - for standard input.
//
// # Output
//
//	--output, -o   file path or cm://namespace/name (default: stdout)
//	--format, -t   yaml, json or table (default: yaml)
//	--log-level    debug, info, warn or error (LOG_LEVEL)
//
// A recipe that does not exist, an unreadable dataset or an invalid flag
// ends the command with exit status 1.
package cli
