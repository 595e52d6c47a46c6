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

// Package oci publishes and fetches recipe datasets as OCI artifacts.
//
// A dataset is stored as a single-layer artifact. The layer carries the raw
// JSON or YAML document and is annotated with its file name so the reader
// can pick the right decoder.
//
// # Usage
//
// Publish a dataset file:
//
//	ref, err := oci.ParseReference("oci://ghcr.io/cafe/recipes:v3")
//	if err != nil {
//	    return err
//	}
//	res, err := oci.Push(ctx, oci.PushOptions{
//	    Path:      "recipes.yaml",
//	    Reference: ref,
//	})
//
// Fetch it back:
//
//	art, err := oci.Pull(ctx, ref, oci.RegistryOptions{})
//	// art.Name == "recipes.yaml", art.Data holds the document
//
// # Authentication
//
// Credentials are loaded from the standard Docker configuration
// (~/.docker/config.json) using the ORAS credentials package. Without
// credentials the registry is accessed anonymously.
//
// # Artifact Type
//
// Artifacts use the artifact type "application/vnd.brewbook.dataset.v1"
// with layer media types ending in +json or +yaml.
package oci
