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

package oci

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	ociv1 "github.com/opencontainers/image-spec/specs-go/v1"
	oras "oras.land/oras-go/v2"
	"oras.land/oras-go/v2/content"

	"github.com/mchmarny/brewbook/pkg/defaults"
)

const (
	// ArtifactType is the artifact type of a published recipe dataset.
	ArtifactType = "application/vnd.brewbook.dataset.v1"

	// MediaTypeDatasetJSON is the layer media type of a JSON dataset.
	MediaTypeDatasetJSON = "application/vnd.brewbook.dataset.v1+json"

	// MediaTypeDatasetYAML is the layer media type of a YAML dataset.
	MediaTypeDatasetYAML = "application/vnd.brewbook.dataset.v1+yaml"
)

// Artifact is a dataset fetched from a registry.
type Artifact struct {
	// Name is the file name the dataset was published under.
	Name string
	// MediaType is the layer media type.
	MediaType string
	// Digest is the digest of the manifest the dataset was resolved from.
	Digest string
	// Data is the raw dataset document.
	Data []byte
}

// MediaTypeFor returns the layer media type for a dataset file name.
func MediaTypeFor(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return MediaTypeDatasetYAML
	default:
		return MediaTypeDatasetJSON
	}
}

// packDataset stores data as a single-layer artifact in target and tags the
// manifest.
func packDataset(ctx context.Context, target oras.Target, name string, data []byte, tag string, annotations map[string]string) (ociv1.Descriptor, error) {
	layer, err := oras.PushBytes(ctx, target, MediaTypeFor(name), data)
	if err != nil {
		return ociv1.Descriptor{}, fmt.Errorf("failed to push dataset layer: %w", err)
	}
	layer.Annotations = map[string]string{ociv1.AnnotationTitle: name}

	manifest, err := oras.PackManifest(ctx, target, oras.PackManifestVersion1_1, ArtifactType,
		oras.PackManifestOptions{
			Layers:              []ociv1.Descriptor{layer},
			ManifestAnnotations: annotations,
		})
	if err != nil {
		return ociv1.Descriptor{}, fmt.Errorf("failed to pack manifest: %w", err)
	}

	if err := target.Tag(ctx, manifest, tag); err != nil {
		return ociv1.Descriptor{}, fmt.Errorf("failed to tag manifest: %w", err)
	}
	return manifest, nil
}

// fetchDataset resolves ref in target and returns the dataset layer.
func fetchDataset(ctx context.Context, target oras.ReadOnlyTarget, ref string) (*Artifact, error) {
	desc, raw, err := oras.FetchBytes(ctx, target, ref, oras.DefaultFetchBytesOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch manifest %q: %w", ref, err)
	}

	var manifest ociv1.Manifest
	if err := json.Unmarshal(raw, &manifest); err != nil {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}

	layer, ok := datasetLayer(manifest.Layers)
	if !ok {
		return nil, fmt.Errorf("artifact %q has no layers", ref)
	}
	if layer.Size > defaults.DatasetFetchMaxBytes {
		return nil, fmt.Errorf("dataset layer is %d bytes, limit is %d", layer.Size, defaults.DatasetFetchMaxBytes)
	}

	data, err := content.FetchAll(ctx, target, layer)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dataset layer: %w", err)
	}

	name := layer.Annotations[ociv1.AnnotationTitle]
	if name == "" {
		name = "dataset.json"
		if layer.MediaType == MediaTypeDatasetYAML {
			name = "dataset.yaml"
		}
	}

	return &Artifact{
		Name:      name,
		MediaType: layer.MediaType,
		Digest:    desc.Digest.String(),
		Data:      data,
	}, nil
}

// datasetLayer picks the first layer with a dataset media type, falling back
// to the first layer.
func datasetLayer(layers []ociv1.Descriptor) (ociv1.Descriptor, bool) {
	for _, l := range layers {
		if l.MediaType == MediaTypeDatasetJSON || l.MediaType == MediaTypeDatasetYAML {
			return l, true
		}
	}
	if len(layers) > 0 {
		return layers[0], true
	}
	return ociv1.Descriptor{}, false
}
