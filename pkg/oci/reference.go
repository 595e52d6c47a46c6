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
	"fmt"
	"strings"

	"github.com/distribution/reference"

	apperrors "github.com/mchmarny/brewbook/pkg/errors"
)

const (
	// URIScheme is the URI scheme for datasets stored in an OCI registry
	// (e.g., "oci://ghcr.io/org/recipes:v1").
	URIScheme = "oci://"

	// DefaultTag is used when a reference does not carry a tag.
	DefaultTag = "latest"
)

// Reference is a parsed oci:// dataset location.
type Reference struct {
	// Registry is the OCI registry host (e.g., "ghcr.io", "localhost:5000").
	Registry string
	// Repository is the repository path (e.g., "cafe/recipes").
	Repository string
	// Tag is the artifact tag. Empty means no tag was given.
	Tag string
}

// IsReference reports whether s uses the oci:// scheme.
func IsReference(s string) bool {
	return strings.HasPrefix(s, URIScheme)
}

// ParseReference parses an oci://registry/repository[:tag] URI.
func ParseReference(uri string) (*Reference, error) {
	if !IsReference(uri) {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"OCI reference must start with "+URIScheme, map[string]any{"reference": uri})
	}

	named, err := reference.ParseNormalizedNamed(strings.TrimPrefix(uri, URIScheme))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "invalid OCI reference", err)
	}

	ref := &Reference{
		Registry:   reference.Domain(named),
		Repository: reference.Path(named),
	}
	if tagged, ok := named.(reference.Tagged); ok {
		ref.Tag = tagged.Tag()
	}

	if err := validate(ref.Registry, ref.Repository); err != nil {
		return nil, err
	}
	return ref, nil
}

func validate(registry, repository string) error {
	if registry == "" {
		return apperrors.New(apperrors.ErrCodeInvalidRequest, "registry is required")
	}
	if repository == "" {
		return apperrors.New(apperrors.ErrCodeInvalidRequest, "repository is required")
	}
	return nil
}

// String returns the oci:// form of the reference.
func (r *Reference) String() string {
	return URIScheme + r.ImageReference()
}

// ImageReference returns the reference without the oci:// scheme.
func (r *Reference) ImageReference() string {
	if r.Tag == "" {
		return fmt.Sprintf("%s/%s", r.Registry, r.Repository)
	}
	return fmt.Sprintf("%s/%s:%s", r.Registry, r.Repository, r.Tag)
}

// Repo returns the registry/repository pair used to open a remote repository.
func (r *Reference) Repo() string {
	return fmt.Sprintf("%s/%s", r.Registry, r.Repository)
}

// WithTag returns a copy of the reference with the given tag.
func (r *Reference) WithTag(tag string) *Reference {
	cp := *r
	cp.Tag = tag
	return &cp
}

// TagOrDefault returns the tag, or DefaultTag when none was given.
func (r *Reference) TagOrDefault() string {
	if r.Tag == "" {
		return DefaultTag
	}
	return r.Tag
}
