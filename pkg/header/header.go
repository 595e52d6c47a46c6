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

package header

import (
	"time"
)

// APIVersion is the schema version stamped on every brewbook document.
const APIVersion = "brewbook.dev/v1"

// Kind represents the type of brewbook document.
type Kind string

// Valid Kind constants for all brewbook document types.
const (
	KindRecipeList    Kind = "RecipeList"
	KindRecipeDetail  Kind = "RecipeDetail"
	KindCategoryList  Kind = "CategoryList"
	KindPublishResult Kind = "PublishResult"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the Kind is one of the recognized kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindRecipeList, KindRecipeDetail, KindCategoryList, KindPublishResult:
		return true
	default:
		return false
	}
}

// Header contains the kind, version and metadata of a brewbook document.
type Header struct {
	Kind       Kind              `json:"kind,omitempty" yaml:"kind,omitempty"`
	APIVersion string            `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Option is a functional option for configuring Header instances.
type Option func(*Header)

// WithMetadata adds a metadata key-value pair to the Header.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// WithVersion records the tool version that produced the document.
// An empty version is not recorded.
func WithVersion(version string) Option {
	return func(h *Header) {
		if version == "" {
			return
		}
		WithMetadata("version", version)(h)
	}
}

// New creates a Header of the given kind stamped with the current API version
// and a UTC RFC3339 timestamp.
func New(kind Kind, opts ...Option) Header {
	h := Header{
		Kind:       kind,
		APIVersion: APIVersion,
		Metadata: map[string]string{
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		},
	}
	for _, opt := range opts {
		opt(&h)
	}
	return h
}

// GetKind returns the Kind field of the Header.
func (h Header) GetKind() Kind {
	return h.Kind
}

// GetMetadata returns the Metadata map of the Header.
func (h Header) GetMetadata() map[string]string {
	return h.Metadata
}
