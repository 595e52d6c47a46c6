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

package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/mchmarny/brewbook/pkg/catalog"
	apperrors "github.com/mchmarny/brewbook/pkg/errors"
	"github.com/mchmarny/brewbook/pkg/serializer"
	"github.com/mchmarny/brewbook/pkg/server"
)

// API routes.
const (
	PathRecipes    = "/v1/recipes"
	PathRecipe     = "/v1/recipes/{id}"
	PathCategories = "/v1/categories"
)

// Service serves the current catalog over HTTP. The catalog is replaced
// wholesale on every successful load; handlers always see a complete one.
type Service struct {
	location    string
	version     string
	cacheMaxAge int
	sourceOpts  []serializer.SourceOption
	onLoad      func(*catalog.Catalog)

	current atomic.Pointer[catalog.Catalog]
}

// ServiceOption is a functional option for configuring Service instances.
type ServiceOption func(*Service)

// WithServiceVersion sets the version stamped on response documents.
func WithServiceVersion(version string) ServiceOption {
	return func(s *Service) {
		s.version = version
	}
}

// WithCacheMaxAge sets Cache-Control max-age, in seconds, on catalog reads.
func WithCacheMaxAge(seconds int) ServiceOption {
	return func(s *Service) {
		s.cacheMaxAge = seconds
	}
}

// WithSourceOptions passes options through to the dataset loader.
func WithSourceOptions(opts ...serializer.SourceOption) ServiceOption {
	return func(s *Service) {
		s.sourceOpts = append(s.sourceOpts, opts...)
	}
}

// WithOnLoad registers a callback invoked after every successful load.
func WithOnLoad(fn func(*catalog.Catalog)) ServiceOption {
	return func(s *Service) {
		s.onLoad = fn
	}
}

// NewService creates a Service for the dataset at location. Nothing is
// loaded until Load is called.
func NewService(location string, opts ...ServiceOption) *Service {
	s := &Service{location: location}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Location returns the dataset location the service loads from.
func (s *Service) Location() string {
	return s.location
}

// Load fetches and resolves the dataset, then swaps it in. On failure the
// previously loaded catalog, if any, stays in place.
func (s *Service) Load(ctx context.Context) error {
	c, err := catalog.Load(ctx, s.location, s.sourceOpts...)
	if err != nil {
		return err
	}
	s.Set(c)
	return nil
}

// Set replaces the current catalog.
func (s *Service) Set(c *catalog.Catalog) {
	s.current.Store(c)
	if c == nil {
		return
	}
	datasetLastLoad.Set(float64(time.Now().Unix()))
	if s.onLoad != nil {
		s.onLoad(c)
	}
}

// Catalog returns the current catalog, or nil before the first load.
func (s *Service) Catalog() *catalog.Catalog {
	return s.current.Load()
}

// Handlers returns the API routes keyed by ServeMux pattern.
func (s *Service) Handlers() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		PathRecipes:    s.HandleRecipes,
		PathRecipe:     s.HandleRecipe,
		PathCategories: s.HandleCategories,
	}
}

// HandleRecipes handles GET /v1/recipes?category=&q=
func (s *Service) HandleRecipes(w http.ResponseWriter, r *http.Request) {
	c, ok := s.readable(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	doc := NewRecipeList(c, q.Get("category"), q.Get("q"), s.version)

	slog.Debug("recipes listed",
		"requestID", server.RequestID(r),
		"category", doc.Category,
		"query", doc.Query,
		"count", doc.Count)

	s.respond(w, doc)
}

// HandleRecipe handles GET /v1/recipes/{id}
func (s *Service) HandleRecipe(w http.ResponseWriter, r *http.Request) {
	c, ok := s.readable(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")
	recipe, err := c.Get(id)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "failed to get recipe", nil)
		return
	}

	s.respond(w, NewRecipeDetail(recipe, s.version))
}

// HandleCategories handles GET /v1/categories
func (s *Service) HandleCategories(w http.ResponseWriter, r *http.Request) {
	c, ok := s.readable(w, r)
	if !ok {
		return
	}
	s.respond(w, NewCategoryList(c, s.version))
}

// readable enforces GET and a loaded catalog.
func (s *Service) readable(w http.ResponseWriter, r *http.Request) (*catalog.Catalog, bool) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		server.WriteError(w, r, http.StatusMethodNotAllowed, apperrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{"method": r.Method})
		return nil, false
	}

	c := s.Catalog()
	if c == nil {
		server.WriteError(w, r, http.StatusServiceUnavailable, apperrors.ErrCodeUnavailable,
			"recipe catalog is not loaded", true, nil)
		return nil, false
	}
	return c, true
}

func (s *Service) respond(w http.ResponseWriter, doc any) {
	if s.cacheMaxAge > 0 {
		w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", s.cacheMaxAge))
	}
	serializer.RespondJSON(w, http.StatusOK, doc)
}
