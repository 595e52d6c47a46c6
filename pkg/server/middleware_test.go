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

package server

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/mchmarny/brewbook/pkg/errors"
)

const recipePattern = "/v1/recipes/{id}"

// newRecipeServer routes a single recipe handler through the full chain.
func newRecipeServer(t *testing.T, cfg *Config, h http.HandlerFunc) http.Handler {
	t.Helper()
	if cfg == nil {
		cfg = NewConfig()
	}
	s := New(WithConfig(cfg), WithHandler(map[string]http.HandlerFunc{recipePattern: h}))
	return s.Handler()
}

func decodeErrorResponse(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// captureLogs routes the default slog logger into a buffer for the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func logEntries(t *testing.T, buf *bytes.Buffer, msg string) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		if entry["msg"] == msg {
			out = append(out, entry)
		}
	}
	return out
}

func TestRequestIDMiddleware(t *testing.T) {
	valid := uuid.New().String()

	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{"generated when missing", "", false},
		{"client id kept", valid, true},
		{"invalid id replaced", "americano-123", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			h := newRecipeServer(t, nil, func(w http.ResponseWriter, r *http.Request) {
				seen = RequestID(r)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/v1/recipes/americano", nil)
			if tt.incoming != "" {
				req.Header.Set(headerRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			_, err := uuid.Parse(seen)
			require.NoError(t, err)
			assert.Equal(t, seen, rec.Header().Get(headerRequestID))
			if tt.keep {
				assert.Equal(t, tt.incoming, seen)
			} else {
				assert.NotEqual(t, tt.incoming, seen)
			}
		})
	}
}

func TestVersionMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		accept string
		want   string
	}{
		{"no accept header", "", DefaultAPIVersion},
		{"vendor media type", "application/vnd.brewbook.v1+json", "v1"},
		{"unsupported version falls back", "application/vnd.brewbook.v9+json", DefaultAPIVersion},
		{"plain json", "application/json", DefaultAPIVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var inContext string
			h := newRecipeServer(t, nil, func(w http.ResponseWriter, r *http.Request) {
				inContext, _ = r.Context().Value(contextKeyAPIVersion).(string)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/v1/recipes/americano", nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Header().Get("X-API-Version"))
			assert.Equal(t, tt.want, inContext)
		})
	}
}

func TestRateLimitMiddlewareAllows(t *testing.T) {
	h := newRecipeServer(t, nil, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/recipes/americano", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "100", rec.Header().Get("X-RateLimit-Limit"))
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Reset"))
}

func TestRateLimitMiddlewareRejects(t *testing.T) {
	cfg := NewConfig()
	cfg.RateLimit = 0
	cfg.RateLimitBurst = 0

	called := false
	h := newRecipeServer(t, cfg, func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/recipes/americano", nil))

	assert.False(t, called)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))

	body := decodeErrorResponse(t, rec)
	assert.Equal(t, string(apperrors.ErrCodeRateLimitExceeded), body.Code)
	assert.True(t, body.Retryable)
	assert.Equal(t, rec.Header().Get(headerRequestID), body.RequestID)
	assert.Contains(t, body.Details, "limit")
	assert.Contains(t, body.Details, "burst")
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"string panic", "measurements missing"},
		{"error panic", apperrors.New(apperrors.ErrCodeInternal, "bad base")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := captureLogs(t)
			h := newRecipeServer(t, nil, func(w http.ResponseWriter, r *http.Request) {
				panic(tt.value)
			})

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/recipes/americano", nil))

			require.Equal(t, http.StatusInternalServerError, rec.Code)
			body := decodeErrorResponse(t, rec)
			assert.Equal(t, string(apperrors.ErrCodeInternal), body.Code)
			assert.True(t, body.Retryable)
			assert.Equal(t, rec.Header().Get(headerRequestID), body.RequestID)

			entries := logEntries(t, logs, "panic recovered")
			require.Len(t, entries, 1)
			assert.Equal(t, "/v1/recipes/americano", entries[0]["path"])
		})
	}
}

func TestLoggingMiddleware(t *testing.T) {
	logs := captureLogs(t)
	h := newRecipeServer(t, nil, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/recipes/oat-latte?format=table", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	started := logEntries(t, logs, "request started")
	require.Len(t, started, 1)
	assert.Equal(t, "format=table", started[0]["query"])
	assert.Equal(t, rec.Header().Get(headerRequestID), started[0]["requestID"])

	completed := logEntries(t, logs, "request completed")
	require.Len(t, completed, 1)
	assert.EqualValues(t, http.StatusCreated, completed[0]["status"])
	assert.Equal(t, "/v1/recipes/oat-latte", completed[0]["path"])
}

func TestMiddlewareChainServesPatternRoutes(t *testing.T) {
	var id, pattern string
	h := newRecipeServer(t, nil, func(w http.ResponseWriter, r *http.Request) {
		id = r.PathValue("id")
		pattern = routeLabel(r)
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/recipes/hojicha", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hojicha", id)
	assert.Equal(t, recipePattern, pattern)
	for _, header := range []string{headerRequestID, "X-API-Version", "X-RateLimit-Limit"} {
		assert.NotEmpty(t, rec.Header().Get(header), header)
	}
}
