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

// Package server provides the HTTP server shared by brewbook services.
//
// Handlers registered with WithHandler are wrapped in a middleware chain:
//
//   - Prometheus request metrics (brewbook_http_*)
//   - API version negotiation (X-API-Version, Accept: application/vnd.brewbook.v1+json)
//   - Request ID propagation (X-Request-Id, UUID)
//   - Panic recovery
//   - Token bucket rate limiting (golang.org/x/time/rate), 429 with Retry-After
//   - Debug request logging through log/slog
//
// System endpoints are served outside that chain:
//
//	GET /health   liveness, always 200
//	GET /ready    readiness, 503 until ready
//	GET /metrics  Prometheus exposition
//
// Errors are written as a consistent JSON body:
//
//	{
//	  "code": "NOT_FOUND",
//	  "message": "recipe not found",
//	  "details": {"id": "flat-white"},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2026-01-12T12:00:00Z",
//	  "retryable": false
//	}
//
// Usage:
//
//	s := server.New(
//	    server.WithName("brewbookd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{"/v1/recipes": h.List}),
//	    server.WithReadinessGate(),
//	)
//	err := s.Run(ctx, watcher.Run)
//
// PORT and SHUTDOWN_TIMEOUT_SECONDS override the listen port and the
// graceful shutdown budget.
package server
