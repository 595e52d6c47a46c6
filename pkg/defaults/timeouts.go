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

package defaults

import "time"

// Dataset loading timeouts.
const (
	// DatasetLoadTimeout bounds a single dataset load end to end,
	// including retries of the underlying fetch.
	DatasetLoadTimeout = 60 * time.Second

	// DatasetFetchMaxElapsed is the retry budget for transient HTTP fetch failures.
	// Must be less than DatasetLoadTimeout so a final error can still be reported.
	DatasetFetchMaxElapsed = 45 * time.Second

	// DatasetFetchMaxBytes caps how much of a remote dataset is read into memory.
	DatasetFetchMaxBytes = 16 << 20

	// DatasetWatchDebounce coalesces bursts of file system events into one reload.
	DatasetWatchDebounce = 500 * time.Millisecond
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Kubernetes timeouts for ConfigMap dataset sources.
const (
	// ConfigMapReadTimeout is the timeout for reading a dataset ConfigMap.
	ConfigMapReadTimeout = 30 * time.Second

	// ConfigMapWriteTimeout is the timeout for applying an exported catalog.
	ConfigMapWriteTimeout = 60 * time.Second
)

// OCI registry timeouts for dataset artifacts.
const (
	// OCIPullTimeout is the timeout for pulling a dataset artifact.
	OCIPullTimeout = 2 * time.Minute

	// OCIPushTimeout is the timeout for publishing a dataset artifact.
	OCIPushTimeout = 2 * time.Minute
)

// HTTP client timeouts for outbound requests.
const (
	// HTTPClientTimeout is the default total timeout for HTTP requests.
	HTTPClientTimeout = 30 * time.Second

	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPTLSHandshakeTimeout is the timeout for TLS handshake.
	HTTPTLSHandshakeTimeout = 5 * time.Second

	// HTTPResponseHeaderTimeout is the timeout for reading response headers.
	HTTPResponseHeaderTimeout = 10 * time.Second

	// HTTPIdleConnTimeout is the timeout for idle connections in the pool.
	HTTPIdleConnTimeout = 90 * time.Second

	// HTTPKeepAlive is the keep-alive duration for connections.
	HTTPKeepAlive = 30 * time.Second

	// HTTPExpectContinueTimeout is the timeout for Expect: 100-continue.
	HTTPExpectContinueTimeout = 1 * time.Second
)
