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
	"net/http"
	"strings"
)

const (
	// DefaultAPIVersion is the default API version if none is negotiated
	DefaultAPIVersion = "v1"

	// vendorMediaTypePrefix selects a version through the Accept header,
	// e.g. application/vnd.brewbook.v1+json.
	vendorMediaTypePrefix = "application/vnd.brewbook."
)

var supportedAPIVersions = map[string]bool{
	"v1": true,
}

// negotiateAPIVersion returns the version requested through a vendor media
// type in the Accept header, or DefaultAPIVersion.
func negotiateAPIVersion(r *http.Request) string {
	for _, accept := range strings.Split(r.Header.Get("Accept"), ",") {
		accept = strings.TrimSpace(accept)
		if !strings.HasPrefix(accept, vendorMediaTypePrefix) {
			continue
		}
		version := strings.TrimPrefix(accept, vendorMediaTypePrefix)
		if i := strings.IndexAny(version, "+;"); i >= 0 {
			version = version[:i]
		}
		if isValidAPIVersion(version) {
			return version
		}
	}
	return DefaultAPIVersion
}

func isValidAPIVersion(version string) bool {
	return supportedAPIVersions[version]
}

// SetAPIVersionHeader sets the X-API-Version response header.
func SetAPIVersionHeader(w http.ResponseWriter, version string) {
	w.Header().Set("X-API-Version", version)
}
