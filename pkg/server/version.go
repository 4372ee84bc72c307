// Copyright (c) 2026, The StatusKit Authors.  All rights reserved.
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
	// DefaultAPIVersion is the API version used when the client does not
	// request one.
	DefaultAPIVersion = "v1"

	// vendorMIMEPrefix marks a versioned Accept header, e.g.
	// application/vnd.statuskit.v1+json.
	vendorMIMEPrefix = "application/vnd.statuskit.v"
)

// negotiateAPIVersion extracts the API version from the Accept header.
// A request without a vendor MIME type gets the default version. A vendor
// MIME type naming a version the server does not speak returns ok=false;
// the caller must reject the request rather than silently downgrade.
func negotiateAPIVersion(r *http.Request) (version string, ok bool) {
	accept := r.Header.Get("Accept")
	if accept == "" || !strings.Contains(accept, vendorMIMEPrefix) {
		return DefaultAPIVersion, true
	}

	// Format: application/vnd.statuskit.v1+json
	parts := strings.Split(accept, ".")
	for _, part := range parts {
		if !strings.HasPrefix(part, "v") {
			continue
		}
		// "v1+json" -> "v1"
		candidate := strings.Split(part, "+")[0]
		if isValidAPIVersion(candidate) {
			return candidate, true
		}
	}

	return "", false
}

// isValidAPIVersion checks if the provided version string is a valid API version.
// Currently supports: v1
func isValidAPIVersion(version string) bool {
	validVersions := map[string]bool{
		"v1": true,
		// Add future versions here as they become available
		// "v2": true,
	}
	return validVersions[version]
}

// SetAPIVersionHeader sets the API version header in the response.
// This helps clients understand which version of the API is being used.
func SetAPIVersionHeader(w http.ResponseWriter, version string) {
	w.Header().Set("X-API-Version", version)
}
