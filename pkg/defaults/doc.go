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

// Package defaults provides centralized configuration constants for statuskit.
//
// This package defines timeout values and other configuration defaults used
// across the codebase. Centralizing these values ensures consistency and
// makes tuning easier.
//
// # Timeout Categories
//
// Timeouts are organized by component:
//
//   - Server timeouts: For HTTP server configuration
//   - HTTP client timeouts: For outbound HTTP requests
//   - Capture timeouts: For fetching rendered status from a daemon
//   - Sink timeouts: For ConfigMap and OCI store operations
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/statuskit/statuskit/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.CaptureTimeout)
//	defer cancel()
//
// # Timeout Guidelines
//
// When choosing timeout values:
//
//   - Captures: 5m total, archives can be large
//   - Sink writes: 30s for ConfigMaps, 2m for OCI pushes
//   - Server shutdown: 30s for graceful shutdown
//   - Provider render calls themselves are never bounded here; a slow
//     provider blocks only its own request
package defaults
