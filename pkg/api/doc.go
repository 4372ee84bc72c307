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

// Package api wires the status routes into the HTTP server and owns their
// handlers. pkg/server provides the generic transport (middleware chain,
// error envelope, probes, metrics); this package renders the documents.
//
// Routes:
//
//	GET /v1/status              interactive HTML index
//	GET /v1/status/{label}      single-provider detail page
//	GET /v1/status.txt          flat text document, all providers
//	GET /v1/status/{label}.txt  flat text document, one provider
//	GET /v1/status.zip          zip bundle with per-provider entries
//	GET /v1/status/providers    JSON provider listing
//
// Serve is the daemon entrypoint: it builds the provider cache over a host
// supplied registry and blocks until shutdown.
package api
