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

// Package server provides the generic HTTP transport for the statuskit
// daemon: listener lifecycle, graceful shutdown, and a middleware chain
// shared by every route.
//
// Route handlers are supplied by the caller:
//
//	s := server.New(
//	    server.WithName("statuskitd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/status": handleStatus,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    slog.Error("server failed", "error", err)
//	}
//
// # Middleware
//
// Every registered handler runs behind, in order: Prometheus request
// metrics, API version negotiation, request ID tracking, panic recovery,
// token bucket rate limiting (golang.org/x/time/rate), and request
// logging.
//
// # Observability
//
// All requests accept an optional X-Request-Id header (UUID format); the
// server generates one when absent and echoes it in the response and in
// every error envelope. Rate limit state is reported via the
// X-RateLimit-* headers, and a rejected request carries Retry-After.
// Prometheus metrics are exposed on /metrics.
//
// # Versioning
//
// Clients may pin an API version with a vendor MIME type in the Accept
// header, e.g. application/vnd.statuskit.v1+json. A version the server
// does not speak is rejected with 406 rather than silently downgraded.
//
// # Probes
//
// GET /health always answers 200 while the process is up. GET /ready
// answers 200 once the server accepts traffic and 503 during startup and
// shutdown. Both bypass rate limiting.
//
// # Errors
//
// All errors return a consistent JSON envelope:
//
//	{
//	  "code": "NOT_FOUND",
//	  "message": "unknown provider label",
//	  "details": {"label": "nope"},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2026-08-29T12:00:00Z",
//	  "retryable": false
//	}
package server
