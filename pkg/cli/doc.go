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

// Package cli implements the skctl command-line client for statuskitd.
//
// # Commands
//
// capture - fetch the rendered status document and store the bytes:
//
//	skctl capture --server http://localhost:8080 [--mode flat|archive]
//	  [--label L] [--output REF]
//
// The output reference selects the store: a file path, "-" for stdout,
// cm://namespace/name for a Kubernetes ConfigMap, or
// oci://registry/repo:tag for an OCI registry push.
//
// providers - list the registered status providers:
//
//	skctl providers --server http://localhost:8080 [--format table|json|yaml]
//
// # Global Flags
//
//	--log-level    Logging verbosity (default: warn)
//	--version      Show version information from build-time ldflags
//
// # Environment Variables
//
//	STATUSKIT_SERVER  Default for --server
//	LOG_LEVEL         Default for --log-level
//
// # Exit Codes
//
//	0  Success
//	1  Error (invalid arguments, fetch or store failure)
package cli
