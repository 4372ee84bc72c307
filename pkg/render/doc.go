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

// Package render turns a provider snapshot into one of three encodings:
// an interactive HTML body (escaping-aware), a flat plain-text document,
// or a zip archive with per-provider entries and binary attachments.
//
// The three writers share the status.Writer contract and differ only in
// encoding; the Dispatcher selects providers, frames their sections, and
// isolates per-provider failures so partial output always beats no output.
package render
