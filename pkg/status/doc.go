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

// Package status defines the provider model at the heart of statuskit: an
// open-ended, dynamically changing set of status providers, each emitting a
// titled block of diagnostic text and optional binary attachments.
//
// # Overview
//
// Providers are externally supplied and opaque. The package discovers them
// through a narrow polling interface, keeps a sorted, deduplicated snapshot
// of their descriptors in a cache, and hands that snapshot to the render
// layer. Nothing in this package inspects a concrete provider type.
//
// # Core Interfaces
//
// The Provider interface defines a single method for emitting output:
//
//	type Provider interface {
//	    Render(w Writer, mode Mode) error
//	}
//
// Providers that carry binary attachments in archive output additionally
// implement AttachmentProvider. The Writer contract is shared by all three
// render encodings (interactive HTML, flat text, zip archive); providers
// write body text and the dispatcher frames the sections.
//
// # Discovery
//
// The cache consumes any Discovery implementation:
//
//	type Discovery interface {
//	    ChangeToken() string
//	    Snapshot() []Registration
//	}
//
// The change token is opaque; it differs from the previous value exactly
// when the provider set changed. Registry is the in-process implementation,
// with glob-selector Views for hosts that expose only a subset:
//
//	reg := status.NewRegistry()
//	handle, err := reg.Register(status.Registration{
//	    Source: provider,
//	    Title:  "%runtime.title",
//	    Label:  "runtime",
//	})
//	defer handle.Deregister()
//
// # Cache Semantics
//
// The cache rebuilds only when the change token moves, resolving titles,
// assigning collision-free sort keys (bare integer suffixes: "Foo", "Foo0",
// "Foo1"), and deriving labels for registrations without one. A rebuild
// replaces the snapshot wholesale; reads in between return the identical
// slice. A discovery source that fails to initialize leaves the cache
// permanently empty, which is logged once and never fatal to the host.
package status
