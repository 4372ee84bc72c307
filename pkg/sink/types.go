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

// Package sink stores captured status output and serializes structured
// listings.
//
// Two concerns live here. A Store takes a captured document (the bytes of
// a flat text render or a zip archive) and puts it somewhere durable: a
// file, stdout, a Kubernetes ConfigMap, or an OCI registry. A Serializer
// takes structured data (the provider listing) and writes it as JSON,
// YAML, or a table.
//
// Store targets are addressed by reference string:
//
//	/tmp/status.txt             local file
//	-                           stdout
//	cm://monitoring/status      Kubernetes ConfigMap (server-side apply)
//	oci://ghcr.io/org/repo:tag  OCI registry (ORAS artifact push)
//
// ParseStoreRef selects the store for a reference.
package sink

import "context"

// Serializer writes structured data in a configured format.
//
// The context parameter is used for cancellation and timeouts, important
// for implementations that perform remote I/O.
type Serializer interface {
	Serialize(ctx context.Context, v any) error
}

// Closer is an optional interface that Serializers and Stores can
// implement if they need to release resources (e.g., close file handles).
type Closer interface {
	Close() error
}

// Document is a captured status render: the bytes of one flat text or
// archive response, plus enough metadata to store it faithfully.
type Document struct {
	// Name is the suggested filename, e.g. "status-20260829-1405+0000.txt".
	Name string
	// ContentType is the MIME type of Data ("text/plain; charset=utf-8"
	// or "application/zip").
	ContentType string
	// Binary marks data that must not be treated as UTF-8 text.
	Binary bool
	// Data is the captured payload.
	Data []byte
}

// Store persists a captured document to some destination.
type Store interface {
	Put(ctx context.Context, doc *Document) error
}
