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

package status

import (
	"io"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/text/message/catalog"
)

// SymbolicTitlePrefix marks registration titles that must be resolved
// against the provider's message catalog.
const SymbolicTitlePrefix = "%"

// Provider is the capability interface implemented by status sources.
// Providers are externally supplied and opaque to the aggregator; the
// aggregator never inspects concrete provider types.
type Provider interface {
	// Render writes the provider's diagnostic block to w in the given mode.
	Render(w Writer, mode Mode) error
}

// AttachmentProvider is an optional interface for providers that expose
// binary attachments in archive output.
type AttachmentProvider interface {
	Attachments(mode Mode) []Attachment
}

// Attachment is a named, lazily opened byte stream carried alongside a
// provider's archive output. The stream is read once per render pass and
// closed after the copy attempt regardless of success.
type Attachment interface {
	// Name returns the archive entry name, or "" when none can be derived.
	Name() string
	// Open returns the byte stream.
	Open() (io.ReadCloser, error)
}

// FileAttachment exposes a file on disk as an attachment named after its
// base name.
type FileAttachment string

// Name implements Attachment.
func (f FileAttachment) Name() string {
	if f == "" {
		return ""
	}
	return filepath.Base(string(f))
}

// Open implements Attachment.
func (f FileAttachment) Open() (io.ReadCloser, error) {
	return os.Open(string(f))
}

// Registration describes one provider as supplied by a discovery source.
type Registration struct {
	// Source renders the provider's output. Required.
	Source Provider

	// Title is the raw display title. Titles starting with
	// SymbolicTitlePrefix are resolved against Catalog. Required.
	Title string

	// Label is the stable identifier used in URLs and label filters.
	// Derived from the assigned sort key when empty.
	Label string

	// Modes lists the render modes the provider supports. Empty means all.
	Modes []Mode

	// EscapeOutput marks the provider's text for HTML escaping in the
	// interactive view.
	EscapeOutput bool

	// Catalog holds the provider's title translations. Optional.
	Catalog catalog.Catalog
}

// SupportsMode reports whether the registration accepts the given mode.
func (r Registration) SupportsMode(m Mode) bool {
	if len(r.Modes) == 0 {
		return true
	}
	return slices.Contains(r.Modes, m)
}

// Descriptor is one cached provider with its resolved identity. Descriptors
// are built during a cache rebuild and not modified afterwards.
type Descriptor struct {
	// Title is the resolved display title.
	Title string
	// Label uniquely identifies the provider within one cache snapshot.
	Label string
	// SortKey orders the snapshot and is unique within it.
	SortKey string
	// EscapeOutput marks the provider's interactive output for escaping.
	EscapeOutput bool

	modes  []Mode
	source Provider
}

// SupportsMode reports whether the provider accepts the given mode.
func (d *Descriptor) SupportsMode(m Mode) bool {
	if len(d.modes) == 0 {
		return true
	}
	return slices.Contains(d.modes, m)
}

// Render invokes the provider against w. Failures are the caller's to
// handle; the render dispatcher isolates them per provider.
func (d *Descriptor) Render(w Writer, mode Mode) error {
	return d.source.Render(w, mode)
}

// Attachments returns the provider's attachments for the mode, or nil when
// the provider has none.
func (d *Descriptor) Attachments(mode Mode) []Attachment {
	if ap, ok := d.source.(AttachmentProvider); ok {
		return ap.Attachments(mode)
	}
	return nil
}

// Info is one element of the provider navigation listing.
type Info struct {
	Label string   `json:"label" yaml:"label"`
	Title string   `json:"title" yaml:"title"`
	Modes []string `json:"modes" yaml:"modes"`
}

// Infos builds the navigation listing for a descriptor snapshot, in
// snapshot order.
func Infos(descriptors []*Descriptor) []Info {
	infos := make([]Info, 0, len(descriptors))
	for _, d := range descriptors {
		modes := make([]string, 0, 3)
		for _, m := range []Mode{ModeInteractive, ModeFlat, ModeArchive} {
			if d.SupportsMode(m) {
				modes = append(modes, string(m))
			}
		}
		infos = append(infos, Info{
			Label: d.Label,
			Title: d.Title,
			Modes: modes,
		})
	}
	return infos
}
