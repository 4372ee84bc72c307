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

package render

import (
	"fmt"
	"io"

	"github.com/statuskit/statuskit/pkg/status"
)

// noAttachments supplies the attachment half of the writer contract for
// encodings that cannot carry attachments.
type noAttachments struct{}

func (noAttachments) SupportsAttachments() bool { return false }

func (noAttachments) WriteAttachment(_, _ string, src io.ReadCloser) error {
	if src != nil {
		src.Close()
	}
	return status.ErrAttachmentsUnsupported
}

// Flat writes the plain-text document: a "*** <title>:" heading opens each
// section and a blank line closes it. Body text is passed through verbatim.
type Flat struct {
	noAttachments
	w io.Writer
}

// NewFlat creates a flat text writer over w.
func NewFlat(w io.Writer) *Flat {
	return &Flat{w: w}
}

// BeginSection implements status.Writer.
func (f *Flat) BeginSection(title string) error {
	_, err := fmt.Fprintf(f.w, "*** %s:\n", title)
	return err
}

// Write implements status.Writer.
func (f *Flat) Write(p []byte) (int, error) {
	return f.w.Write(p)
}

// WriteLine implements status.Writer.
func (f *Flat) WriteLine() error {
	_, err := io.WriteString(f.w, "\n")
	return err
}

// EndSection implements status.Writer.
func (f *Flat) EndSection() error {
	_, err := io.WriteString(f.w, "\n")
	return err
}
