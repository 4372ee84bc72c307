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
	"errors"
	"io"
)

// ErrAttachmentsUnsupported is returned by WriteAttachment on writers that
// cannot carry attachments. Receiving it indicates a dispatcher/writer
// mismatch, not a runtime condition to recover from.
var ErrAttachmentsUnsupported = errors.New("writer does not support attachments")

// Writer receives one render pass of provider output. The three
// implementations (interactive HTML, flat text, zip archive) share this
// contract and differ only in encoding.
//
// Providers write their body text through the io.Writer side; the
// surrounding section calls come from the render dispatcher.
type Writer interface {
	io.Writer

	// BeginSection opens a titled section for one provider.
	BeginSection(title string) error

	// WriteLine terminates the current line of body text.
	WriteLine() error

	// EndSection closes the open section.
	EndSection() error

	// SupportsAttachments reports whether WriteAttachment is available.
	SupportsAttachments() bool

	// WriteAttachment stores a named byte stream scoped to the section
	// titled title. The writer closes src whether or not the copy
	// succeeds. Writers without attachment support return
	// ErrAttachmentsUnsupported.
	WriteAttachment(title, name string, src io.ReadCloser) error
}
