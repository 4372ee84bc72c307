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
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/statuskit/statuskit/pkg/status"
)

func TestFlatSectionFraming(t *testing.T) {
	var buf strings.Builder
	w := NewFlat(&buf)

	if err := w.BeginSection("Runtime"); err != nil {
		t.Fatalf("beginSection: %v", err)
	}
	if _, err := io.WriteString(w, "goroutines: 12"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.WriteLine(); err != nil {
		t.Fatalf("writeLine: %v", err)
	}
	if err := w.EndSection(); err != nil {
		t.Fatalf("endSection: %v", err)
	}

	want := "*** Runtime:\ngoroutines: 12\n\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFlatNoEscaping(t *testing.T) {
	var buf strings.Builder
	w := NewFlat(&buf)

	if _, err := w.Write([]byte("a<b> & c\r\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := buf.String(); got != "a<b> & c\r\n" {
		t.Errorf("flat writer must not transform body text, got %q", got)
	}
}

func TestFlatNoAttachmentSupport(t *testing.T) {
	w := NewFlat(&strings.Builder{})
	if w.SupportsAttachments() {
		t.Fatal("flat writer must not support attachments")
	}

	src := &closeTracker{Reader: strings.NewReader("x")}
	err := w.WriteAttachment("Runtime", "heap.bin", src)
	if !errors.Is(err, status.ErrAttachmentsUnsupported) {
		t.Fatalf("expected attachments-unsupported error, got %v", err)
	}
	if !src.closed {
		t.Error("rejected attachment source must still be closed")
	}
}
