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
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"
)

// readZip finalizes the archive and returns entry name -> content.
func readZip(t *testing.T, a *Archive, buf *bytes.Buffer) map[string]string {
	t.Helper()
	if err := a.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("output is not a valid zip: %v", err)
	}
	entries := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open entry %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read entry %s: %v", f.Name, err)
		}
		entries[f.Name] = string(data)
	}
	return entries
}

func TestArchiveSectionNaming(t *testing.T) {
	var buf bytes.Buffer
	a := NewArchive(&buf)

	for _, title := range []string{"First", "Second"} {
		if err := a.BeginSection(title); err != nil {
			t.Fatalf("beginSection %s: %v", title, err)
		}
		if _, err := io.WriteString(a, "body of "+title); err != nil {
			t.Fatalf("write: %v", err)
		}
		if err := a.EndSection(); err != nil {
			t.Fatalf("endSection: %v", err)
		}
	}

	entries := readZip(t, a, &buf)
	if got := entries["000-First.txt"]; got != "body of First" {
		t.Errorf("000-First.txt = %q", got)
	}
	if got := entries["001-Second.txt"]; got != "body of Second" {
		t.Errorf("001-Second.txt = %q", got)
	}
}

func TestArchiveAttachmentGrouping(t *testing.T) {
	var buf bytes.Buffer
	a := NewArchive(&buf)

	if err := a.BeginSection("Runtime"); err != nil {
		t.Fatalf("beginSection: %v", err)
	}
	if err := a.EndSection(); err != nil {
		t.Fatalf("endSection: %v", err)
	}

	// Two attachments for one title share a single counter value.
	for _, name := range []string{"heap.bin", "trace.bin"} {
		src := &closeTracker{Reader: strings.NewReader("data-" + name)}
		if err := a.WriteAttachment("Runtime", name, src); err != nil {
			t.Fatalf("writeAttachment %s: %v", name, err)
		}
		if !src.closed {
			t.Errorf("source %s not closed after copy", name)
		}
	}
	if err := a.EndSection(); err != nil {
		t.Fatalf("endSection: %v", err)
	}

	// After the group closes, the same title claims a fresh counter.
	src := &closeTracker{Reader: strings.NewReader("late")}
	if err := a.WriteAttachment("Runtime", "late.bin", src); err != nil {
		t.Fatalf("writeAttachment: %v", err)
	}

	entries := readZip(t, a, &buf)
	for _, name := range []string{"000-Runtime.txt", "001-Runtime/heap.bin", "001-Runtime/trace.bin", "002-Runtime/late.bin"} {
		if _, ok := entries[name]; !ok {
			t.Errorf("missing entry %s (have %v)", name, keys(entries))
		}
	}
}

func TestArchiveFallbackAttachmentName(t *testing.T) {
	var buf bytes.Buffer
	a := NewArchive(&buf)

	src := &closeTracker{Reader: strings.NewReader("x")}
	if err := a.WriteAttachment("Runtime", "", src); err != nil {
		t.Fatalf("writeAttachment: %v", err)
	}

	entries := readZip(t, a, &buf)
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	for name := range entries {
		if !strings.HasPrefix(name, "000-Runtime/file") {
			t.Errorf("fallback entry %q must sit under the group with a non-empty name", name)
		}
		if strings.HasSuffix(name, "/") {
			t.Errorf("entry %q has an empty attachment name", name)
		}
	}
}

func TestArchiveSourceClosedOnCopyFailure(t *testing.T) {
	var buf bytes.Buffer
	a := NewArchive(&buf)

	src := &closeTracker{Reader: failingReader{}}
	if err := a.WriteAttachment("Runtime", "broken.bin", src); err == nil {
		t.Fatal("expected copy error")
	}
	if !src.closed {
		t.Error("source must be closed even when the copy fails")
	}
}

func TestArchiveWriteOutsideSection(t *testing.T) {
	a := NewArchive(&bytes.Buffer{})
	if _, err := a.Write([]byte("stray")); err == nil {
		t.Fatal("expected error writing outside a section")
	}
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
