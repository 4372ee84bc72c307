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
	"os"
	"path/filepath"
	"testing"
)

func TestFileAttachment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dump.log")
	if err := os.WriteFile(path, []byte("payload"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	att := FileAttachment(path)
	if att.Name() != "dump.log" {
		t.Errorf("expected name dump.log, got %q", att.Name())
	}

	src, err := att.Open()
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer src.Close()

	buf := make([]byte, 16)
	n, _ := src.Read(buf)
	if string(buf[:n]) != "payload" {
		t.Errorf("unexpected content %q", buf[:n])
	}
}

func TestFileAttachmentEmptyName(t *testing.T) {
	if got := FileAttachment("").Name(); got != "" {
		t.Errorf("empty attachment should have no name, got %q", got)
	}
}

func TestRegistrationSupportsMode(t *testing.T) {
	tests := []struct {
		name  string
		modes []Mode
		mode  Mode
		want  bool
	}{
		{
			name: "empty means all",
			mode: ModeArchive,
			want: true,
		},
		{
			name:  "listed mode",
			modes: []Mode{ModeFlat, ModeArchive},
			mode:  ModeFlat,
			want:  true,
		},
		{
			name:  "unlisted mode",
			modes: []Mode{ModeFlat},
			mode:  ModeInteractive,
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := Registration{Source: nopProvider{}, Title: "t", Modes: tt.modes}
			if got := reg.SupportsMode(tt.mode); got != tt.want {
				t.Errorf("SupportsMode(%s) = %v, want %v", tt.mode, got, tt.want)
			}
		})
	}
}

func TestInfos(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Register(Registration{
		Source: nopProvider{},
		Title:  "Runtime",
		Label:  "runtime",
		Modes:  []Mode{ModeInteractive, ModeFlat},
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := r.Register(Registration{Source: nopProvider{}, Title: "Build Info"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	c := NewCache(WithDiscovery(r))
	infos := Infos(c.Providers())
	if len(infos) != 2 {
		t.Fatalf("expected 2 infos, got %d", len(infos))
	}

	// Snapshot order is sort-key order.
	if infos[0].Label != "Build Info" || infos[1].Label != "runtime" {
		t.Errorf("unexpected listing order: %+v", infos)
	}
	if len(infos[0].Modes) != 3 {
		t.Errorf("unrestricted provider should list all modes, got %v", infos[0].Modes)
	}
	if len(infos[1].Modes) != 2 {
		t.Errorf("restricted provider should list two modes, got %v", infos[1].Modes)
	}
}
