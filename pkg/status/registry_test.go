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

import "testing"

// nopProvider satisfies Provider without emitting anything.
type nopProvider struct{}

func (nopProvider) Render(Writer, Mode) error { return nil }

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name    string
		reg     Registration
		wantErr bool
	}{
		{
			name: "valid",
			reg:  Registration{Source: nopProvider{}, Title: "Runtime"},
		},
		{
			name:    "missing source",
			reg:     Registration{Title: "Runtime"},
			wantErr: true,
		},
		{
			name:    "missing title",
			reg:     Registration{Source: nopProvider{}},
			wantErr: true,
		},
		{
			name:    "blank title",
			reg:     Registration{Source: nopProvider{}, Title: "   "},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			_, err := r.Register(tt.reg)
			if tt.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestChangeTokenAdvances(t *testing.T) {
	r := NewRegistry()
	initial := r.ChangeToken()

	h, err := r.Register(Registration{Source: nopProvider{}, Title: "Runtime"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	afterRegister := r.ChangeToken()
	if afterRegister == initial {
		t.Error("token should change after register")
	}

	h.Deregister()
	afterDeregister := r.ChangeToken()
	if afterDeregister == afterRegister {
		t.Error("token should change after deregister")
	}

	// Deregister is idempotent and must not advance the token again.
	h.Deregister()
	if got := r.ChangeToken(); got != afterDeregister {
		t.Errorf("token changed on repeated deregister: %s != %s", got, afterDeregister)
	}
}

func TestSnapshotPreservesRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	titles := []string{"Zebra", "Alpha", "Middle"}
	for _, title := range titles {
		if _, err := r.Register(Registration{Source: nopProvider{}, Title: title}); err != nil {
			t.Fatalf("register %s: %v", title, err)
		}
	}

	snap := r.Snapshot()
	if len(snap) != len(titles) {
		t.Fatalf("expected %d registrations, got %d", len(titles), len(snap))
	}
	for i, title := range titles {
		if snap[i].Title != title {
			t.Errorf("position %d: expected %s, got %s", i, title, snap[i].Title)
		}
	}
}

func TestSelectMalformedPattern(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Select("runtime-["); err == nil {
		t.Fatal("expected error for malformed pattern")
	}
	if _, err := r.Select("  ,  "); err == nil {
		t.Fatal("expected error for empty selector")
	}
}

func TestViewFilters(t *testing.T) {
	r := NewRegistry()
	mustRegister := func(title, label string) {
		t.Helper()
		if _, err := r.Register(Registration{Source: nopProvider{}, Title: title, Label: label}); err != nil {
			t.Fatalf("register %s: %v", title, err)
		}
	}
	mustRegister("Runtime", "runtime")
	mustRegister("Build Info", "build")
	mustRegister("%net.title", "")

	tests := []struct {
		name     string
		selector string
		want     int
	}{
		{
			name:     "exact label",
			selector: "runtime",
			want:     1,
		},
		{
			name:     "glob over labels",
			selector: "r*,b*",
			want:     2,
		},
		{
			name:     "title fallback without label",
			selector: "net.*",
			want:     1,
		},
		{
			name:     "match all",
			selector: "*",
			want:     3,
		},
		{
			name:     "no match",
			selector: "gpu",
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := r.Select(tt.selector)
			if err != nil {
				t.Fatalf("select: %v", err)
			}
			if got := len(v.Snapshot()); got != tt.want {
				t.Errorf("selector %q matched %d registrations, want %d", tt.selector, got, tt.want)
			}
		})
	}
}

func TestViewClosed(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Register(Registration{Source: nopProvider{}, Title: "Runtime"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	v, err := r.Select("*")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(v.Snapshot()) != 1 {
		t.Fatal("expected one registration before close")
	}

	if err := v.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if got := v.Snapshot(); got != nil {
		t.Errorf("closed view should yield nothing, got %d", len(got))
	}
	if v.ChangeToken() != "closed" {
		t.Error("closed view token should be stable")
	}
}
