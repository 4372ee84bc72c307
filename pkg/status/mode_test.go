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

func TestParseMode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Mode
		wantErr bool
	}{
		{
			name:  "interactive",
			input: "interactive",
			want:  ModeInteractive,
		},
		{
			name:  "flat",
			input: "flat",
			want:  ModeFlat,
		},
		{
			name:  "archive",
			input: "archive",
			want:  ModeArchive,
		},
		{
			name:  "case insensitive",
			input: "Archive",
			want:  ModeArchive,
		},
		{
			name:  "whitespace trimmed",
			input: "  flat  ",
			want:  ModeFlat,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "unknown",
			input:   "xml",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseMode(%q) expected error, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMode(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestModeIsUnknown(t *testing.T) {
	for _, name := range SupportedModes() {
		if Mode(name).IsUnknown() {
			t.Errorf("mode %q should be known", name)
		}
	}
	if !Mode("pdf").IsUnknown() {
		t.Error("mode pdf should be unknown")
	}
}
