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

package titles

import (
	"testing"

	"golang.org/x/text/language"

	"github.com/statuskit/statuskit/pkg/status"
)

func TestResolve(t *testing.T) {
	cat, err := NewCatalog(language.English, map[string]string{
		"runtime.title": "Go Runtime",
	})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}

	r := NewResolver(language.English)

	tests := []struct {
		name string
		raw  string
		reg  status.Registration
		want string
	}{
		{
			name: "non-symbolic passthrough",
			raw:  "Configuration",
			reg:  status.Registration{Catalog: cat},
			want: "Configuration",
		},
		{
			name: "symbolic resolved",
			raw:  "%runtime.title",
			reg:  status.Registration{Catalog: cat},
			want: "Go Runtime",
		},
		{
			name: "symbolic unknown key",
			raw:  "%other.title",
			reg:  status.Registration{Catalog: cat},
			want: "other.title",
		},
		{
			name: "symbolic without catalog",
			raw:  "%runtime.title",
			reg:  status.Registration{},
			want: "runtime.title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Resolve(tt.raw, tt.reg); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestResolverDefaultsToEnglish(t *testing.T) {
	cat, err := NewCatalog(language.English, map[string]string{
		"runtime.title": "Go Runtime",
	})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}

	r := NewResolver(language.Und)
	got := r.Resolve("%runtime.title", status.Registration{Catalog: cat})
	if got != "Go Runtime" {
		t.Errorf("expected English fallback, got %q", got)
	}
}
