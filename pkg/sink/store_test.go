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

package sink

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	skerrors "github.com/statuskit/statuskit/pkg/errors"
)

func TestParseStoreRef(t *testing.T) {
	tests := []struct {
		name     string
		ref      string
		wantType any
		wantErr  bool
	}{
		{"empty means stdout", "", &StdoutStore{}, false},
		{"dash means stdout", "-", &StdoutStore{}, false},
		{"file path", "/tmp/status.txt", &FileStore{}, false},
		{"relative file path", "out/status.zip", &FileStore{}, false},
		{"configmap", "cm://monitoring/statuskit-capture", &ConfigMapStore{}, false},
		{"configmap missing name", "cm://monitoring", nil, true},
		{"configmap empty namespace", "cm:///capture", nil, true},
		{"oci", "oci://ghcr.io/acme/status:v1", &OCIStore{}, false},
		{"oci uppercase repository", "oci://ghcr.io/ACME/Status:v1", nil, true},
		{"unknown scheme", "s3://bucket/key", nil, true},
		{"http scheme", "https://example.com/out", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := ParseStoreRef(tt.ref)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStoreRef(%q) error = %v, wantErr %v", tt.ref, err, tt.wantErr)
			}
			if tt.wantErr {
				var serr *skerrors.StructuredError
				if !errors.As(err, &serr) || serr.Code != skerrors.ErrCodeInvalidRequest {
					t.Fatalf("expected %s, got %v", skerrors.ErrCodeInvalidRequest, err)
				}
				return
			}
			switch tt.wantType.(type) {
			case *StdoutStore:
				if _, ok := store.(*StdoutStore); !ok {
					t.Errorf("ParseStoreRef(%q) = %T, want *StdoutStore", tt.ref, store)
				}
			case *FileStore:
				if _, ok := store.(*FileStore); !ok {
					t.Errorf("ParseStoreRef(%q) = %T, want *FileStore", tt.ref, store)
				}
			case *ConfigMapStore:
				if _, ok := store.(*ConfigMapStore); !ok {
					t.Errorf("ParseStoreRef(%q) = %T, want *ConfigMapStore", tt.ref, store)
				}
			case *OCIStore:
				if _, ok := store.(*OCIStore); !ok {
					t.Errorf("ParseStoreRef(%q) = %T, want *OCIStore", tt.ref, store)
				}
			}
		})
	}
}

func TestFileStorePut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capture.txt")
	s := &FileStore{Path: path}

	doc := &Document{Name: "status-20260829-1200+0000.txt", ContentType: "text/plain", Data: []byte("*** Runtime:\n")}
	if err := s.Put(context.Background(), doc); err != nil {
		t.Fatalf("put: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "*** Runtime:\n" {
		t.Errorf("file content = %q", data)
	}
}

func TestFileStorePutIntoDirectory(t *testing.T) {
	dir := t.TempDir()
	s := &FileStore{Path: dir}

	doc := &Document{Name: "status-20260829-1200+0000.zip", ContentType: "application/zip", Binary: true, Data: []byte{0x50, 0x4b}}
	if err := s.Put(context.Background(), doc); err != nil {
		t.Fatalf("put: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, doc.Name))
	if err != nil {
		t.Fatalf("document must land under its own name in the directory: %v", err)
	}
	if !bytes.Equal(data, doc.Data) {
		t.Errorf("file content = %v", data)
	}
}

func TestFileStorePutMissingDirectory(t *testing.T) {
	s := &FileStore{Path: filepath.Join(t.TempDir(), "missing", "capture.txt")}
	if err := s.Put(context.Background(), &Document{Name: "x", Data: []byte("y")}); err == nil {
		t.Fatal("expected error for missing parent directory")
	}
}

func TestStdoutStorePut(t *testing.T) {
	var buf bytes.Buffer
	s := &StdoutStore{Out: &buf}

	if err := s.Put(context.Background(), &Document{Name: "x", Data: []byte("payload")}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if buf.String() != "payload" {
		t.Errorf("stdout content = %q", buf.String())
	}
}

func TestNewOCIStoreDefaultsTag(t *testing.T) {
	s, err := NewOCIStore("oci://ghcr.io/acme/status")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if s.Reference() != "ghcr.io/acme/status:latest" {
		t.Errorf("reference = %q", s.Reference())
	}
}

func TestNewOCIStoreParsesComponents(t *testing.T) {
	s, err := NewOCIStore("oci://localhost:5000/team/status:v2")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if s.registry != "localhost:5000" || s.repository != "team/status" || s.tag != "v2" {
		t.Errorf("parsed = %q %q %q", s.registry, s.repository, s.tag)
	}
}
