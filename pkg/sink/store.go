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
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	skerrors "github.com/statuskit/statuskit/pkg/errors"
)

const (
	// ConfigMapScheme marks a Kubernetes ConfigMap target (cm://namespace/name).
	ConfigMapScheme = "cm://"
	// OCIScheme marks an OCI registry target (oci://registry/repository:tag).
	OCIScheme = "oci://"
	// StdoutRef addresses standard output.
	StdoutRef = "-"
)

// ParseStoreRef selects a Store for the given reference string.
//
//	""        or "-"  stdout
//	cm://ns/name      Kubernetes ConfigMap
//	oci://host/r:tag  OCI registry
//	anything else     local file path (a trailing separator or an existing
//	                  directory stores under the document's own name)
//
// A reference carrying an unrecognized URI scheme is rejected rather than
// treated as a file path.
func ParseStoreRef(ref string) (Store, error) {
	trimmed := strings.TrimSpace(ref)

	switch {
	case trimmed == "" || trimmed == StdoutRef:
		return &StdoutStore{}, nil

	case strings.HasPrefix(trimmed, ConfigMapScheme):
		namespace, name, err := parseConfigMapRef(trimmed)
		if err != nil {
			return nil, err
		}
		return NewConfigMapStore(namespace, name), nil

	case strings.HasPrefix(trimmed, OCIScheme):
		return NewOCIStore(trimmed)

	case strings.Contains(trimmed, "://"):
		scheme := trimmed[:strings.Index(trimmed, "://")]
		return nil, skerrors.NewWithContext(skerrors.ErrCodeInvalidRequest,
			"unsupported store scheme", map[string]any{"scheme": scheme, "ref": ref})

	default:
		return &FileStore{Path: trimmed}, nil
	}
}

// FileStore writes captured documents to the local filesystem.
type FileStore struct {
	// Path is a file path, or a directory under which the document's own
	// name is used.
	Path string
}

// Put writes the document. Parent directories are not created; a missing
// directory is the caller's mistake and surfaces as-is.
func (s *FileStore) Put(_ context.Context, doc *Document) error {
	target := s.Path
	if info, err := os.Stat(target); (err == nil && info.IsDir()) || strings.HasSuffix(target, string(os.PathSeparator)) {
		target = filepath.Join(target, doc.Name)
	}

	if err := os.WriteFile(target, doc.Data, 0o600); err != nil {
		return skerrors.Wrap(skerrors.ErrCodeInternal, "failed to write capture file", err)
	}
	return nil
}

// StdoutStore writes captured documents to standard output.
type StdoutStore struct {
	// Out overrides the destination; nil means os.Stdout.
	Out io.Writer
}

func (s *StdoutStore) Put(_ context.Context, doc *Document) error {
	out := s.Out
	if out == nil {
		out = os.Stdout
	}
	if _, err := out.Write(doc.Data); err != nil {
		return skerrors.Wrap(skerrors.ErrCodeInternal, "failed to write capture to stdout", err)
	}
	return nil
}

// parseConfigMapRef parses a ConfigMap reference in the format
// cm://namespace/name and returns the namespace and name components.
func parseConfigMapRef(ref string) (namespace, name string, err error) {
	if !strings.HasPrefix(ref, ConfigMapScheme) {
		return "", "", skerrors.New(skerrors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid ConfigMap reference: must start with %s", ConfigMapScheme))
	}

	path := strings.TrimPrefix(ref, ConfigMapScheme)

	parts := strings.SplitN(path, "/", 2)
	if len(parts) != 2 {
		return "", "", skerrors.NewWithContext(skerrors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid ConfigMap reference format: expected %snamespace/name", ConfigMapScheme),
			map[string]any{"ref": ref})
	}

	namespace = strings.TrimSpace(parts[0])
	name = strings.TrimSpace(parts[1])

	if namespace == "" {
		return "", "", skerrors.New(skerrors.ErrCodeInvalidRequest, "invalid ConfigMap reference: namespace cannot be empty")
	}
	if name == "" {
		return "", "", skerrors.New(skerrors.ErrCodeInvalidRequest, "invalid ConfigMap reference: name cannot be empty")
	}

	return namespace, name, nil
}
