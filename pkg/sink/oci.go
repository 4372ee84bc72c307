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
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/distribution/reference"
	ociv1 "github.com/opencontainers/image-spec/specs-go/v1"
	oras "oras.land/oras-go/v2"
	"oras.land/oras-go/v2/content/file"
	"oras.land/oras-go/v2/registry/remote"
	"oras.land/oras-go/v2/registry/remote/auth"
	"oras.land/oras-go/v2/registry/remote/credentials"

	"github.com/statuskit/statuskit/pkg/defaults"
	skerrors "github.com/statuskit/statuskit/pkg/errors"
)

// ArtifactType is the manifest artifact type for captured status documents.
const ArtifactType = "application/vnd.statuskit.capture"

// defaultOCITag is used when the reference names no tag.
const defaultOCITag = "latest"

// OCIStore pushes captured documents to an OCI registry as single-layer
// artifacts using ORAS. The layer media type is the document's content
// type, so a flat capture and an archive capture are distinguishable from
// the manifest alone.
type OCIStore struct {
	registry   string
	repository string
	tag        string

	// PlainHTTP uses HTTP instead of HTTPS for the registry connection.
	PlainHTTP bool
	// InsecureTLS skips TLS certificate verification.
	InsecureTLS bool
}

// NewOCIStore parses an oci://registry/repository:tag reference and
// returns a store pushing to it. A missing tag defaults to "latest".
func NewOCIStore(ref string) (*OCIStore, error) {
	if !strings.HasPrefix(ref, OCIScheme) {
		return nil, skerrors.New(skerrors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid OCI reference: must start with %s", OCIScheme))
	}

	named, err := reference.ParseNormalizedNamed(strings.TrimPrefix(ref, OCIScheme))
	if err != nil {
		return nil, skerrors.Wrap(skerrors.ErrCodeInvalidRequest, "invalid OCI reference", err)
	}

	tag := defaultOCITag
	if tagged, ok := named.(reference.Tagged); ok {
		tag = tagged.Tag()
	}

	return &OCIStore{
		registry:   reference.Domain(named),
		repository: reference.Path(named),
		tag:        tag,
	}, nil
}

// Reference returns the Docker-style image reference the store pushes to.
func (s *OCIStore) Reference() string {
	return fmt.Sprintf("%s/%s:%s", s.registry, s.repository, s.tag)
}

// Put packs the document as an OCI 1.1 artifact and copies it to the
// remote repository.
func (s *OCIStore) Put(ctx context.Context, doc *Document) error {
	pushCtx, cancel := context.WithTimeout(ctx, defaults.OCIPushTimeout)
	defer cancel()

	// ORAS file stores are directory-rooted; stage the document on disk.
	tempDir, err := os.MkdirTemp("", "skctl-push-*")
	if err != nil {
		return skerrors.Wrap(skerrors.ErrCodeInternal, "failed to create staging directory", err)
	}
	defer os.RemoveAll(tempDir)

	if err := os.WriteFile(filepath.Join(tempDir, doc.Name), doc.Data, 0o600); err != nil {
		return skerrors.Wrap(skerrors.ErrCodeInternal, "failed to stage capture", err)
	}

	fs, err := file.New(tempDir)
	if err != nil {
		return skerrors.Wrap(skerrors.ErrCodeInternal, "failed to create file store", err)
	}
	defer func() { _ = fs.Close() }()

	layerDesc, err := fs.Add(pushCtx, doc.Name, doc.ContentType, "")
	if err != nil {
		return skerrors.Wrap(skerrors.ErrCodeInternal, "failed to add capture to store", err)
	}

	manifestDesc, err := oras.PackManifest(pushCtx, fs, oras.PackManifestVersion1_1, ArtifactType,
		oras.PackManifestOptions{
			Layers: []ociv1.Descriptor{layerDesc},
			ManifestAnnotations: map[string]string{
				ociv1.AnnotationTitle:   doc.Name,
				ociv1.AnnotationCreated: time.Now().UTC().Format(time.RFC3339),
			},
		})
	if err != nil {
		return skerrors.Wrap(skerrors.ErrCodeInternal, "failed to pack manifest", err)
	}

	if err := fs.Tag(pushCtx, manifestDesc, s.tag); err != nil {
		return skerrors.Wrap(skerrors.ErrCodeInternal, "failed to tag manifest in local store", err)
	}

	repo, err := remote.NewRepository(fmt.Sprintf("%s/%s", s.registry, s.repository))
	if err != nil {
		return skerrors.Wrap(skerrors.ErrCodeInvalidRequest, "failed to initialize remote repository", err)
	}
	repo.PlainHTTP = s.PlainHTTP
	repo.Client = newRegistryAuthClient(s.PlainHTTP, s.InsecureTLS)

	slog.Info("pushing capture to OCI registry",
		"reference", s.Reference(),
		"document", doc.Name,
		"mediaType", doc.ContentType)

	desc, err := oras.Copy(pushCtx, fs, s.tag, repo, s.tag, oras.DefaultCopyOptions)
	if err != nil {
		return skerrors.Wrap(skerrors.ErrCodeUnavailable, "failed to push capture to registry", err)
	}

	slog.Info("capture pushed", "reference", s.Reference(), "digest", desc.Digest.String())
	return nil
}

// newRegistryAuthClient creates an HTTP client with optional TLS
// configuration and Docker credential support.
func newRegistryAuthClient(plainHTTP, insecureTLS bool) *auth.Client {
	credStore, _ := credentials.NewStoreFromDocker(credentials.StoreOptions{})

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if !plainHTTP && insecureTLS {
		if transport.TLSClientConfig == nil {
			transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
		} else {
			transport.TLSClientConfig.InsecureSkipVerify = true //nolint:gosec
		}
	}

	return &auth.Client{
		Client:     &http.Client{Transport: transport},
		Cache:      auth.NewCache(),
		Credential: credentials.Credential(credStore),
	}
}
