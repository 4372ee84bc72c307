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

package api

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	skerrors "github.com/statuskit/statuskit/pkg/errors"
	"github.com/statuskit/statuskit/pkg/render"
	"github.com/statuskit/statuskit/pkg/server"
	"github.com/statuskit/statuskit/pkg/sink"
	"github.com/statuskit/statuskit/pkg/status"
)

// Route paths served by the handler.
const (
	statusPath        = "/v1/status"
	statusSubtreePath = "/v1/status/"
	flatPath          = "/v1/status.txt"
	archivePath       = "/v1/status.zip"
	providersSegment  = "providers"
)

// downloadTimeFormat names downloaded documents after the capture moment,
// minute precision with the numeric zone offset.
const downloadTimeFormat = "20060102-1504-0700"

// Handler serves the status routes. Documents are rendered into a buffer
// before any response byte is written, so provider selection errors still
// produce a clean structured error envelope.
type Handler struct {
	source     render.Source
	dispatcher *render.Dispatcher
}

// NewHandler creates a handler rendering from the given provider source.
func NewHandler(source render.Source) *Handler {
	return &Handler{
		source:     source,
		dispatcher: render.NewDispatcher(source),
	}
}

// Routes returns the handler's route table for server registration.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		statusPath:        h.HandleIndex,
		statusSubtreePath: h.HandleProviderPath,
		flatPath:          h.HandleFlat,
		archivePath:       h.HandleArchive,
	}
}

// HandleIndex serves the interactive HTML index with every interactive
// provider's section.
func (h *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	h.writeInteractivePage(w, r, "")
}

// HandleProviderPath routes everything under /v1/status/: the provider
// listing, single-provider flat text, and single-provider detail pages.
func (h *Handler) HandleProviderPath(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, statusSubtreePath)
	switch {
	case rest == providersSegment:
		h.handleProviders(w, r)
	case strings.HasSuffix(rest, ".txt"):
		h.writeFlat(w, r, strings.TrimSuffix(rest, ".txt"))
	default:
		h.writeInteractivePage(w, r, rest)
	}
}

// HandleFlat serves the full flat text document.
func (h *Handler) HandleFlat(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	h.writeFlat(w, r, "")
}

// HandleArchive serves the zip bundle with one entry per provider plus
// attachment entries.
func (h *Handler) HandleArchive(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}

	var buf bytes.Buffer
	arch := render.NewArchive(&buf)
	if err := h.dispatcher.Render(arch, status.ModeArchive, ""); err != nil {
		server.WriteErrorFromErr(w, r, err, "Rendering status archive failed", nil)
		return
	}
	if err := arch.Close(); err != nil {
		server.WriteErrorFromErr(w, r, err, "Finalizing status archive failed", nil)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", downloadDisposition("zip"))
	w.Header().Set("X-Status-Providers", strconv.Itoa(len(h.source.Providers())))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// handleProviders serves the JSON navigation listing.
func (h *Handler) handleProviders(w http.ResponseWriter, r *http.Request) {
	sink.RespondJSON(w, http.StatusOK, status.Infos(h.source.Providers()))
}

// writeFlat renders the flat document, restricted to one provider when
// label is non-empty.
func (h *Handler) writeFlat(w http.ResponseWriter, r *http.Request, label string) {
	var buf bytes.Buffer
	if err := h.dispatcher.Render(render.NewFlat(&buf), status.ModeFlat, label); err != nil {
		server.WriteErrorFromErr(w, r, err, "Rendering status document failed", nil)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", downloadDisposition("txt"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// requireGet enforces the read-only contract of every status route.
func requireGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet {
		return true
	}
	w.Header().Set("Allow", http.MethodGet)
	server.WriteError(w, r, http.StatusMethodNotAllowed, skerrors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{
			"method": r.Method,
		})
	return false
}

func downloadDisposition(ext string) string {
	return fmt.Sprintf("attachment; filename=%q",
		"status-"+time.Now().Format(downloadTimeFormat)+"."+ext)
}
