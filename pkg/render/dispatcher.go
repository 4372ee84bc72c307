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
	"fmt"
	"io"
	"log/slog"
	"time"

	skerrors "github.com/statuskit/statuskit/pkg/errors"
	"github.com/statuskit/statuskit/pkg/status"
)

// failureMarker is the literal failure line appended to a section whose
// provider raised an error. External tooling greps for it; preserved
// verbatim.
const failureMarker = "Configuration Printer failed: "

// Source yields the providers to render. *status.Cache implements it.
type Source interface {
	Providers() []*status.Descriptor
	Provider(label string) (*status.Descriptor, bool)
}

// escapeToggler is implemented by the interactive writer; the dispatcher
// sets the filter per provider from the descriptor's EscapeOutput flag.
type escapeToggler interface {
	SetEscaping(on bool)
}

// Dispatcher selects providers from a source and renders them against a
// mode-appropriate writer. A single provider's failure never aborts the
// remaining providers; writer failures (the byte sink is gone) do.
type Dispatcher struct {
	source Source
}

// NewDispatcher creates a dispatcher over the given provider source.
func NewDispatcher(source Source) *Dispatcher {
	return &Dispatcher{source: source}
}

// Render writes all providers supporting mode to w, in cache order. A
// non-empty labelFilter restricts the pass to the provider registered under
// that label; an unmatched filter returns a not-found error without writing
// any provider output. In archive mode a second pass streams every selected
// provider's attachments.
func (d *Dispatcher) Render(w status.Writer, mode status.Mode, labelFilter string) error {
	start := time.Now()
	selected, err := d.selectProviders(mode, labelFilter)
	if err != nil {
		renderTotal.WithLabelValues(string(mode), "not_found").Inc()
		return err
	}

	for _, desc := range selected {
		if err := d.RenderProvider(w, desc, mode); err != nil {
			renderTotal.WithLabelValues(string(mode), "error").Inc()
			return err
		}
	}

	if mode == status.ModeArchive && w.SupportsAttachments() {
		if err := d.writeAttachments(w, selected, mode); err != nil {
			renderTotal.WithLabelValues(string(mode), "error").Inc()
			return err
		}
	}

	renderTotal.WithLabelValues(string(mode), "success").Inc()
	renderDuration.WithLabelValues(string(mode)).Observe(time.Since(start).Seconds())
	return nil
}

// RenderProvider writes one provider's section to w: begin, render, end.
// A provider error or panic is captured, surfaced inline as the failure
// marker, logged, and not returned; only writer errors come back.
func (d *Dispatcher) RenderProvider(w status.Writer, desc *status.Descriptor, mode status.Mode) error {
	if err := w.BeginSection(desc.Title); err != nil {
		return err
	}

	if t, ok := w.(escapeToggler); ok {
		t.SetEscaping(desc.EscapeOutput)
		defer t.SetEscaping(false)
	}

	if cause := renderCaptured(desc, w, mode); cause != nil {
		providerFailures.Inc()
		slog.Error("status provider failed",
			"label", desc.Label,
			"mode", mode,
			"error", cause,
		)
		if err := w.WriteLine(); err != nil {
			return err
		}
		if _, err := io.WriteString(w, failureMarker+cause.Error()); err != nil {
			return err
		}
		if err := w.WriteLine(); err != nil {
			return err
		}
	}

	return w.EndSection()
}

// renderCaptured invokes the provider and converts a panic into an error so
// one misbehaving provider cannot blank the whole document.
func renderCaptured(desc *status.Descriptor, w status.Writer, mode status.Mode) (cause error) {
	defer func() {
		if r := recover(); r != nil {
			cause = skerrors.New(skerrors.ErrCodeRenderFailed, fmt.Sprintf("panic: %v", r))
		}
	}()
	return desc.Render(w, mode)
}

func (d *Dispatcher) selectProviders(mode status.Mode, labelFilter string) ([]*status.Descriptor, error) {
	if labelFilter != "" {
		desc, ok := d.source.Provider(labelFilter)
		if !ok {
			return nil, skerrors.NewWithContext(
				skerrors.ErrCodeNotFound,
				"no status provider with the requested label",
				map[string]any{"label": labelFilter},
			)
		}
		return []*status.Descriptor{desc}, nil
	}

	var selected []*status.Descriptor
	for _, desc := range d.source.Providers() {
		if desc.SupportsMode(mode) {
			selected = append(selected, desc)
		}
	}
	return selected, nil
}

// writeAttachments streams each selected provider's attachments into the
// archive. Open and copy failures abandon that attachment best effort and
// continue with the next one.
func (d *Dispatcher) writeAttachments(w status.Writer, selected []*status.Descriptor, mode status.Mode) error {
	for _, desc := range selected {
		atts := desc.Attachments(mode)
		if len(atts) == 0 {
			continue
		}
		for _, att := range atts {
			src, err := att.Open()
			if err != nil {
				attachmentFailures.Inc()
				slog.Error("opening attachment failed",
					"label", desc.Label,
					"name", att.Name(),
					"error", err,
				)
				continue
			}
			if err := w.WriteAttachment(desc.Title, att.Name(), src); err != nil {
				attachmentFailures.Inc()
				slog.Error("writing attachment failed",
					"label", desc.Label,
					"name", att.Name(),
					"error", err,
				)
			}
		}
		// Close the group so an adjacent provider with the same title gets
		// its own counter value.
		if err := w.EndSection(); err != nil {
			return err
		}
	}
	return nil
}
