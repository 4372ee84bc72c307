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

import "io"

// HTML writes the interactive view's body text. Section boundaries are
// expressed by the surrounding page structure, so BeginSection and
// EndSection emit nothing. The escaping filter is toggled per provider by
// the dispatcher from the provider's EscapeOutput flag.
//
// While escaping is enabled, '<', '>' and '&' become their entity forms,
// space becomes "&nbsp;", and any run of CR/LF characters collapses to a
// single "<br/>" element. While disabled, bytes pass through unchanged.
type HTML struct {
	noAttachments
	w io.Writer

	escaping bool
	// prevBreak tracks whether the last filtered byte was CR or LF, so a
	// run of break characters emits exactly one break element.
	prevBreak bool
}

// NewHTML creates an interactive writer over w with escaping disabled.
func NewHTML(w io.Writer) *HTML {
	return &HTML{w: w}
}

// SetEscaping toggles the escaping filter and resets its line-break state.
func (h *HTML) SetEscaping(on bool) {
	h.escaping = on
	h.prevBreak = false
}

// BeginSection implements status.Writer.
func (h *HTML) BeginSection(string) error { return nil }

// EndSection implements status.Writer.
func (h *HTML) EndSection() error { return nil }

// Write implements status.Writer.
func (h *HTML) Write(p []byte) (int, error) {
	if !h.escaping {
		return h.w.Write(p)
	}
	for i, b := range p {
		if err := h.writeByte(b); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// WriteLine implements status.Writer. The line feed runs through the same
// filter, so it collapses with adjacent breaks while escaping is enabled.
func (h *HTML) WriteLine() error {
	_, err := h.Write([]byte{'\n'})
	return err
}

func (h *HTML) writeByte(b byte) error {
	var out string
	switch b {
	case '\r', '\n':
		if h.prevBreak {
			return nil
		}
		h.prevBreak = true
		out = "<br/>\n"
	case '<':
		h.prevBreak = false
		out = "&lt;"
	case '>':
		h.prevBreak = false
		out = "&gt;"
	case '&':
		h.prevBreak = false
		out = "&amp;"
	case ' ':
		h.prevBreak = false
		out = "&nbsp;"
	default:
		h.prevBreak = false
		_, err := h.w.Write([]byte{b})
		return err
	}
	_, err := io.WriteString(h.w, out)
	return err
}
