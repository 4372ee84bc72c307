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
	"strings"

	skerrors "github.com/statuskit/statuskit/pkg/errors"
)

// Mode represents the rendering encoding for provider output.
type Mode string

const (
	// ModeInteractive renders HTML text for the paged web view.
	ModeInteractive Mode = "interactive"
	// ModeFlat renders a flat plain-text document.
	ModeFlat Mode = "flat"
	// ModeArchive renders a zip bundle with per-provider entries.
	ModeArchive Mode = "archive"
)

// IsUnknown reports whether the mode is outside the supported set.
func (m Mode) IsUnknown() bool {
	switch m {
	case ModeInteractive, ModeFlat, ModeArchive:
		return false
	default:
		return true
	}
}

// SupportedModes returns a list of all render mode names.
// Useful for validation and help messages.
func SupportedModes() []string {
	return []string{
		string(ModeInteractive),
		string(ModeFlat),
		string(ModeArchive),
	}
}

// ParseMode normalizes and validates a mode name.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if m.IsUnknown() {
		return "", skerrors.NewWithContext(
			skerrors.ErrCodeInvalidRequest,
			"unknown render mode",
			map[string]any{
				"mode":      s,
				"supported": SupportedModes(),
			},
		)
	}
	return m, nil
}
