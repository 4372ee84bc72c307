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

import "strings"

// Discovery yields the current provider set and a token that changes
// whenever the set changes. The cache polls it lazily; no notification
// callback exists. Implementations may additionally implement io.Closer to
// release their subscription when the cache shuts down.
type Discovery interface {
	// ChangeToken returns an opaque value that differs from the previously
	// returned one exactly when the registration set has changed.
	ChangeToken() string

	// Snapshot returns the current registrations.
	Snapshot() []Registration
}

// TitleResolver turns a raw, possibly symbolic title into a display string.
type TitleResolver interface {
	// Resolve returns the display title for raw, consulting the
	// registration's declared catalog for symbolic titles.
	Resolve(raw string, reg Registration) string
}

// passthroughResolver strips the symbolic marker and returns the key
// untranslated. Used when no resolver is configured.
type passthroughResolver struct{}

func (passthroughResolver) Resolve(raw string, _ Registration) string {
	return strings.TrimPrefix(raw, SymbolicTitlePrefix)
}
