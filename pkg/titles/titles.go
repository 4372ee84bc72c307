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

// Package titles resolves symbolic provider titles against per-provider
// message catalogs. Symbolic titles carry a "%" prefix; everything else
// passes through untouched.
package titles

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/statuskit/statuskit/pkg/status"
)

// Resolver looks up symbolic titles in the registering provider's catalog
// under a fixed display language.
type Resolver struct {
	lang language.Tag
}

// NewResolver creates a resolver for the given display language. The
// undefined tag falls back to English.
func NewResolver(lang language.Tag) *Resolver {
	if lang == language.Und {
		lang = language.English
	}
	return &Resolver{lang: lang}
}

// Resolve implements status.TitleResolver. Symbolic titles without a
// catalog, and keys the catalog does not translate, resolve to the bare
// key.
func (r *Resolver) Resolve(raw string, reg status.Registration) string {
	if !strings.HasPrefix(raw, status.SymbolicTitlePrefix) {
		return raw
	}
	key := strings.TrimPrefix(raw, status.SymbolicTitlePrefix)
	if reg.Catalog == nil {
		return key
	}
	p := message.NewPrinter(r.lang, message.Catalog(reg.Catalog))
	return p.Sprintf(key)
}

// NewCatalog builds a single-language catalog from key/title pairs, for
// hosts that declare their provider titles inline.
func NewCatalog(lang language.Tag, entries map[string]string) (catalog.Catalog, error) {
	b := catalog.NewBuilder(catalog.Fallback(lang))
	for key, title := range entries {
		if err := b.SetString(lang, key, title); err != nil {
			return nil, err
		}
	}
	return b, nil
}
