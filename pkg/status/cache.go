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
	"io"
	"log/slog"
	"slices"
	"sort"
	"sync"
)

// Cache maintains the current ordered set of provider descriptors. It polls
// the discovery source on every read and rebuilds only when the change
// token differs from the last observed one; otherwise reads are served from
// the cached snapshot. A rebuild is all-or-nothing under the cache mutex so
// concurrent readers never observe a partially built view.
type Cache struct {
	mu       sync.Mutex
	resolver TitleResolver

	discover  func() (Discovery, error)
	discovery Discovery
	failed    bool

	token   string
	ordered []*Descriptor
	byLabel map[string]*Descriptor
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithDiscovery supplies a ready discovery source.
func WithDiscovery(d Discovery) CacheOption {
	return func(c *Cache) {
		c.discovery = d
	}
}

// WithDiscoveryFunc defers discovery construction to first use. A factory
// error leaves the cache permanently empty; the condition is logged once
// and is not fatal to the host.
func WithDiscoveryFunc(f func() (Discovery, error)) CacheOption {
	return func(c *Cache) {
		c.discover = f
	}
}

// WithResolver sets the title resolver. When unset, symbolic titles are
// stripped of their marker and used as-is.
func WithResolver(r TitleResolver) CacheOption {
	return func(c *Cache) {
		if r != nil {
			c.resolver = r
		}
	}
}

// NewCache creates an empty cache. The first read triggers discovery.
func NewCache(opts ...CacheOption) *Cache {
	c := &Cache{
		resolver: passthroughResolver{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Providers returns the current snapshot in sort-key order. The returned
// slice is shared between callers and must not be modified; the same slice
// is returned until discovery reports a change.
func (c *Cache) Providers() []*Descriptor {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.refreshLocked()
	return c.ordered
}

// Provider returns the descriptor registered under the given label.
func (c *Cache) Provider(label string) (*Descriptor, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.refreshLocked()
	d, ok := c.byLabel[label]
	return d, ok
}

// Close releases the discovery subscription and drops the cached state.
// The cache stays empty afterwards.
func (c *Cache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var err error
	if closer, ok := c.discovery.(io.Closer); ok {
		err = closer.Close()
	}
	c.discovery = nil
	c.discover = nil
	c.failed = true
	c.token = ""
	c.ordered = nil
	c.byLabel = nil
	return err
}

func (c *Cache) refreshLocked() {
	if c.failed {
		return
	}

	if c.discovery == nil {
		if c.discover == nil {
			c.failed = true
			slog.Error("no discovery source configured, status providers unavailable")
			return
		}
		d, err := c.discover()
		if err != nil {
			c.failed = true
			slog.Error("discovery initialization failed, status providers unavailable", "error", err)
			return
		}
		c.discovery = d
	}

	token := c.discovery.ChangeToken()
	if token == c.token && c.ordered != nil {
		return
	}
	c.rebuildLocked(token)
}

// rebuildLocked replaces the snapshot wholesale. Every registration ends up
// in the ordered list even when titles or labels collide; only the label
// lookup keeps the first claimant.
func (c *Cache) rebuildLocked(token string) {
	regs := c.discovery.Snapshot()

	taken := make(map[string]struct{}, len(regs))
	byLabel := make(map[string]*Descriptor, len(regs))
	ordered := make([]*Descriptor, 0, len(regs))

	for _, reg := range regs {
		title := c.resolver.Resolve(reg.Title, reg)
		key := assignSortKey(title, taken)
		taken[key] = struct{}{}

		label := reg.Label
		if label == "" {
			label = key
		}

		d := &Descriptor{
			Title:        title,
			Label:        label,
			SortKey:      key,
			EscapeOutput: reg.EscapeOutput,
			modes:        slices.Clone(reg.Modes),
			source:       reg.Source,
		}
		ordered = append(ordered, d)

		if _, dup := byLabel[label]; dup {
			slog.Debug("duplicate provider label, keeping first", "label", label)
			continue
		}
		byLabel[label] = d
	}

	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].SortKey < ordered[j].SortKey
	})

	c.ordered = ordered
	c.byLabel = byLabel
	c.token = token

	cacheRebuilds.Inc()
	cachedProviders.Set(float64(len(ordered)))
	slog.Debug("provider cache rebuilt", "providers", len(ordered), "token", token)
}
