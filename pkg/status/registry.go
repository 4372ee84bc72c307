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
	"fmt"
	"path"
	"strconv"
	"strings"
	"sync"

	skerrors "github.com/statuskit/statuskit/pkg/errors"
)

// Registry is the in-process Discovery implementation. Hosts register
// providers at startup and may add or remove them at runtime; the change
// token advances on every mutation. Safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	gen   uint64
	next  uint64
	regs  map[uint64]Registration
	order []uint64
}

// NewRegistry creates an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{
		regs: make(map[uint64]Registration),
	}
}

// Register adds a provider registration. Source and Title are required.
// The returned handle removes the registration again.
func (r *Registry) Register(reg Registration) (*Handle, error) {
	if reg.Source == nil {
		return nil, skerrors.New(skerrors.ErrCodeInvalidRequest, "registration requires a source")
	}
	if strings.TrimSpace(reg.Title) == "" {
		return nil, skerrors.New(skerrors.ErrCodeInvalidRequest, "registration requires a title")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.next
	r.next++
	r.regs[id] = reg
	r.order = append(r.order, id)
	r.gen++

	return &Handle{registry: r, id: id}, nil
}

// ChangeToken implements Discovery.
func (r *Registry) ChangeToken() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return strconv.FormatUint(r.gen, 10)
}

// Snapshot implements Discovery. Registrations are returned in registration
// order.
func (r *Registry) Snapshot() []Registration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	regs := make([]Registration, 0, len(r.order))
	for _, id := range r.order {
		regs = append(regs, r.regs[id])
	}
	return regs
}

func (r *Registry) remove(id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.regs[id]; !ok {
		return
	}
	delete(r.regs, id)
	for i, other := range r.order {
		if other == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.gen++
}

// Handle identifies one registration for later removal.
type Handle struct {
	registry *Registry
	id       uint64
	once     sync.Once
}

// Deregister removes the registration from its registry. Safe to call more
// than once.
func (h *Handle) Deregister() {
	h.once.Do(func() {
		h.registry.remove(h.id)
	})
}

// Select returns a filtered Discovery over the registry, limited to
// registrations whose label (or raw title, when the label is empty) matches
// any of the comma-separated glob patterns in selector. Malformed patterns
// are rejected, which is the discovery-init failure case for caches built
// on a deferred view.
func (r *Registry) Select(selector string) (*View, error) {
	var patterns []string
	for _, p := range strings.Split(selector, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, err := path.Match(p, ""); err != nil {
			return nil, skerrors.Wrap(
				skerrors.ErrCodeInvalidRequest,
				fmt.Sprintf("malformed selector pattern %q", p),
				err,
			)
		}
		patterns = append(patterns, p)
	}
	if len(patterns) == 0 {
		return nil, skerrors.New(skerrors.ErrCodeInvalidRequest, "empty provider selector")
	}

	return &View{registry: r, patterns: patterns}, nil
}

// View is a filtered Discovery over a Registry. A view tracks the registry
// live until closed; a closed view yields nothing.
type View struct {
	registry *Registry
	patterns []string

	mu     sync.Mutex
	closed bool
}

// ChangeToken implements Discovery.
func (v *View) ChangeToken() string {
	if v.isClosed() {
		return "closed"
	}
	return v.registry.ChangeToken()
}

// Snapshot implements Discovery.
func (v *View) Snapshot() []Registration {
	if v.isClosed() {
		return nil
	}

	var regs []Registration
	for _, reg := range v.registry.Snapshot() {
		if v.matches(reg) {
			regs = append(regs, reg)
		}
	}
	return regs
}

// Close implements io.Closer, detaching the view from its registry.
func (v *View) Close() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
	return nil
}

func (v *View) isClosed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.closed
}

func (v *View) matches(reg Registration) bool {
	subject := reg.Label
	if subject == "" {
		subject = strings.TrimPrefix(reg.Title, SymbolicTitlePrefix)
	}
	for _, p := range v.patterns {
		if ok, _ := path.Match(p, subject); ok {
			return true
		}
	}
	return false
}
