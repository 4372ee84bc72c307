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
	"context"
	"log/slog"

	"golang.org/x/text/language"

	"github.com/statuskit/statuskit/pkg/logging"
	"github.com/statuskit/statuskit/pkg/server"
	"github.com/statuskit/statuskit/pkg/status"
	"github.com/statuskit/statuskit/pkg/titles"
)

const (
	name           = "statuskitd"
	versionDefault = "dev"
)

// Build-time variables injected via ldflags.
var (
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve runs the status daemon over the given provider registry until the
// context is cancelled or a termination signal arrives. The provider cache
// polls the registry lazily, so providers registered or removed after
// startup appear on the next request.
func Serve(ctx context.Context, registry *status.Registry) error {
	logging.SetDefaultStructuredLogger(name, version)

	slog.Info("starting server",
		"name", name,
		"version", version,
		"commit", commit,
		"built", date,
	)

	cache := status.NewCache(
		status.WithDiscovery(registry),
		status.WithResolver(titles.NewResolver(language.English)),
	)
	defer func() { _ = cache.Close() }()

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(NewHandler(cache).Routes()),
	)

	return s.Run(ctx)
}
