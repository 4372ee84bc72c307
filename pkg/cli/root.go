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

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/statuskit/statuskit/pkg/logging"
)

const (
	name           = "skctl"
	versionDefault = "dev"
)

// Build-time variables injected via ldflags.
var (
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Flags shared by every command.
var (
	serverFlag = &cli.StringFlag{
		Name:     "server",
		Aliases:  []string{"s"},
		Required: true,
		Sources:  cli.EnvVars("STATUSKIT_SERVER"),
		Usage:    "Base URL of the running statuskitd (e.g., http://localhost:8080)",
	}
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output target (default: stdout)",
	}
	insecureTLSFlag = &cli.BoolFlag{
		Name:  "insecure-tls",
		Usage: "Skip TLS certificate verification when talking to the daemon",
	}
)

// New builds the skctl command tree.
func New() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Usage:                 "Client for the statuskit status daemon",
		Description: `skctl talks to a running statuskitd and either captures the rendered
status document to a store, or lists the registered status providers.

# Examples

Capture the flat text document to stdout:
  skctl capture --server http://localhost:8080

Capture the zip bundle into a file:
  skctl capture --server http://localhost:8080 --mode archive --output status.zip

Capture one provider's section into a ConfigMap:
  skctl capture --server http://localhost:8080 --label runtime \
    --output cm://monitoring/statuskit-capture

Push the archive to an OCI registry:
  skctl capture --server http://localhost:8080 --mode archive \
    --output oci://ghcr.io/acme/status:latest

List the registered providers:
  skctl providers --server http://localhost:8080 --format table`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Sources: cli.EnvVars("LOG_LEVEL"),
				Value:   "warn",
				Usage:   "Log level (debug, info, warn, error)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Debug("starting", "name", name, "version", version, "commit", commit, "built", date)
			return ctx, nil
		},
		Commands: []*cli.Command{
			captureCmd(),
			providersCmd(),
		},
	}
}

// Execute runs the CLI. Called by main; exits non-zero on error.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := New().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
