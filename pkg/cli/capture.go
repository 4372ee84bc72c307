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

	"github.com/urfave/cli/v3"

	"github.com/statuskit/statuskit/pkg/sink"
	"github.com/statuskit/statuskit/pkg/status"
)

func captureCmd() *cli.Command {
	return &cli.Command{
		Name:                  "capture",
		EnableShellCompletion: true,
		Usage:                 "Capture the rendered status document from a running daemon",
		Description: `Fetch the rendered status document from statuskitd and store the bytes.

Modes:
  flat     - plain-text document, one section per provider (default)
  archive  - zip bundle with one entry per provider plus attachments

Output targets:
  (empty) or "-"            stdout
  path/to/file              local file; a directory keeps the server's filename
  cm://namespace/name       Kubernetes ConfigMap via server-side apply
  oci://registry/repo:tag   OCI registry artifact push

# Examples

Capture the flat document to a file:
  skctl capture --server http://localhost:8080 --output status.txt

Capture one provider only:
  skctl capture --server http://localhost:8080 --label runtime

Push the archive to a registry:
  skctl capture --server http://localhost:8080 --mode archive \
    --output oci://ghcr.io/acme/status:latest`,
		Flags: []cli.Flag{
			serverFlag,
			&cli.StringFlag{
				Name:    "mode",
				Aliases: []string{"m"},
				Value:   string(status.ModeFlat),
				Usage:   "Capture mode: flat or archive",
			},
			&cli.StringFlag{
				Name:    "label",
				Aliases: []string{"l"},
				Usage:   "Restrict the capture to the provider with this label (flat mode only)",
			},
			outputFlag,
			insecureTLSFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts, err := parseCaptureCmdOptions(cmd)
			if err != nil {
				return err
			}

			client, err := NewClient(opts.serverURL, WithInsecureTLS(opts.insecureTLS))
			if err != nil {
				return err
			}

			slog.Debug("capturing status document",
				"server", opts.serverURL,
				"mode", opts.mode,
				"label", opts.label,
				"output", opts.output,
			)

			doc, err := client.FetchDocument(ctx, opts.mode, opts.label)
			if err != nil {
				return fmt.Errorf("capture failed: %w", err)
			}

			store, err := sink.ParseStoreRef(opts.output)
			if err != nil {
				return err
			}
			if err := store.Put(ctx, doc); err != nil {
				return fmt.Errorf("storing capture: %w", err)
			}

			slog.Debug("capture stored", "document", doc.Name, "bytes", len(doc.Data))
			return nil
		},
	}
}

// captureCmdOptions holds parsed capture command options.
type captureCmdOptions struct {
	serverURL   string
	mode        status.Mode
	label       string
	output      string
	insecureTLS bool
}

// parseCaptureCmdOptions parses and validates command options.
func parseCaptureCmdOptions(cmd *cli.Command) (*captureCmdOptions, error) {
	opts := &captureCmdOptions{
		serverURL:   cmd.String("server"),
		label:       cmd.String("label"),
		output:      cmd.String("output"),
		insecureTLS: cmd.Bool("insecure-tls"),
	}

	mode, err := status.ParseMode(cmd.String("mode"))
	if err != nil {
		return nil, err
	}
	if mode == status.ModeInteractive {
		return nil, fmt.Errorf("--mode must be %q or %q", status.ModeFlat, status.ModeArchive)
	}
	opts.mode = mode

	if opts.label != "" && mode != status.ModeFlat {
		return nil, fmt.Errorf("--label requires --mode=%s", status.ModeFlat)
	}

	return opts, nil
}
