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

	"github.com/urfave/cli/v3"

	"github.com/statuskit/statuskit/pkg/sink"
)

func providersCmd() *cli.Command {
	return &cli.Command{
		Name:                  "providers",
		EnableShellCompletion: true,
		Usage:                 "List the status providers registered with a running daemon",
		Description: `Fetch the provider listing from statuskitd and print each provider's
label, display title, and supported render modes.

# Examples

Table on the terminal:
  skctl providers --server http://localhost:8080 --format table

JSON for scripting:
  skctl providers --server http://localhost:8080 --format json`,
		Flags: []cli.Flag{
			serverFlag,
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"t"},
				Value:   string(sink.FormatTable),
				Usage:   fmt.Sprintf("Output format (supported values: %s)", sink.SupportedFormats()),
			},
			outputFlag,
			insecureTLSFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts, err := parseProvidersCmdOptions(cmd)
			if err != nil {
				return err
			}

			client, err := NewClient(opts.serverURL, WithInsecureTLS(opts.insecureTLS))
			if err != nil {
				return err
			}

			infos, err := client.FetchProviders(ctx)
			if err != nil {
				return fmt.Errorf("listing providers: %w", err)
			}

			w := sink.NewFileWriterOrStdout(opts.format, opts.output)
			defer func() { _ = w.Close() }()
			return w.Serialize(ctx, infos)
		},
	}
}

// providersCmdOptions holds parsed providers command options.
type providersCmdOptions struct {
	serverURL   string
	format      sink.Format
	output      string
	insecureTLS bool
}

// parseProvidersCmdOptions parses and validates command options.
func parseProvidersCmdOptions(cmd *cli.Command) (*providersCmdOptions, error) {
	opts := &providersCmdOptions{
		serverURL:   cmd.String("server"),
		format:      sink.Format(cmd.String("format")),
		output:      cmd.String("output"),
		insecureTLS: cmd.Bool("insecure-tls"),
	}

	if opts.format.IsUnknown() {
		return nil, fmt.Errorf("unknown output format: %q (supported values: %s)",
			opts.format, sink.SupportedFormats())
	}

	return opts, nil
}
