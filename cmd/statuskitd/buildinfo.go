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

package main

import (
	"fmt"
	"runtime/debug"

	skerrors "github.com/statuskit/statuskit/pkg/errors"
	"github.com/statuskit/statuskit/pkg/status"
)

// buildInfoProvider reports the binary's embedded module build metadata.
type buildInfoProvider struct{}

func (buildInfoProvider) Render(w status.Writer, _ status.Mode) error {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return skerrors.New(skerrors.ErrCodeUnavailable, "binary carries no build info")
	}

	if err := writeLine(w, "module: %s", info.Main.Path); err != nil {
		return err
	}
	if err := writeLine(w, "version: %s", info.Main.Version); err != nil {
		return err
	}
	if err := writeLine(w, "go: %s", info.GoVersion); err != nil {
		return err
	}

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision", "vcs.time", "vcs.modified", "GOOS", "GOARCH":
			if err := writeLine(w, "%s: %s", setting.Key, setting.Value); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeLine(w status.Writer, format string, args ...any) error {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		return err
	}
	return w.WriteLine()
}
