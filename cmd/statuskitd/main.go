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
	"context"
	"log"

	"github.com/statuskit/statuskit/pkg/api"
	"github.com/statuskit/statuskit/pkg/status"
)

func main() {
	registry := status.NewRegistry()
	if err := registerHostProviders(registry); err != nil {
		log.Fatal(err)
	}

	if err := api.Serve(context.Background(), registry); err != nil {
		log.Fatal(err)
	}
}

// registerHostProviders adds the daemon's own diagnostic providers. Library
// consumers register theirs the same way before calling api.Serve.
func registerHostProviders(registry *status.Registry) error {
	if _, err := registry.Register(status.Registration{
		Source: runtimeProvider{},
		Title:  "Go Runtime",
		Label:  "runtime",
	}); err != nil {
		return err
	}

	_, err := registry.Register(status.Registration{
		Source: buildInfoProvider{},
		Title:  "Build Info",
		Label:  "buildinfo",
	})
	return err
}
