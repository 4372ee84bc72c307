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
	"runtime"

	"github.com/statuskit/statuskit/pkg/status"
)

// runtimeProvider reports Go runtime statistics of the daemon process.
type runtimeProvider struct{}

func (runtimeProvider) Render(w status.Writer, _ status.Mode) error {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	lines := []string{
		fmt.Sprintf("go version: %s", runtime.Version()),
		fmt.Sprintf("os/arch: %s/%s", runtime.GOOS, runtime.GOARCH),
		fmt.Sprintf("goroutines: %d", runtime.NumGoroutine()),
		fmt.Sprintf("gomaxprocs: %d", runtime.GOMAXPROCS(0)),
		fmt.Sprintf("num cpu: %d", runtime.NumCPU()),
		fmt.Sprintf("heap alloc bytes: %d", mem.HeapAlloc),
		fmt.Sprintf("heap sys bytes: %d", mem.HeapSys),
		fmt.Sprintf("gc cycles: %d", mem.NumGC),
	}

	for _, line := range lines {
		if _, err := fmt.Fprint(w, line); err != nil {
			return err
		}
		if err := w.WriteLine(); err != nil {
			return err
		}
	}
	return nil
}
