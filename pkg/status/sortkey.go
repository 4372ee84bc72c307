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

import "strconv"

// assignSortKey returns the resolved title, or the first free candidate in
// the sequence title, title0, title1, ... when the title is already taken
// in this rebuild pass.
//
// The suffix is a bare integer with no separator. Archive entry names are
// derived from titles keyed this way and external tooling consumes them;
// the format must not change.
func assignSortKey(title string, taken map[string]struct{}) string {
	key := title
	for i := 0; ; i++ {
		if _, ok := taken[key]; !ok {
			return key
		}
		key = title + strconv.Itoa(i)
	}
}
