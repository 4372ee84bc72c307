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

package render

import (
	"archive/zip"
	"fmt"
	"io"

	"github.com/google/uuid"

	skerrors "github.com/statuskit/statuskit/pkg/errors"
)

// Archive writes provider output into a zip container. Section entries are
// named "NNN-<title>.txt" and attachment entries "NNN-<title>/<name>"; the
// three-digit counter is one monotonically increasing sequence shared by
// sections and attachment groups. External tooling consumes these names;
// the format must not change.
type Archive struct {
	zw *zip.Writer

	counter int
	entry   io.Writer
	// group holds the entry-name prefix of the open attachment group, or ""
	// when none is open. A group ends on EndSection or a title change.
	group      string
	groupTitle string
}

// NewArchive creates an archive writer streaming a zip container to w.
// Close must be called to finalize the container.
func NewArchive(w io.Writer) *Archive {
	return &Archive{zw: zip.NewWriter(w)}
}

// BeginSection implements status.Writer. It opens the section's text entry
// and claims the next counter value.
func (a *Archive) BeginSection(title string) error {
	a.closeGroup()
	name := fmt.Sprintf("%03d-%s.txt", a.counter, title)
	a.counter++

	entry, err := a.zw.Create(name)
	if err != nil {
		return skerrors.Wrap(skerrors.ErrCodeInternal, "creating archive entry "+name, err)
	}
	a.entry = entry
	return nil
}

// Write implements status.Writer.
func (a *Archive) Write(p []byte) (int, error) {
	if a.entry == nil {
		return 0, skerrors.New(skerrors.ErrCodeInternal, "write outside of an archive section")
	}
	return a.entry.Write(p)
}

// WriteLine implements status.Writer.
func (a *Archive) WriteLine() error {
	_, err := a.Write([]byte{'\n'})
	return err
}

// EndSection implements status.Writer. It flushes the open entry and closes
// any open attachment group.
func (a *Archive) EndSection() error {
	a.closeGroup()
	a.entry = nil
	if err := a.zw.Flush(); err != nil {
		return skerrors.Wrap(skerrors.ErrCodeInternal, "flushing archive entry", err)
	}
	return nil
}

// SupportsAttachments implements status.Writer.
func (a *Archive) SupportsAttachments() bool { return true }

// WriteAttachment implements status.Writer. Consecutive attachments for one
// title share a group directory named with a single counter value; the byte
// source is closed whether or not the copy succeeds. An empty name gets a
// randomized fallback so the entry is never unnamed.
func (a *Archive) WriteAttachment(title, name string, src io.ReadCloser) error {
	defer src.Close()

	if a.group == "" || a.groupTitle != title {
		a.group = fmt.Sprintf("%03d-%s", a.counter, title)
		a.groupTitle = title
		a.counter++
	}
	if name == "" {
		name = "file" + uuid.NewString()
	}

	entry, err := a.zw.Create(a.group + "/" + name)
	if err != nil {
		return skerrors.Wrap(skerrors.ErrCodeInternal, "creating attachment entry "+name, err)
	}
	if _, err := io.Copy(entry, src); err != nil {
		return skerrors.Wrap(skerrors.ErrCodeInternal, "copying attachment "+name, err)
	}
	return nil
}

// Close finalizes the zip container. Any open entry is closed exactly once
// by the underlying zip writer.
func (a *Archive) Close() error {
	a.closeGroup()
	a.entry = nil
	return a.zw.Close()
}

func (a *Archive) closeGroup() {
	a.group = ""
	a.groupTitle = ""
}
