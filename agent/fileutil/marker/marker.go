// Copyright 2026 Amazon.com, Inc. or its affiliates. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"). You may not
// use this file except in compliance with the License. A copy of the
// License is located at
//
// http://aws.amazon.com/apache2.0/
//
// or in the "license" file accompanying this file. This file is distributed
// on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND,
// either express or implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package marker implements the provisioning marker: a file whose presence
// records that the manager finished the initial resource pull.
package marker

import (
	"fmt"
	"os"

	"github.com/xandium/bot-supervisor/agent/fileutil"
	"github.com/xandium/bot-supervisor/agent/log"
)

// IMarker is the provisioning gate used by the command interpreter.
type IMarker interface {
	Exists() bool
	Set() error
}

// Marker is backed by a file at Path. Nothing is cached; the marker may be
// created by another process before or while the supervisor runs.
type Marker struct {
	Path string
	log  log.T
}

// New returns a Marker for path, usually relative to the working directory.
func New(log log.T, path string) *Marker {
	return &Marker{Path: path, log: log}
}

// Exists stats the marker file. A marker that cannot be checked counts as
// present so that no pull is requested.
func (m *Marker) Exists() bool {
	exists, err := fileutil.LocalFileExist(m.Path)
	if err != nil {
		m.log.Warnf("Unable to check provisioning marker %v: %v", m.Path, err)
		return true
	}
	return exists
}

// Set creates the marker with empty contents. Calling it again is a no-op.
func (m *Marker) Set() error {
	// O_EXCL keeps an existing marker untouched
	f, err := os.OpenFile(m.Path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return nil
		}
		return fmt.Errorf("unable to create provisioning marker %v: %v", m.Path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("unable to close provisioning marker %v: %v", m.Path, err)
	}
	return nil
}
