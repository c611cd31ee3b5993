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

// Package fileutil contains the filesystem operations the manager can request.
package fileutil

import (
	"os"
)

var fs fileSystem = osFS{}

type fileSystem interface {
	IsNotExist(err error) bool
	Mkdir(path string, perm os.FileMode) error
	OpenFile(name string, flag int, perm os.FileMode) (writableFile, error)
	Remove(name string) error
	Stat(name string) (os.FileInfo, error)
}

type writableFile interface {
	Write(b []byte) (n int, err error)
	Sync() error
	Close() error
}

// osFS implements fileSystem using the local disk.
type osFS struct{}

func (osFS) IsNotExist(err error) bool                 { return os.IsNotExist(err) }
func (osFS) Mkdir(path string, perm os.FileMode) error { return os.Mkdir(path, perm) }
func (osFS) Remove(name string) error                  { return os.Remove(name) }
func (osFS) Stat(name string) (os.FileInfo, error)     { return os.Stat(name) }
func (osFS) OpenFile(name string, flag int, perm os.FileMode) (writableFile, error) {
	return os.OpenFile(name, flag, perm)
}
