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

package fileutil

import (
	"fmt"
	"os"
)

const (
	// ReadWriteAccess is the mode of files written on behalf of the manager
	ReadWriteAccess os.FileMode = 0644

	// ReadWriteExecuteAccess is the mode of directories created on behalf of the manager
	ReadWriteExecuteAccess os.FileMode = 0755

	fileFlagsCreateOrTruncate = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
)

// MakeDir creates a single directory. The parent must already exist.
func MakeDir(path string) error {
	if err := fs.Mkdir(path, ReadWriteExecuteAccess); err != nil {
		return fmt.Errorf("failed to create directory %v: %v", path, err)
	}
	return nil
}

// RemoveDir removes an empty directory.
func RemoveDir(path string) error {
	fi, err := fs.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to remove directory %v: %v", path, err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("failed to remove directory %v: not a directory", path)
	}
	if err = fs.Remove(path); err != nil {
		return fmt.Errorf("failed to remove directory %v: %v", path, err)
	}
	return nil
}

// WriteAllBytes replaces the content of path with data, creating the file if
// needed. The data is synced to disk before returning.
func WriteAllBytes(path string, data []byte) (err error) {
	f, err := fs.OpenFile(path, fileFlagsCreateOrTruncate, ReadWriteAccess)
	if err != nil {
		return fmt.Errorf("failed to open %v for writing: %v", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close %v: %v", path, closeErr)
		}
	}()

	if _, err = f.Write(data); err != nil {
		return fmt.Errorf("failed to write %v: %v", path, err)
	}
	if err = f.Sync(); err != nil {
		return fmt.Errorf("failed to sync %v: %v", path, err)
	}
	return nil
}

// DeleteFile deletes the specified file. Directories are refused.
func DeleteFile(path string) error {
	fi, err := fs.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to delete %v: %v", path, err)
	}
	if fi.IsDir() {
		return fmt.Errorf("failed to delete %v: is a directory", path)
	}
	if err = fs.Remove(path); err != nil {
		return fmt.Errorf("failed to delete %v: %v", path, err)
	}
	return nil
}

// Exists returns true if the given file exists, false otherwise, ignoring any underlying error
func Exists(path string) bool {
	exist, _ := LocalFileExist(path)
	return exist
}

// LocalFileExist returns true if the given file exists, false otherwise.
func LocalFileExist(path string) (bool, error) {
	_, err := fs.Stat(path)
	if err == nil {
		return true, nil
	}
	if fs.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
