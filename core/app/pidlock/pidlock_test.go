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

package pidlock

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/nightlyone/lockfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xandium/bot-supervisor/agent/log"
	"github.com/xandium/bot-supervisor/core/executor"
)

func TestAcquireAndRelease(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot-supervisor.pid")
	lock, err := NewPidLock(log.NewMockLog(), path, executor.NewProcessExecutor(log.NewMockLog()))
	require.NoError(t, err)

	assert.NoError(t, lock.Acquire())
	content, err := ioutil.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid())+"\n", string(content))

	assert.NoError(t, lock.Acquire(), "re-acquiring an owned lock")
	assert.NoError(t, lock.Release())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestAcquireBusy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot-supervisor.pid")
	require.NoError(t, ioutil.WriteFile(path, []byte(strconv.Itoa(os.Getppid())+"\n"), 0600))

	mockExecutor := new(executor.MockExecutor)
	mockExecutor.On("Executable", os.Getppid()).Return("go", nil)
	lock, err := NewPidLock(log.NewMockLog(), path, mockExecutor)
	require.NoError(t, err)

	err = lock.Acquire()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already running with pid "+strconv.Itoa(os.Getppid())+" (go)")
}

func TestAcquireBusyUnknownExecutable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot-supervisor.pid")
	require.NoError(t, ioutil.WriteFile(path, []byte(strconv.Itoa(os.Getppid())+"\n"), 0600))

	mockExecutor := new(executor.MockExecutor)
	mockExecutor.On("Executable", os.Getppid()).Return("", errors.New("gone"))
	lock, err := NewPidLock(log.NewMockLog(), path, mockExecutor)
	require.NoError(t, err)

	err = lock.Acquire()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "(unknown)")
}

func TestNewPidLockError(t *testing.T) {
	oldNewLockfile := newLockfile
	newLockfile = func(path string) (lockfile.Lockfile, error) {
		return "", lockfile.ErrNeedAbsPath
	}
	defer func() { newLockfile = oldNewLockfile }()

	_, err := NewPidLock(log.NewMockLog(), "bot-supervisor.pid", executor.NewProcessExecutor(log.NewMockLog()))
	assert.Error(t, err)
}
