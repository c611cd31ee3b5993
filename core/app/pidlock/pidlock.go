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

// Package pidlock keeps a second supervisor from running in the same directory.
package pidlock

import (
	"fmt"
	"path/filepath"

	"github.com/nightlyone/lockfile"
	"github.com/xandium/bot-supervisor/agent/log"
	"github.com/xandium/bot-supervisor/core/executor"
)

// IPidLock is the interface type for PidLock.
type IPidLock interface {
	Acquire() error
	Release() error
}

// PidLock is a lock file holding the pid of the running supervisor.
type PidLock struct {
	log      log.T
	path     string
	lock     lockfile.Lockfile
	executor executor.IExecutor
}

var newLockfile = lockfile.New

// NewPidLock prepares a lock at path. Relative paths resolve against the working directory.
func NewPidLock(log log.T, path string, executor executor.IExecutor) (*PidLock, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid pid file %v: %v", path, err)
	}
	lock, err := newLockfile(absPath)
	if err != nil {
		return nil, fmt.Errorf("invalid pid file %v: %v", absPath, err)
	}
	return &PidLock{
		log:      log,
		path:     absPath,
		lock:     lock,
		executor: executor,
	}, nil
}

// Acquire takes the lock. Stale locks of dead processes are replaced.
func (p *PidLock) Acquire() error {
	err := p.lock.TryLock()
	if err == nil {
		p.log.Debugf("Acquired pid lock %v", p.path)
		return nil
	}
	if err != lockfile.ErrBusy {
		return fmt.Errorf("failed to lock %v: %v", p.path, err)
	}

	owner, ownerErr := p.lock.GetOwner()
	if ownerErr != nil {
		return fmt.Errorf("another supervisor holds %v", p.path)
	}
	executable, exeErr := p.executor.Executable(owner.Pid)
	if exeErr != nil {
		executable = "unknown"
	}
	return fmt.Errorf("another supervisor is already running with pid %v (%v)", owner.Pid, executable)
}

// Release removes the lock file if this process owns it.
func (p *PidLock) Release() error {
	if err := p.lock.Unlock(); err != nil {
		return fmt.Errorf("failed to unlock %v: %v", p.path, err)
	}
	return nil
}
