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

package executor

import (
	"errors"
	"os"
	"testing"

	ps "github.com/mitchellh/go-ps"
	"github.com/stretchr/testify/assert"
	"github.com/xandium/bot-supervisor/agent/log"
)

type fakeProcess struct {
	pid        int
	executable string
}

func (p fakeProcess) Pid() int           { return p.pid }
func (p fakeProcess) PPid() int          { return 1 }
func (p fakeProcess) Executable() string { return p.executable }

func TestIsPidRunning(t *testing.T) {
	exc := NewProcessExecutor(log.NewMockLog())

	oldFindProcess := findProcess
	findProcess = func(pid int) (ps.Process, error) {
		if pid == 1 {
			return fakeProcess{pid: 1, executable: "bot-supervisor"}, nil
		}
		return nil, nil
	}
	defer func() { findProcess = oldFindProcess }()

	isRunning, err := exc.IsPidRunning(1)
	assert.True(t, isRunning)
	assert.Nil(t, err)

	isRunning, err = exc.IsPidRunning(2)
	assert.False(t, isRunning)
	assert.Nil(t, err)

	executable, err := exc.Executable(1)
	assert.Nil(t, err)
	assert.Equal(t, "bot-supervisor", executable)

	_, err = exc.Executable(2)
	assert.Error(t, err)
}

func TestIsPidRunningButError(t *testing.T) {
	exc := NewProcessExecutor(log.NewMockLog())

	oldFindProcess := findProcess
	findProcess = func(pid int) (ps.Process, error) {
		return nil, errors.New("Some Error")
	}
	defer func() { findProcess = oldFindProcess }()

	isRunning, err := exc.IsPidRunning(1)
	assert.False(t, isRunning)
	assert.EqualError(t, err, "Some Error")
}

func TestIsPidRunningForCurrentProcess(t *testing.T) {
	exc := NewProcessExecutor(log.NewMockLog())

	isRunning, err := exc.IsPidRunning(os.Getpid())
	assert.Nil(t, err)
	assert.True(t, isRunning)
}

func TestStartMissingBinary(t *testing.T) {
	exc := NewProcessExecutor(log.NewMockLog())

	command, err := exc.Start(WorkerConfig{Path: "/nonexistent/bot-binary"}, nil, nil)
	assert.Error(t, err)
	assert.Nil(t, command)
}
