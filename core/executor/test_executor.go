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
	"io"
	"os"

	"github.com/stretchr/testify/mock"
)

// MockExecutor mocks IExecutor.
type MockExecutor struct {
	mock.Mock
}

func (m *MockExecutor) Start(workerConfig WorkerConfig, stdout io.Writer, stderr io.Writer) (*WorkerProcess, error) {
	args := m.Called(workerConfig, stdout, stderr)
	process, _ := args.Get(0).(*WorkerProcess)
	return process, args.Error(1)
}

func (m *MockExecutor) Terminate(process *os.Process) error {
	return m.Called(process).Error(0)
}

func (m *MockExecutor) Kill(process *os.Process) error {
	return m.Called(process).Error(0)
}

func (m *MockExecutor) IsPidRunning(pid int) (bool, error) {
	args := m.Called(pid)
	return args.Bool(0), args.Error(1)
}

func (m *MockExecutor) Executable(pid int) (string, error) {
	args := m.Called(pid)
	return args.String(0), args.Error(1)
}
