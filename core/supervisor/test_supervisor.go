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

package supervisor

import "github.com/stretchr/testify/mock"

// MockSupervisor mocks ISupervisor. Exits() reads from ExitQueue.
type MockSupervisor struct {
	mock.Mock
	ExitQueue chan ExitEvent
}

// NewMockSupervisor returns a mock with an empty ExitQueue.
func NewMockSupervisor() *MockSupervisor {
	return &MockSupervisor{ExitQueue: make(chan ExitEvent, exitQueueSize)}
}

func (m *MockSupervisor) SetLaunch(path string, args []string) {
	m.Called(path, args)
}

func (m *MockSupervisor) Start() error {
	return m.Called().Error(0)
}

func (m *MockSupervisor) Stop() error {
	return m.Called().Error(0)
}

func (m *MockSupervisor) StopAndWait() error {
	return m.Called().Error(0)
}

func (m *MockSupervisor) Kill() error {
	return m.Called().Error(0)
}

func (m *MockSupervisor) IsRunning() bool {
	return m.Called().Bool(0)
}

func (m *MockSupervisor) HandleExit(ev ExitEvent) {
	m.Called(ev)
}

func (m *MockSupervisor) LastExitCode() int {
	return m.Called().Int(0)
}

func (m *MockSupervisor) Exits() <-chan ExitEvent {
	return m.ExitQueue
}
