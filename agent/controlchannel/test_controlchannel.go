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

package controlchannel

import (
	"github.com/stretchr/testify/mock"
)

// MockControlChannel mocks IControlChannel.
type MockControlChannel struct {
	mock.Mock
	EventQueue chan Event
}

// NewMockControlChannel returns a mock whose Events() reads from EventQueue.
func NewMockControlChannel() *MockControlChannel {
	return &MockControlChannel{EventQueue: make(chan Event, eventQueueSize)}
}

func (m *MockControlChannel) Open() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockControlChannel) Events() <-chan Event {
	return m.EventQueue
}

func (m *MockControlChannel) HandleEvent(ev Event) (string, bool) {
	args := m.Called(ev)
	return args.String(0), args.Bool(1)
}

func (m *MockControlChannel) SendMessage(line string) error {
	args := m.Called(line)
	return args.Error(0)
}

func (m *MockControlChannel) IsOpen() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockControlChannel) Close() error {
	args := m.Called()
	return args.Error(0)
}
