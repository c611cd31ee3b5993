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

package context

import (
	"github.com/stretchr/testify/mock"
	"github.com/xandium/bot-supervisor/agent/appconfig"
	"github.com/xandium/bot-supervisor/agent/log"
)

// Note: this lives outside a _test.go file so every test package can share it.

// Mock stands for a mocked context.
type Mock struct {
	mock.Mock
}

// NewMockDefault returns a Mock with a mocked logger and the default configuration.
func NewMockDefault() *Mock {
	return NewMockDefaultWithConfig(appconfig.DefaultConfig())
}

// NewMockDefaultWithConfig returns a Mock that serves config.
func NewMockDefaultWithConfig(config appconfig.SupervisorConfig) *Mock {
	ctx := new(Mock)
	ctx.On("Log").Return(log.NewMockLog())
	ctx.On("AppConfig").Return(config)
	ctx.On("With", mock.AnythingOfType("string")).Return(ctx)
	ctx.On("CurrentContext").Return([]string{})
	return ctx
}

func (m *Mock) Log() log.T {
	return m.Called().Get(0).(log.T)
}

func (m *Mock) AppConfig() appconfig.SupervisorConfig {
	return m.Called().Get(0).(appconfig.SupervisorConfig)
}

func (m *Mock) With(context string) T {
	return m.Called(context).Get(0).(T)
}

func (m *Mock) CurrentContext() []string {
	return m.Called().Get(0).([]string)
}
