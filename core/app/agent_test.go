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

package app

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/xandium/bot-supervisor/agent/context"
	"github.com/xandium/bot-supervisor/agent/controlchannel"
	"github.com/xandium/bot-supervisor/core/supervisor"
)

type recordingProcessor struct {
	mu    sync.Mutex
	lines []string
	hook  func(line string)
}

func (p *recordingProcessor) Process(line string) {
	p.mu.Lock()
	p.lines = append(p.lines, line)
	hook := p.hook
	p.mu.Unlock()
	if hook != nil {
		hook(line)
	}
}

func (p *recordingProcessor) processed() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.lines...)
}

// AgentTestSuite drives the event loop with mocked components.
type AgentTestSuite struct {
	suite.Suite
	channel    *controlchannel.MockControlChannel
	supervisor *supervisor.MockSupervisor
	processor  *recordingProcessor
	agent      *SupervisorAgent
}

func (suite *AgentTestSuite) SetupTest() {
	suite.channel = controlchannel.NewMockControlChannel()
	suite.supervisor = supervisor.NewMockSupervisor()
	suite.processor = &recordingProcessor{}
	suite.agent = newSupervisorAgent(context.NewMockDefault(), suite.channel, suite.supervisor, suite.processor)

	suite.channel.On("Close").Return(nil)
	suite.supervisor.On("StopAndWait").Return(nil)
}

func TestAgentTestSuite(t *testing.T) {
	suite.Run(t, new(AgentTestSuite))
}

func (suite *AgentTestSuite) messageEvent(line string) controlchannel.Event {
	ev := controlchannel.Event{Type: controlchannel.MessageReceived, Message: line}
	suite.channel.On("HandleEvent", ev).Return(line, true)
	return ev
}

func (suite *AgentTestSuite) TestStartOpensChannel() {
	suite.channel.On("Open").Return(nil)

	suite.NoError(suite.agent.Start())
	suite.agent.Stop()

	suite.channel.AssertExpectations(suite.T())
	suite.supervisor.AssertExpectations(suite.T())
}

func (suite *AgentTestSuite) TestStartSurvivesFailedFirstConnection() {
	suite.channel.On("Open").Return(errors.New("connection refused"))

	suite.NoError(suite.agent.Start())
	suite.agent.Stop()

	suite.channel.AssertCalled(suite.T(), "Close")
}

func (suite *AgentTestSuite) TestLinesAreProcessedInOrder() {
	suite.channel.On("Open").Return(nil)
	lines := []string{"OK", "command /bin/echo hello", "start", "status"}
	for _, line := range lines {
		suite.channel.EventQueue <- suite.messageEvent(line)
	}

	suite.NoError(suite.agent.Start())
	suite.Eventually(func() bool {
		return len(suite.processor.processed()) == len(lines)
	}, 2*time.Second, 10*time.Millisecond)
	suite.agent.Stop()

	suite.Equal(lines, suite.processor.processed())
}

func (suite *AgentTestSuite) TestEventsWithoutLineAreNotProcessed() {
	suite.channel.On("Open").Return(nil)
	closed := controlchannel.Event{Type: controlchannel.ChannelClosed, CloseCode: 1006}
	handled := make(chan struct{})
	suite.channel.On("HandleEvent", closed).Return("", false).Run(func(mock.Arguments) { close(handled) })
	suite.channel.EventQueue <- closed

	suite.NoError(suite.agent.Start())
	select {
	case <-handled:
	case <-time.After(2 * time.Second):
		suite.Fail("close event was not handled")
	}
	suite.agent.Stop()

	suite.Empty(suite.processor.processed())
}

func (suite *AgentTestSuite) TestWorkerExitIsHandledOnLoop() {
	suite.channel.On("Open").Return(nil)
	ev := supervisor.ExitEvent{Pid: 42, ExitCode: 0}
	handled := make(chan struct{})
	suite.supervisor.On("HandleExit", ev).Return().Run(func(mock.Arguments) { close(handled) })
	suite.supervisor.ExitQueue <- ev

	suite.NoError(suite.agent.Start())
	select {
	case <-handled:
	case <-time.After(2 * time.Second):
		suite.Fail("exit event was not handled")
	}
	suite.agent.Stop()
}

func (suite *AgentTestSuite) TestHandlerPanicDoesNotStopLoop() {
	suite.channel.On("Open").Return(nil)
	suite.processor.hook = func(line string) {
		if line == "boom" {
			panic("boom")
		}
	}
	suite.channel.EventQueue <- suite.messageEvent("boom")
	suite.channel.EventQueue <- suite.messageEvent("status")

	suite.NoError(suite.agent.Start())
	suite.Eventually(func() bool {
		return len(suite.processor.processed()) == 2
	}, 2*time.Second, 10*time.Millisecond)
	suite.agent.Stop()
}

func (suite *AgentTestSuite) TestStopStopsWorkerAndClosesChannel() {
	suite.channel.On("Open").Return(nil)

	suite.NoError(suite.agent.Start())
	suite.agent.Stop()
	suite.agent.Stop()

	suite.supervisor.AssertNumberOfCalls(suite.T(), "StopAndWait", 1)
	suite.channel.AssertNumberOfCalls(suite.T(), "Close", 1)
}
