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

// Package app represents the core supervisor agent object
package app

import (
	"runtime"
	"runtime/debug"
	"sync"

	"github.com/xandium/bot-supervisor/agent/context"
	"github.com/xandium/bot-supervisor/agent/controlchannel"
	"github.com/xandium/bot-supervisor/agent/executers"
	"github.com/xandium/bot-supervisor/agent/fileutil/marker"
	"github.com/xandium/bot-supervisor/agent/interpreter"
	"github.com/xandium/bot-supervisor/agent/version"
	"github.com/xandium/bot-supervisor/agent/websocketutil"
	"github.com/xandium/bot-supervisor/core/executor"
	"github.com/xandium/bot-supervisor/core/supervisor"
)

// CoreAgent is started once and stopped once.
type CoreAgent interface {
	Start() error
	Stop()
}

// ILineProcessor handles one inbound line.
type ILineProcessor interface {
	Process(line string)
}

// SupervisorAgent runs the event loop connecting the control channel, the
// command interpreter and the worker supervisor. Every handler runs on the
// loop goroutine, one event at a time.
type SupervisorAgent struct {
	context    context.T
	channel    controlchannel.IControlChannel
	supervisor supervisor.ISupervisor
	processor  ILineProcessor

	stopChan chan struct{}
	doneChan chan struct{}
	stopOnce sync.Once
	started  bool
}

// NewSupervisorAgent wires the production components. exit is called for
// commands that terminate the agent.
func NewSupervisorAgent(context context.T, exit interpreter.ExitFunc) (*SupervisorAgent, error) {
	config := context.AppConfig()

	shell, err := executers.NewShellCommandExecuter(context)
	if err != nil {
		return nil, err
	}
	wsUtil := websocketutil.NewWebsocketUtil(context.Log(), nil, config.HandshakeTimeout())
	channel := controlchannel.NewControlChannel(context.With("[controlchannel]"), wsUtil)
	workers := supervisor.NewSupervisor(context, executor.NewProcessExecutor(context.Log()))
	processor := interpreter.NewInterpreter(context,
		channel,
		workers,
		marker.New(context.Log(), config.Provisioning.MarkerFile),
		shell,
		exit)

	return newSupervisorAgent(context, channel, workers, processor), nil
}

func newSupervisorAgent(context context.T,
	channel controlchannel.IControlChannel,
	supervisor supervisor.ISupervisor,
	processor ILineProcessor) *SupervisorAgent {

	return &SupervisorAgent{
		context:    context,
		channel:    channel,
		supervisor: supervisor,
		processor:  processor,
		stopChan:   make(chan struct{}),
		doneChan:   make(chan struct{}),
	}
}

// Start connects to the manager and starts the event loop. A failed first
// connection is retried like any later one.
func (agent *SupervisorAgent) Start() error {
	log := agent.context.Log()
	log.Infof("%s - %v", agent.context.AppConfig().Agent.Name, version.Version)
	log.Infof("OS: %s, Arch: %s", runtime.GOOS, runtime.GOARCH)
	log.Info("Starting Supervisor Agent")

	if err := agent.channel.Open(); err != nil {
		log.Warnf("Initial connection to manager failed: %v", err)
	}
	agent.started = true
	go agent.loop()
	return nil
}

func (agent *SupervisorAgent) loop() {
	defer close(agent.doneChan)
	for {
		select {
		case <-agent.stopChan:
			agent.shutdown()
			return
		case ev := <-agent.channel.Events():
			agent.dispatch(func() {
				if line, ok := agent.channel.HandleEvent(ev); ok {
					agent.processor.Process(line)
				}
			})
		case ev := <-agent.supervisor.Exits():
			agent.dispatch(func() {
				agent.supervisor.HandleExit(ev)
			})
		}
	}
}

// dispatch runs one event handler and keeps the loop alive if it panics.
func (agent *SupervisorAgent) dispatch(handler func()) {
	defer func() {
		if msg := recover(); msg != nil {
			log := agent.context.Log()
			log.Errorf("Event loop panic: %v", msg)
			log.Errorf("%s: %s", msg, debug.Stack())
		}
	}()
	handler()
}

func (agent *SupervisorAgent) shutdown() {
	log := agent.context.Log()
	if err := agent.supervisor.StopAndWait(); err != nil {
		log.Warnf("Failed to stop worker: %v", err)
	}
	if err := agent.channel.Close(); err != nil {
		log.Warnf("Failed to close control channel: %v", err)
	}
}

// Stop ends the event loop after stopping the worker and closing the channel.
func (agent *SupervisorAgent) Stop() {
	log := agent.context.Log()
	log.Info("Stopping Supervisor Agent")
	log.Flush()

	agent.stopOnce.Do(func() { close(agent.stopChan) })
	if agent.started {
		<-agent.doneChan
	}

	log.Info("Bye.")
	log.Flush()
}
