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

// Package main represents the entry point of the supervisor.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"

	"github.com/xandium/bot-supervisor/agent/appconfig"
	"github.com/xandium/bot-supervisor/agent/context"
	"github.com/xandium/bot-supervisor/agent/interpreter"
	logger "github.com/xandium/bot-supervisor/agent/log"
	"github.com/xandium/bot-supervisor/core/app"
	"github.com/xandium/bot-supervisor/core/app/pidlock"
	"github.com/xandium/bot-supervisor/core/executor"
)

const (
	versionFlag = "version"
	envFileFlag = "env"
)

var (
	agentVersionFlag bool
	envFile          string
)

// seams replaced in tests
var (
	osExit            = os.Exit
	waitForStopSignal = blockUntilSignaled
	newCoreAgent      = defaultCoreAgent
	newPidLock        = defaultPidLock
	loadConfiguration = appconfig.Load
	initLogger        = logger.Init
)

func defaultCoreAgent(context context.T, exit interpreter.ExitFunc) (app.CoreAgent, error) {
	return app.NewSupervisorAgent(context, exit)
}

func defaultPidLock(log logger.T, config appconfig.SupervisorConfig) (pidlock.IPidLock, error) {
	return pidlock.NewPidLock(log, config.Agent.PidFile, executor.NewProcessExecutor(log))
}

func main() {
	parseFlags()
	handleAgentVersionFlag()

	config, err := loadConfiguration(envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bot-supervisor: %v\n", err)
		osExit(1)
		return
	}

	// initialize logger
	log := initLogger(config.Agent.LogDir, config.Agent.SeelogConfig)
	exitCode := run(log, config)
	log.Flush()
	log.Close()
	osExit(exitCode)
}

// start takes the pid lock and starts the agent. exit is handed to the agent
// for the commands that terminate the process.
func start(log logger.T, config appconfig.SupervisorConfig) (app.CoreAgent, pidlock.IPidLock, error) {
	agentContext := context.Default(log, config, "[bot-supervisor]")

	lock, err := newPidLock(log, config)
	if err != nil {
		return nil, nil, err
	}
	if err = lock.Acquire(); err != nil {
		return nil, nil, err
	}

	exit := func(code int) {
		if err := lock.Release(); err != nil {
			log.Warnf("Failed to release pid lock: %v", err)
		}
		log.Flush()
		osExit(code)
	}

	coreAgent, err := newCoreAgent(agentContext, exit)
	if err != nil {
		lock.Release()
		return nil, nil, fmt.Errorf("failed to create supervisor agent: %v", err)
	}
	if err = coreAgent.Start(); err != nil {
		lock.Release()
		return nil, nil, fmt.Errorf("failed to start supervisor agent: %v", err)
	}
	return coreAgent, lock, nil
}

func blockUntilSignaled(log logger.T) {
	// Set up channel on which to receive signal notifications.
	// We must use a buffered channel or risk missing the signal
	// if we're not ready to receive when the signal is sent.
	c := make(chan os.Signal, 1)
	signal.Notify(c, shutdownSignals...)

	s := <-c
	log.Info("Got signal:", s)
}

// run returns the process exit code.
func run(log logger.T, config appconfig.SupervisorConfig) (exitCode int) {
	defer func() {
		// recover in case the agent panics
		if msg := recover(); msg != nil {
			log.Errorf("Supervisor crashed with message %v!", msg)
			log.Errorf("%s: %s", msg, debug.Stack())
			exitCode = 1
		}
	}()

	coreAgent, lock, err := start(log, config)
	if err != nil {
		log.Errorf("error occurred when starting bot-supervisor: %v", err)
		return 1
	}
	waitForStopSignal(log)
	coreAgent.Stop()
	if err = lock.Release(); err != nil {
		log.Warnf("Failed to release pid lock: %v", err)
	}
	return 0
}
