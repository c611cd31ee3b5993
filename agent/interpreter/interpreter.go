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

// Package interpreter maps inbound manager lines to local effects.
package interpreter

import (
	"fmt"
	"runtime/debug"

	"github.com/xandium/bot-supervisor/agent/context"
	"github.com/xandium/bot-supervisor/agent/executers"
	"github.com/xandium/bot-supervisor/agent/fileutil/marker"
)

// ISender writes one line to the manager.
type ISender interface {
	SendMessage(line string) error
}

// ISupervisor is the worker process lifecycle used by the commands.
type ISupervisor interface {
	SetLaunch(path string, args []string)
	Start() error
	Stop() error
	StopAndWait() error
	Kill() error
	IsRunning() bool
}

// ExitFunc terminates the agent process with code.
type ExitFunc func(code int)

// Interpreter runs one command at a time. It is not safe for concurrent use;
// the agent's event loop is its only caller.
type Interpreter struct {
	context    context.T
	sender     ISender
	supervisor ISupervisor
	marker     marker.IMarker
	executer   executers.T
	exit       ExitFunc
}

// NewInterpreter wires the command handlers to their collaborators.
func NewInterpreter(context context.T,
	sender ISender,
	supervisor ISupervisor,
	marker marker.IMarker,
	executer executers.T,
	exit ExitFunc) *Interpreter {

	return &Interpreter{
		context:    context.With("[interpreter]"),
		sender:     sender,
		supervisor: supervisor,
		marker:     marker,
		executer:   executer,
		exit:       exit,
	}
}

// Process parses line and runs its command. Unknown commands are ignored.
func (i *Interpreter) Process(line string) {
	log := i.context.Log()
	log.Info(line)

	command := Parse(line)
	entry, ok := commandTable[command.Name]
	if !ok {
		log.Debugf("Ignoring unknown command %q", command.Name)
		return
	}

	err := i.run(entry, command)
	switch entry.policy {
	case Discard:
		if err != nil {
			log.Debugf("Discarded result of %s: %v", command.Name, err)
		}
	case Report:
		if err != nil {
			log.Errorf("%s failed: %v", command.Name, err)
			i.send(fmt.Sprintf("log %s: %v", command.Name, err))
		}
	case Fatal:
		if err != nil {
			log.Errorf("%s failed: %v", command.Name, err)
		}
		log.Infof("Exiting on %s with code %d", command.Name, entry.exitCode)
		log.Flush()
		i.exit(entry.exitCode)
	}
}

// run invokes the handler and turns a panic into an error.
func (i *Interpreter) run(entry commandEntry, command Command) (err error) {
	defer func() {
		if msg := recover(); msg != nil {
			i.context.Log().Errorf("Command %s panic: %v", command.Name, msg)
			i.context.Log().Errorf("%s: %s", msg, debug.Stack())
			err = fmt.Errorf("internal error: %v", msg)
		}
	}()
	return entry.handler(i, command)
}

// send replies to the manager; with no connection the line is dropped.
func (i *Interpreter) send(line string) {
	if err := i.sender.SendMessage(line); err != nil {
		i.context.Log().Warnf("Failed to send %q: %v", line, err)
	}
}
