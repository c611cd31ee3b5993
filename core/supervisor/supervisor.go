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

// Package supervisor owns the lifecycle of the single worker process.
//
// All methods except the wait goroutine run on the agent's event loop. The
// worker slot is therefore only mutated from one goroutine; the wait goroutine
// reports exits through Exits() and never touches the slot itself.
package supervisor

import (
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/xandium/bot-supervisor/agent/context"
	"github.com/xandium/bot-supervisor/core/executor"
)

const exitQueueSize = 16

// outputGrace bounds how long an exit waits for the worker's output to drain.
// Output still held open by the worker's children is logged after the exit.
const outputGrace = 200 * time.Millisecond

// ErrNoLaunch is returned by Start before any launch command was recorded.
var ErrNoLaunch = errors.New("no launch command recorded")

// ExitEvent reports that a worker process ended.
type ExitEvent struct {
	Pid      int
	ExitCode int
	Err      error

	worker *worker
}

type worker struct {
	command *executor.WorkerProcess
	stdout  *lineWriter
	stderr  *lineWriter
	done    chan struct{}
}

// ISupervisor is the interface type for Supervisor.
type ISupervisor interface {
	SetLaunch(path string, args []string)
	Start() error
	Stop() error
	StopAndWait() error
	Kill() error
	IsRunning() bool
	HandleExit(ev ExitEvent)
	LastExitCode() int
	Exits() <-chan ExitEvent
}

// Supervisor is Idle while its worker slot is empty and Running otherwise.
type Supervisor struct {
	context     context.T
	executor    executor.IExecutor
	stopTimeout time.Duration

	launch       *executor.WorkerConfig
	current      *worker
	lastExitCode int
	exits        chan ExitEvent
}

// NewSupervisor returns an Idle supervisor.
func NewSupervisor(context context.T, executor executor.IExecutor) *Supervisor {
	return &Supervisor{
		context:      context.With("[supervisor]"),
		executor:     executor,
		stopTimeout:  context.AppConfig().StopTimeout(),
		lastExitCode: -1,
		exits:        make(chan ExitEvent, exitQueueSize),
	}
}

// Exits delivers one event per worker that ended, including detached ones.
func (s *Supervisor) Exits() <-chan ExitEvent {
	return s.exits
}

// SetLaunch records the command used by the next Start. A running worker is not affected.
func (s *Supervisor) SetLaunch(path string, args []string) {
	s.context.Log().Infof("Recorded launch command %v %v", path, args)
	s.launch = &executor.WorkerConfig{Path: path, Args: args}
}

// IsRunning is true iff a worker is tracked.
func (s *Supervisor) IsRunning() bool {
	return s.current != nil
}

// LastExitCode is the exit code of the most recently ended worker, -1 if none ended yet.
func (s *Supervisor) LastExitCode() int {
	return s.lastExitCode
}

// Start launches the recorded command. It does nothing while a worker is tracked.
func (s *Supervisor) Start() error {
	log := s.context.Log()
	if s.current != nil {
		log.Debugf("Worker already running with pid %v", s.current.command.Process.Pid)
		return nil
	}
	if s.launch == nil {
		return ErrNoLaunch
	}

	w := &worker{
		stdout: newLineWriter("stdout", log.Infof),
		stderr: newLineWriter("stderr", func(format string, params ...interface{}) {
			log.Warnf(format, params...)
		}),
		done: make(chan struct{}),
	}
	command, err := s.executor.Start(*s.launch, w.stdout, w.stderr)
	if err != nil {
		return err
	}
	w.command = command
	s.current = w

	go s.wait(w)
	return nil
}

func (s *Supervisor) wait(w *worker) {
	log := s.context.Log()
	defer func() {
		if msg := recover(); msg != nil {
			log.Errorf("Worker wait panic: %v", msg)
			log.Errorf("%s: %s", msg, debug.Stack())
		}
	}()

	err := w.command.Wait()
	pid := w.command.Process.Pid

	select {
	case <-w.command.OutputDone():
		w.flush()
	case <-time.After(outputGrace):
		log.Debugf("Output of worker %v is still held open by its children", pid)
		go func() {
			<-w.command.OutputDone()
			w.flush()
		}()
	}

	exitCode := -1
	if w.command.ProcessState != nil {
		exitCode = w.command.ProcessState.ExitCode()
	}
	log.Infof("child process %v exited with code %v", pid, exitCode)
	close(w.done)

	s.exits <- ExitEvent{Pid: pid, ExitCode: exitCode, Err: err, worker: w}
}

func (w *worker) flush() {
	w.stdout.Flush()
	w.stderr.Flush()
}

// HandleExit records the exit code and frees the slot if ev belongs to the tracked worker.
func (s *Supervisor) HandleExit(ev ExitEvent) {
	s.lastExitCode = ev.ExitCode
	if ev.worker == nil || ev.worker != s.current {
		s.context.Log().Debugf("Exit of detached worker %v", ev.Pid)
		return
	}
	s.current = nil
}

// Stop signals the worker to terminate and forgets it without waiting.
func (s *Supervisor) Stop() error {
	w := s.detach()
	if w == nil {
		return nil
	}
	s.context.Log().Infof("Stopping worker %v", w.command.Process.Pid)
	return s.executor.Terminate(w.command.Process)
}

// StopAndWait signals the worker to terminate and waits until it was reaped.
// After the stop timeout the worker's process group is killed.
func (s *Supervisor) StopAndWait() error {
	w := s.detach()
	if w == nil {
		return nil
	}
	log := s.context.Log()
	pid := w.command.Process.Pid
	log.Infof("Stopping worker %v and waiting for it to exit", pid)

	if err := s.executor.Terminate(w.command.Process); err != nil {
		if exited(w) {
			return nil
		}
		log.Warnf("Terminate failed, killing worker: %v", err)
	} else {
		select {
		case <-w.done:
			return nil
		case <-time.After(s.stopTimeout):
			log.Warnf("Worker %v did not exit within %v, killing it", pid, s.stopTimeout)
		}
	}

	if err := s.executor.Kill(w.command.Process); err != nil {
		if exited(w) {
			return nil
		}
		return err
	}
	select {
	case <-w.done:
		return nil
	case <-time.After(s.stopTimeout):
		return fmt.Errorf("worker %v did not exit after kill", pid)
	}
}

// Kill force-kills the worker's process group without waiting.
func (s *Supervisor) Kill() error {
	w := s.detach()
	if w == nil {
		return nil
	}
	s.context.Log().Infof("Killing worker %v", w.command.Process.Pid)
	return s.executor.Kill(w.command.Process)
}

// detach empties the slot and returns the worker it held.
func (s *Supervisor) detach() *worker {
	w := s.current
	s.current = nil
	return w
}

func exited(w *worker) bool {
	select {
	case <-w.done:
		return true
	default:
		return false
	}
}
