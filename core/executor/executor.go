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

// Package executor starts and signals the worker process.
package executor

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime/debug"
	"sync"

	ps "github.com/mitchellh/go-ps"
	"github.com/xandium/bot-supervisor/agent/log"
)

// WorkerConfig is the launch recorded by the manager's "command" line.
type WorkerConfig struct {
	Path string
	Args []string
}

// IExecutor is the interface type for ProcessExecutor.
type IExecutor interface {
	Start(workerConfig WorkerConfig, stdout io.Writer, stderr io.Writer) (*WorkerProcess, error)
	Terminate(process *os.Process) error
	Kill(process *os.Process) error
	IsPidRunning(pid int) (bool, error)
	Executable(pid int) (string, error)
}

// ProcessExecutor launches processes in their own process group so that
// signals reach the worker's children too.
type ProcessExecutor struct {
	log log.T
}

// NewProcessExecutor returns a ProcessExecutor logging to log.
func NewProcessExecutor(log log.T) *ProcessExecutor {
	return &ProcessExecutor{
		log: log,
	}
}

// findProcess is replaced in tests.
var findProcess = ps.FindProcess

// WorkerProcess is a started worker. Its output is copied from os pipes, so
// Wait returns when the worker exits even if a child it spawned still holds
// stdout or stderr open.
type WorkerProcess struct {
	*exec.Cmd
	outputDone chan struct{}
}

// OutputDone is closed once every output pipe reached end of file.
func (p *WorkerProcess) OutputDone() <-chan struct{} {
	return p.outputDone
}

// outputPipe carries one output stream of the worker into dst.
type outputPipe struct {
	reader *os.File
	writer *os.File
	dst    io.Writer
}

func newOutputPipe(dst io.Writer) (*outputPipe, error) {
	reader, writer, err := os.Pipe()
	if err != nil {
		return nil, err
	}
	return &outputPipe{reader: reader, writer: writer, dst: dst}, nil
}

func closePipes(pipes []*outputPipe) {
	for _, pipe := range pipes {
		pipe.reader.Close()
		pipe.writer.Close()
	}
}

// Start launches the worker with the agent's environment. The caller owns the
// returned process and must Wait for it. A nil writer discards that stream.
func (exc *ProcessExecutor) Start(workerConfig WorkerConfig, stdout io.Writer, stderr io.Writer) (*WorkerProcess, error) {
	exc.log.Debugf("Starting process base on config %+v", workerConfig)
	command := exec.Command(workerConfig.Path, workerConfig.Args...)
	prepareProcess(command)
	command.Env = os.Environ()

	var pipes []*outputPipe
	streams := []struct {
		dst  io.Writer
		slot *io.Writer
	}{
		{stdout, &command.Stdout},
		{stderr, &command.Stderr},
	}
	for _, stream := range streams {
		if stream.dst == nil {
			continue
		}
		pipe, err := newOutputPipe(stream.dst)
		if err != nil {
			closePipes(pipes)
			return nil, fmt.Errorf("failed to create output pipe for %v: %v", workerConfig.Path, err)
		}
		*stream.slot = pipe.writer
		pipes = append(pipes, pipe)
	}

	if err := command.Start(); err != nil {
		closePipes(pipes)
		return nil, fmt.Errorf("failed to start %v: %v", workerConfig.Path, err)
	}
	exc.log.Infof("Started process %v with pid %v", workerConfig.Path, command.Process.Pid)

	process := &WorkerProcess{Cmd: command, outputDone: make(chan struct{})}
	exc.copyOutput(process, pipes)
	return process, nil
}

// copyOutput releases the parent's write ends and copies every pipe until all
// holders of the write ends closed them.
func (exc *ProcessExecutor) copyOutput(process *WorkerProcess, pipes []*outputPipe) {
	var copying sync.WaitGroup
	for _, pipe := range pipes {
		pipe.writer.Close()
		copying.Add(1)
		go func(pipe *outputPipe) {
			defer copying.Done()
			defer pipe.reader.Close()
			defer func() {
				if msg := recover(); msg != nil {
					exc.log.Errorf("Output copy panic: %v", msg)
					exc.log.Errorf("%s: %s", msg, debug.Stack())
				}
			}()
			if _, err := io.Copy(pipe.dst, pipe.reader); err != nil {
				exc.log.Debugf("Output copy of process %v ended: %v", process.Process.Pid, err)
			}
		}(pipe)
	}
	go func() {
		copying.Wait()
		close(process.outputDone)
	}()
}

// Terminate asks the process group to shut down.
func (exc *ProcessExecutor) Terminate(process *os.Process) error {
	exc.log.Debugf("Terminating process %v", process.Pid)
	if err := terminateProcess(process); err != nil {
		return fmt.Errorf("failed to terminate process %v, %s", process.Pid, err)
	}
	return nil
}

// Kill force-kills the process group.
func (exc *ProcessExecutor) Kill(process *os.Process) error {
	exc.log.Debugf("Killing process %v", process.Pid)
	if err := killProcess(process); err != nil {
		return fmt.Errorf("failed to kill process %v, %s", process.Pid, err)
	}
	return nil
}

// IsPidRunning returns true if a process with pid is present in the process table.
func (exc *ProcessExecutor) IsPidRunning(pid int) (bool, error) {
	process, err := findProcess(pid)
	if err != nil {
		return false, err
	}
	return process != nil, nil
}

// Executable returns the binary name of the process with pid.
func (exc *ProcessExecutor) Executable(pid int) (string, error) {
	process, err := findProcess(pid)
	if err != nil {
		return "", err
	}
	if process == nil {
		return "", fmt.Errorf("process %v not found", pid)
	}
	return process.Executable(), nil
}
