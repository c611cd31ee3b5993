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

// Package executers runs shell commands requested by the manager.
package executers

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime/debug"
	"sync"

	"github.com/google/shlex"
	"github.com/xandium/bot-supervisor/agent/context"
)

// maxLoggedOutput bounds how much command output is kept for the debug log.
const maxLoggedOutput = 4096

// T runs a command line without waiting for it to finish.
type T interface {
	Execute(commandLine string) error
}

// ShellCommandExecuter runs command lines through the configured shell.
type ShellCommandExecuter struct {
	context context.T
	shell   []string

	// done is called after a command was reaped; tests use it to synchronize.
	done func(exitCode int)
}

// execCommand is replaced in tests.
var execCommand = exec.Command

// NewShellCommandExecuter splits the configured shell prefix, e.g. "/bin/sh -c".
func NewShellCommandExecuter(context context.T) (*ShellCommandExecuter, error) {
	shellCommand := context.AppConfig().Shell.Command
	shell, err := shlex.Split(shellCommand)
	if err != nil {
		return nil, fmt.Errorf("invalid shell command %q: %v", shellCommand, err)
	}
	if len(shell) == 0 {
		return nil, errors.New("shell command is empty")
	}
	return &ShellCommandExecuter{
		context: context.With("[executer]"),
		shell:   shell,
	}, nil
}

// Execute starts commandLine as the last argument of the shell and returns once
// it is running. Its output only reaches the debug log.
func (e *ShellCommandExecuter) Execute(commandLine string) error {
	log := e.context.Log()

	args := make([]string, 0, len(e.shell))
	args = append(args, e.shell[1:]...)
	args = append(args, commandLine)
	command := execCommand(e.shell[0], args...)
	prepareProcess(command)

	output := &limitedBuffer{limit: maxLoggedOutput}
	command.Stdout = output
	command.Stderr = output

	if err := command.Start(); err != nil {
		return fmt.Errorf("failed to start %q: %v", commandLine, err)
	}
	log.Debugf("Started shell command %q with pid %d", commandLine, command.Process.Pid)

	go func() {
		defer func() {
			if msg := recover(); msg != nil {
				log.Errorf("Shell command wait panic: %v", msg)
				log.Errorf("%s: %s", msg, debug.Stack())
			}
		}()

		exitCode := 0
		if err := command.Wait(); err != nil {
			exitCode = -1
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				exitCode = exitErr.ExitCode()
			}
		}
		log.Debugf("Shell command %q exited with code %d, output: %s", commandLine, exitCode, output.String())
		if e.done != nil {
			e.done(exitCode)
		}
	}()
	return nil
}

// limitedBuffer keeps the first limit bytes written to it and drops the rest.
type limitedBuffer struct {
	mu    sync.Mutex
	buf   []byte
	limit int
}

func (b *limitedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if room := b.limit - len(b.buf); room > 0 {
		if len(p) > room {
			b.buf = append(b.buf, p[:room]...)
		} else {
			b.buf = append(b.buf, p...)
		}
	}
	return len(p), nil
}

func (b *limitedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return string(b.buf)
}
