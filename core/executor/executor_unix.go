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

//go:build !windows
// +build !windows

package executor

import (
	"os"
	"os/exec"
	"syscall"
)

func prepareProcess(command *exec.Cmd) {
	// make the process the leader of its process group
	// (otherwise we cannot kill it properly)
	command.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

func terminateProcess(process *os.Process) error {
	return syscall.Kill(-process.Pid, syscall.SIGTERM)
}

func killProcess(process *os.Process) error {
	// '-pid' addresses every process in the group led by the worker,
	// see kill(2). Killing only the leader can leave children holding
	// the output pipes open, which blocks Wait.
	return syscall.Kill(-process.Pid, syscall.SIGKILL)
}
