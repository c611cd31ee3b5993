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

package interpreter

import (
	"fmt"

	"github.com/xandium/bot-supervisor/agent/codec"
	"github.com/xandium/bot-supervisor/agent/fileutil"
)

func requireArgs(command Command, count int, usage string) error {
	if len(command.Args) < count {
		return fmt.Errorf("usage: %s %s", command.Name, usage)
	}
	return nil
}

func handleOK(i *Interpreter, command Command) error {
	if !i.marker.Exists() {
		i.send(ReplyPullAll)
	}
	return nil
}

func handleError(i *Interpreter, command Command) error {
	i.context.Log().Errorf("MGR> Error over websocket - %s", command.Text())
	return nil
}

func handleLaunch(i *Interpreter, command Command) error {
	if err := requireArgs(command, 1, "<exe> <arg>*"); err != nil {
		return err
	}
	args := make([]string, len(command.Args)-1)
	copy(args, command.Args[1:])
	i.supervisor.SetLaunch(command.Args[0], args)
	return nil
}

func handleKill(i *Interpreter, command Command) error {
	return nil
}

func handleStop(i *Interpreter, command Command) error {
	return i.supervisor.Stop()
}

func handleMkdir(i *Interpreter, command Command) error {
	if err := requireArgs(command, 1, "<path>"); err != nil {
		return err
	}
	return fileutil.MakeDir(command.Args[0])
}

func handleRmdir(i *Interpreter, command Command) error {
	if err := requireArgs(command, 1, "<path>"); err != nil {
		return err
	}
	return fileutil.RemoveDir(command.Args[0])
}

func handleUpdate(i *Interpreter, command Command) error {
	if err := requireArgs(command, 2, "<path> <payload>"); err != nil {
		return err
	}
	data, err := codec.Decode(command.Args[1])
	if err != nil {
		return err
	}
	return fileutil.WriteAllBytes(command.Args[0], data)
}

func handleDelete(i *Interpreter, command Command) error {
	if err := requireArgs(command, 1, "<path>"); err != nil {
		return err
	}
	return fileutil.DeleteFile(command.Args[0])
}

func handleReload(i *Interpreter, command Command) error {
	if err := i.supervisor.StopAndWait(); err != nil {
		return err
	}
	return i.supervisor.Start()
}

func handleRestart(i *Interpreter, command Command) error {
	return i.supervisor.Kill()
}

func handleStatus(i *Interpreter, command Command) error {
	if i.supervisor.IsRunning() {
		i.send(ReplyRunning)
	} else {
		i.send(ReplyOffline)
	}
	return nil
}

func handleStart(i *Interpreter, command Command) error {
	return i.supervisor.Start()
}

func handleExecute(i *Interpreter, command Command) error {
	return i.executer.Execute(command.Text())
}

func handlePullEnd(i *Interpreter, command Command) error {
	return i.marker.Set()
}
