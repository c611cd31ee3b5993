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

// ResultPolicy decides what happens with the error a command handler returns.
type ResultPolicy int

const (
	// Discard logs the result at debug level and drops it.
	Discard ResultPolicy = iota
	// Report logs a failure and sends it to the manager as "log <command>: <error>".
	Report
	// Fatal terminates the agent with the command's exit code once the handler returns.
	Fatal
)

func (p ResultPolicy) String() string {
	switch p {
	case Discard:
		return "discard"
	case Report:
		return "report"
	case Fatal:
		return "fatal"
	}
	return "unknown"
}

type handlerFunc func(i *Interpreter, command Command) error

type commandEntry struct {
	handler  handlerFunc
	policy   ResultPolicy
	exitCode int
}

// Command names are case sensitive.
const (
	CommandOK      = "OK"
	CommandError   = "ERROR"
	CommandLaunch  = "command"
	CommandKill    = "kill"
	CommandStop    = "stop"
	CommandMkdir   = "mkdir"
	CommandRmdir   = "rmdir"
	CommandUpdate  = "update"
	CommandDelete  = "delete"
	CommandReload  = "reload"
	CommandRestart = "restart"
	CommandStatus  = "status"
	CommandStart   = "start"
	CommandExecute = "execute"
	CommandPullEnd = "pullend"
)

// Outbound lines.
const (
	ReplyPullAll = "pullall"
	ReplyRunning = "running"
	ReplyOffline = "offline"
)

// mkdir and rmdir failures are dropped while update and delete failures are
// reported.
var commandTable = map[string]commandEntry{
	CommandOK:      {handler: handleOK, policy: Discard},
	CommandError:   {handler: handleError, policy: Fatal, exitCode: 1},
	CommandLaunch:  {handler: handleLaunch, policy: Discard},
	CommandKill:    {handler: handleKill, policy: Fatal, exitCode: 0},
	CommandStop:    {handler: handleStop, policy: Discard},
	CommandMkdir:   {handler: handleMkdir, policy: Discard},
	CommandRmdir:   {handler: handleRmdir, policy: Discard},
	CommandUpdate:  {handler: handleUpdate, policy: Report},
	CommandDelete:  {handler: handleDelete, policy: Report},
	CommandReload:  {handler: handleReload, policy: Report},
	CommandRestart: {handler: handleRestart, policy: Fatal, exitCode: 0},
	CommandStatus:  {handler: handleStatus, policy: Discard},
	CommandStart:   {handler: handleStart, policy: Report},
	CommandExecute: {handler: handleExecute, policy: Discard},
	CommandPullEnd: {handler: handlePullEnd, policy: Report},
}

// PolicyOf returns the result policy of a known command.
func PolicyOf(name string) (ResultPolicy, bool) {
	entry, ok := commandTable[name]
	return entry.policy, ok
}
