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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSplitsOnSingleSpaces(t *testing.T) {
	command := Parse("command /usr/bin/node  index.js")

	assert.Equal(t, "command", command.Name)
	assert.Equal(t, []string{"/usr/bin/node", "", "index.js"}, command.Args)
}

func TestParseWithoutArguments(t *testing.T) {
	command := Parse("status")

	assert.Equal(t, "status", command.Name)
	assert.Empty(t, command.Args)
}

func TestParseTrimsLineEnding(t *testing.T) {
	command := Parse("mkdir bots\r\n")

	assert.Equal(t, []string{"bots"}, command.Args)
}

func TestParseEmptyLine(t *testing.T) {
	command := Parse("")

	assert.Equal(t, "", command.Name)
	assert.Empty(t, command.Args)
}

func TestCommandTextRejoinsArguments(t *testing.T) {
	assert.Equal(t, "echo  hi there", Parse("execute echo  hi there").Text())
}

func TestPolicyTable(t *testing.T) {
	expected := map[string]ResultPolicy{
		CommandOK:      Discard,
		CommandError:   Fatal,
		CommandLaunch:  Discard,
		CommandKill:    Fatal,
		CommandStop:    Discard,
		CommandMkdir:   Discard,
		CommandRmdir:   Discard,
		CommandUpdate:  Report,
		CommandDelete:  Report,
		CommandReload:  Report,
		CommandRestart: Fatal,
		CommandStatus:  Discard,
		CommandStart:   Report,
		CommandExecute: Discard,
		CommandPullEnd: Report,
	}
	for name, policy := range expected {
		actual, ok := PolicyOf(name)
		assert.True(t, ok, name)
		assert.Equal(t, policy, actual, name)
	}
	_, ok := PolicyOf("ok")
	assert.False(t, ok)
}
