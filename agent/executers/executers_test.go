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

//go:build darwin || freebsd || linux || netbsd || openbsd
// +build darwin freebsd linux netbsd openbsd

package executers

import (
	"io/ioutil"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xandium/bot-supervisor/agent/appconfig"
	"github.com/xandium/bot-supervisor/agent/context"
)

func newExecuter(t *testing.T, shell string) *ShellCommandExecuter {
	config := appconfig.DefaultConfig()
	config.Shell.Command = shell
	executer, err := NewShellCommandExecuter(context.NewMockDefaultWithConfig(config))
	require.NoError(t, err)
	return executer
}

func TestExecuteRunsThroughShell(t *testing.T) {
	executer := newExecuter(t, "/bin/sh -c")
	exitCodes := make(chan int, 1)
	executer.done = func(code int) { exitCodes <- code }

	out := filepath.Join(t.TempDir(), "out.txt")
	assert.NoError(t, executer.Execute("echo hello world > "+out))

	select {
	case code := <-exitCodes:
		assert.Equal(t, 0, code)
	case <-time.After(5 * time.Second):
		t.Fatal("shell command did not finish")
	}
	content, err := ioutil.ReadFile(out)
	assert.NoError(t, err)
	assert.Equal(t, "hello world\n", string(content))
}

func TestExecuteReturnsBeforeCommandFinishes(t *testing.T) {
	executer := newExecuter(t, "/bin/sh -c")
	exitCodes := make(chan int, 1)
	executer.done = func(code int) { exitCodes <- code }

	start := time.Now()
	assert.NoError(t, executer.Execute("sleep 1; exit 3"))
	assert.True(t, time.Since(start) < 500*time.Millisecond)

	select {
	case code := <-exitCodes:
		assert.Equal(t, 3, code)
	case <-time.After(5 * time.Second):
		t.Fatal("shell command did not finish")
	}
}

func TestExecuteStartFailure(t *testing.T) {
	executer := newExecuter(t, "/does/not/exist -c")
	assert.Error(t, executer.Execute("true"))
}

func TestShellPrefixIsSplitWithQuotes(t *testing.T) {
	executer := newExecuter(t, `/usr/bin/env "sh" -c`)
	assert.Equal(t, []string{"/usr/bin/env", "sh", "-c"}, executer.shell)
}

func TestEmptyShellIsRejected(t *testing.T) {
	config := appconfig.DefaultConfig()
	config.Shell.Command = "   "
	_, err := NewShellCommandExecuter(context.NewMockDefaultWithConfig(config))
	assert.Error(t, err)
}

func TestLimitedBufferKeepsPrefix(t *testing.T) {
	buf := &limitedBuffer{limit: 4}
	n, err := buf.Write([]byte("abcdef"))
	assert.NoError(t, err)
	assert.Equal(t, 6, n)
	buf.Write([]byte("gh"))
	assert.Equal(t, "abcd", buf.String())
}
