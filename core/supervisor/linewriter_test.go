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

package supervisor

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type capturedLines struct {
	lines []string
}

func (c *capturedLines) logLine(format string, params ...interface{}) {
	c.lines = append(c.lines, fmt.Sprintf(format, params...))
}

func TestLineWriterSplitsLines(t *testing.T) {
	captured := &capturedLines{}
	writer := newLineWriter("stdout", captured.logLine)

	n, err := writer.Write([]byte("ready\nlistening on "))
	assert.NoError(t, err)
	assert.Equal(t, 19, n)
	writer.Write([]byte("8080\r\n\n"))

	assert.Equal(t, []string{"stdout: ready", "stdout: listening on 8080", "stdout: "}, captured.lines)
}

func TestLineWriterFlushesPartialLine(t *testing.T) {
	captured := &capturedLines{}
	writer := newLineWriter("stderr", captured.logLine)

	writer.Write([]byte("no newline"))
	assert.Empty(t, captured.lines)

	writer.Flush()
	writer.Flush()
	assert.Equal(t, []string{"stderr: no newline"}, captured.lines)
}

func TestLineWriterCapsLongLines(t *testing.T) {
	captured := &capturedLines{}
	writer := newLineWriter("stdout", captured.logLine)

	writer.Write([]byte(strings.Repeat("x", maxLineLength)))

	assert.Len(t, captured.lines, 1)
}
