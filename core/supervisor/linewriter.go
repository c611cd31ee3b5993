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
	"bytes"
	"sync"
)

// maxLineLength caps a single forwarded line when the worker never writes a newline.
const maxLineLength = 64 * 1024

// lineWriter forwards complete lines written by the worker to logLine,
// each prefixed with its stream name.
type lineWriter struct {
	prefix  string
	logLine func(format string, params ...interface{})

	mu      sync.Mutex
	pending bytes.Buffer
}

func newLineWriter(prefix string, logLine func(format string, params ...interface{})) *lineWriter {
	return &lineWriter{prefix: prefix, logLine: logLine}
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending.Write(p)
	for {
		buffered := w.pending.Bytes()
		i := bytes.IndexByte(buffered, '\n')
		if i < 0 {
			if w.pending.Len() >= maxLineLength {
				w.emit(w.pending.Next(w.pending.Len()))
			}
			return len(p), nil
		}
		w.emit(w.pending.Next(i + 1))
	}
}

// Flush forwards a trailing partial line.
func (w *lineWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pending.Len() > 0 {
		w.emit(w.pending.Next(w.pending.Len()))
	}
}

func (w *lineWriter) emit(line []byte) {
	line = bytes.TrimRight(line, "\r\n")
	w.logLine("%s: %s", w.prefix, string(line))
}
