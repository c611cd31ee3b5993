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

package log

// BasicT is the leveled logging surface used by the supervisor.
// seelog.LoggerInterface satisfies it, which lets the wrapper delegate directly.
type BasicT interface {
	Tracef(format string, params ...interface{})
	Debugf(format string, params ...interface{})
	Infof(format string, params ...interface{})
	Warnf(format string, params ...interface{}) error
	Errorf(format string, params ...interface{}) error
	Criticalf(format string, params ...interface{}) error

	Trace(v ...interface{})
	Debug(v ...interface{})
	Info(v ...interface{})
	Warn(v ...interface{}) error
	Error(v ...interface{}) error
	Critical(v ...interface{}) error

	// Flush writes out anything buffered by the underlying logger.
	Flush()

	// Close flushes and releases the logger. It must not be used afterwards.
	Close()
}

// T is a BasicT that can derive loggers carrying extra context, for example
// the component or connection a message belongs to.
type T interface {
	BasicT
	WithContext(context ...string) (contextLogger T)
}
