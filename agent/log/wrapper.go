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

import (
	"sync"
)

// Wrapper rewrites a message through its FormatFilter and hands it to Delegate.
type Wrapper struct {
	Format   FormatFilter
	Delegate BasicT
	M        *sync.Mutex
}

// FormatFilter can modify the format and or parameters to be passed to a logger.
type FormatFilter interface {
	Filter(params ...interface{}) (newParams []interface{})
	Filterf(format string, params ...interface{}) (newFormat string, newParams []interface{})
}

// WithContext returns a wrapper whose context is this wrapper's context
// followed by the given entries.
func (w Wrapper) WithContext(context ...string) (contextLogger T) {
	var inherited []string
	if f, ok := w.Format.(*ContextFormatFilter); ok {
		inherited = append(inherited, f.Context...)
	}
	return &Wrapper{
		Format:   &ContextFormatFilter{Context: append(inherited, context...)},
		Delegate: w.Delegate,
		M:        w.M,
	}
}

func (w Wrapper) Tracef(format string, params ...interface{}) {
	format, params = w.Format.Filterf(format, params...)
	w.M.Lock()
	defer w.M.Unlock()
	w.Delegate.Tracef(format, params...)
}

func (w Wrapper) Debugf(format string, params ...interface{}) {
	format, params = w.Format.Filterf(format, params...)
	w.M.Lock()
	defer w.M.Unlock()
	w.Delegate.Debugf(format, params...)
}

func (w Wrapper) Infof(format string, params ...interface{}) {
	format, params = w.Format.Filterf(format, params...)
	w.M.Lock()
	defer w.M.Unlock()
	w.Delegate.Infof(format, params...)
}

func (w Wrapper) Warnf(format string, params ...interface{}) error {
	format, params = w.Format.Filterf(format, params...)
	w.M.Lock()
	defer w.M.Unlock()
	return w.Delegate.Warnf(format, params...)
}

func (w Wrapper) Errorf(format string, params ...interface{}) error {
	format, params = w.Format.Filterf(format, params...)
	w.M.Lock()
	defer w.M.Unlock()
	return w.Delegate.Errorf(format, params...)
}

func (w Wrapper) Criticalf(format string, params ...interface{}) error {
	format, params = w.Format.Filterf(format, params...)
	w.M.Lock()
	defer w.M.Unlock()
	return w.Delegate.Criticalf(format, params...)
}

func (w Wrapper) Trace(v ...interface{}) {
	v = w.Format.Filter(v...)
	w.M.Lock()
	defer w.M.Unlock()
	w.Delegate.Trace(v...)
}

func (w Wrapper) Debug(v ...interface{}) {
	v = w.Format.Filter(v...)
	w.M.Lock()
	defer w.M.Unlock()
	w.Delegate.Debug(v...)
}

func (w Wrapper) Info(v ...interface{}) {
	v = w.Format.Filter(v...)
	w.M.Lock()
	defer w.M.Unlock()
	w.Delegate.Info(v...)
}

func (w Wrapper) Warn(v ...interface{}) error {
	v = w.Format.Filter(v...)
	w.M.Lock()
	defer w.M.Unlock()
	return w.Delegate.Warn(v...)
}

func (w Wrapper) Error(v ...interface{}) error {
	v = w.Format.Filter(v...)
	w.M.Lock()
	defer w.M.Unlock()
	return w.Delegate.Error(v...)
}

func (w Wrapper) Critical(v ...interface{}) error {
	v = w.Format.Filter(v...)
	w.M.Lock()
	defer w.M.Unlock()
	return w.Delegate.Critical(v...)
}

func (w Wrapper) Flush() {
	w.M.Lock()
	defer w.M.Unlock()
	w.Delegate.Flush()
}

func (w Wrapper) Close() {
	w.M.Lock()
	defer w.M.Unlock()
	w.Delegate.Close()
}
