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

// Package log wraps seelog for the supervisor. Call Init once from main; other
// code receives a T through the agent context.
package log

import (
	"fmt"
	"io/ioutil"
	"sync"

	"github.com/cihub/seelog"
)

const (
	LogFile   = "bot-supervisor.log"
	ErrorFile = "errors.log"
)

// seelogDefault is the underlying seelog logger.
var seelogDefault seelog.LoggerInterface

// pkgMutex serializes calls into seelog from all wrappers.
var pkgMutex = new(sync.Mutex)

var loadedLogger *T
var lock sync.RWMutex

// readConfigFile is replaced in tests.
var readConfigFile = ioutil.ReadFile

// Init loads the logger. A seelog xml file at seelogConfigPath wins if it can be
// read; otherwise the built-in configuration writing under logDir is used.
func Init(logDir string, seelogConfigPath string) T {
	var configBytes []byte
	if seelogConfigPath != "" {
		var err error
		if configBytes, err = readConfigFile(seelogConfigPath); err != nil {
			fmt.Println("Error reading seelog config, using defaults:", err)
			configBytes = nil
		}
	}
	if configBytes == nil {
		configBytes = DefaultConfig(logDir)
	}

	logger := initLoggerFromBytes(configBytes)
	if logger == nil {
		logger = initLoggerFromBytes(ConsoleConfig())
	}
	cache(logger)
	return logger
}

// Logger returns the logger loaded by Init, or a console logger if Init has
// not run yet.
func Logger() T {
	if !isLoaded() {
		cache(initLoggerFromBytes(ConsoleConfig()))
	}
	return getCached()
}

func isLoaded() bool {
	lock.RLock()
	defer lock.RUnlock()
	return loadedLogger != nil
}

func cache(logger T) {
	lock.Lock()
	defer lock.Unlock()
	loadedLogger = &logger
}

func getCached() T {
	lock.RLock()
	defer lock.RUnlock()
	return *loadedLogger
}

// WithContext creates a logger that includes the given context with every log message.
func WithContext(context ...string) (contextLogger T) {
	return withContext(seelogDefault, context...)
}

func withContext(logger seelog.LoggerInterface, context ...string) (contextLogger T) {
	formatFilter := &ContextFormatFilter{Context: context}
	contextLogger = &Wrapper{Delegate: logger, Format: formatFilter, M: pkgMutex}

	// depth 2 skips seelog and the wrapper so %FuncShort names the caller
	logger.SetAdditionalStackDepth(2)
	return contextLogger
}

// ContextFormatFilter prefixes every message with a fixed list of context strings.
type ContextFormatFilter struct {
	Context []string
}

// Filter adds the context at the beginning of the parameter slice.
func (f ContextFormatFilter) Filter(params ...interface{}) (newParams []interface{}) {
	newParams = make([]interface{}, 0, len(f.Context)+len(params))
	for _, c := range f.Context {
		newParams = append(newParams, c+" ")
	}
	return append(newParams, params...)
}

// Filterf adds the context in front of the format string.
func (f ContextFormatFilter) Filterf(format string, params ...interface{}) (newFormat string, newParams []interface{}) {
	for _, c := range f.Context {
		newFormat += c + " "
	}
	return newFormat + format, params
}

func initLoggerFromBytes(seelogConfig []byte) (logger T) {
	seelogger, err := seelog.LoggerFromConfigAsBytes(seelogConfig)
	if err != nil {
		fmt.Println("Error parsing logger config:", err)
		return nil
	}
	seelogDefault = seelogger
	return withContext(seelogDefault)
}
