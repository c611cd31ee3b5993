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
	"bytes"
	"errors"
	"fmt"
	"testing"

	seelog "github.com/cihub/seelog"
	"github.com/stretchr/testify/assert"
)

type TestCase struct {
	Context   string
	LogFormat string
	Level     seelog.LogLevel
	Message   string
	Params    []interface{}
	Output    string
}

func generateTestCase(t *testing.T, level seelog.LogLevel, callingFunctionName string, message string, params ...interface{}) TestCase {
	testCase := TestCase{
		Context:   "[controlchannel]",
		LogFormat: "%FuncShort [%Level] %Msg%n",
		Level:     level,
		Message:   message,
		Params:    params,
	}
	var levelStr string
	switch level {
	case seelog.ErrorLvl:
		levelStr = "Error"
	case seelog.InfoLvl:
		levelStr = "Info"
	case seelog.DebugLvl:
		levelStr = "Debug"
	default:
		assert.Fail(t, "Unexpected log level", level)
	}

	msg := fmt.Sprintf(testCase.Message, testCase.Params...)
	testCase.Output = fmt.Sprintf("%s [%v] %v %v\n", callingFunctionName, levelStr, testCase.Context, msg)
	return testCase
}

func TestLoggerWithContext(t *testing.T) {
	var testCases []TestCase

	callingFunctionName := "testLoggerWithContext"
	for _, logLevel := range []seelog.LogLevel{seelog.DebugLvl, seelog.InfoLvl, seelog.ErrorLvl} {
		testCases = append(testCases, generateTestCase(t, logLevel, callingFunctionName, "(worker exited)"))
		testCases = append(testCases, generateTestCase(t, logLevel, callingFunctionName, "(worker exited with code %v)", 3))
	}

	for _, testCase := range testCases {
		testLoggerWithContext(t, testCase)
	}
}

func testLoggerWithContext(t *testing.T, testCase TestCase) {
	var out bytes.Buffer
	seelogger, err := seelog.LoggerFromWriterWithMinLevelAndFormat(&out, seelog.TraceLvl, testCase.LogFormat)
	assert.Nil(t, err)

	logger := withContext(seelogger, testCase.Context)

	switch testCase.Level {
	case seelog.ErrorLvl:
		if len(testCase.Params) > 0 {
			logger.Errorf(testCase.Message, testCase.Params...)
		} else {
			logger.Error(testCase.Message)
		}
	case seelog.InfoLvl:
		if len(testCase.Params) > 0 {
			logger.Infof(testCase.Message, testCase.Params...)
		} else {
			logger.Info(testCase.Message)
		}
	case seelog.DebugLvl:
		if len(testCase.Params) > 0 {
			logger.Debugf(testCase.Message, testCase.Params...)
		} else {
			logger.Debug(testCase.Message)
		}
	default:
		assert.Fail(t, "Unexpected log level", testCase.Level)
	}
	logger.Flush()

	assert.Equal(t, testCase.Output, out.String())
}

func TestWithContextAppendsToParentContext(t *testing.T) {
	var out bytes.Buffer
	seelogger, err := seelog.LoggerFromWriterWithMinLevelAndFormat(&out, seelog.TraceLvl, "%Msg%n")
	assert.Nil(t, err)

	logger := withContext(seelogger, "[bot-supervisor]").WithContext("[conn 1]")
	logger.Infof("received %s", "status")
	logger.Flush()

	assert.Equal(t, "[bot-supervisor] [conn 1] received status\n", out.String())
}

func TestDefaultConfigIsValidSeelogXml(t *testing.T) {
	logger, err := seelog.LoggerFromConfigAsBytes(DefaultConfig(t.TempDir()))
	assert.Nil(t, err)
	logger.Close()

	logger, err = seelog.LoggerFromConfigAsBytes(ConsoleConfig())
	assert.Nil(t, err)
	logger.Close()
}

func TestInitFallsBackToDefaultConfig(t *testing.T) {
	oldRead := readConfigFile
	readConfigFile = func(string) ([]byte, error) { return nil, errors.New("missing") }
	defer func() { readConfigFile = oldRead }()

	logger := Init(t.TempDir(), "/does/not/exist/seelog.xml")
	assert.NotNil(t, logger)
	assert.Equal(t, logger, Logger())
	logger.Close()
}

func TestContextFormatFilter(t *testing.T) {
	filter := ContextFormatFilter{Context: []string{"[a]", "[b]"}}

	format, params := filter.Filterf("%s done", "start")
	assert.Equal(t, "[a] [b] %s done", format)
	assert.Equal(t, []interface{}{"start"}, params)

	assert.Equal(t, []interface{}{"[a] ", "[b] ", "x"}, filter.Filter("x"))
}
