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

import "path/filepath"

const logFormat = "%Date %Time %LEVEL %Msg%n"
const errorFormat = "%Date %Time %LEVEL [%FuncShort @ %File.%Line] %Msg%n"

// DefaultConfig returns a seelog configuration that logs to the console and to
// size-rolled files under logDir, with errors duplicated into their own file.
func DefaultConfig(logDir string) []byte {
	logFilePath := filepath.Join(logDir, LogFile)
	errorFilePath := filepath.Join(logDir, ErrorFile)

	logConfig := `
<seelog type="asyncloop" minlevel="info">
    <outputs formatid="fmtinfo">
        <console formatid="fmtinfo"/>
        `
	logConfig += `<rollingfile type="size" filename="` + logFilePath + `" maxsize="10000000" maxrolls="5"/>`
	logConfig += `
        <filter levels="error,critical" formatid="fmterror">
        `
	logConfig += `<rollingfile type="size" filename="` + errorFilePath + `" maxsize="5000000" maxrolls="5"/>`
	logConfig += `
        </filter>
    </outputs>
    <formats>
        <format id="fmterror" format="` + errorFormat + `"/>
        <format id="fmtinfo" format="` + logFormat + `"/>
    </formats>
</seelog>
`
	return []byte(logConfig)
}

// ConsoleConfig is used before Init and when no file output can be configured.
func ConsoleConfig() []byte {
	return []byte(`
<seelog type="sync" minlevel="info">
    <outputs formatid="fmtinfo">
        <console/>
    </outputs>
    <formats>
        <format id="fmtinfo" format="` + logFormat + `"/>
    </formats>
</seelog>
`)
}
