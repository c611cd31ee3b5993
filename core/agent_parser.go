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

// Parser contains logic for commandline handling flags
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/xandium/bot-supervisor/agent/appconfig"
	"github.com/xandium/bot-supervisor/agent/version"
)

// parseFlags displays flags and handles them
func parseFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	flag.Usage = flagUsage

	flag.BoolVar(&agentVersionFlag, versionFlag, false, "")
	flag.StringVar(&envFile, envFileFlag, appconfig.DefaultEnvFile, "")

	flag.Parse()
}

// handles agent version flag.
// This function is without logger and will not print extra statements
func handleAgentVersionFlag() {
	if agentVersionFlag {
		fmt.Println("bot-supervisor version: " + version.Version)
		osExit(0)
	}
}

// flagUsage displays a command-line friendly usage message
func flagUsage() {
	fmt.Fprintln(os.Stderr, "\n\nCommand-line Usage:")
	fmt.Fprintln(os.Stderr, "\t-version\tprint the supervisor version and exit")
	fmt.Fprintln(os.Stderr, "\t-env    \tdotenv file with credentials and settings\t(default "+appconfig.DefaultEnvFile+")")
}
