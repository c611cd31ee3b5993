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

import "strings"

// Command is one parsed inbound line.
type Command struct {
	Name string
	Args []string
}

// Parse splits line on single spaces. The first token is the command name.
// Empty tokens from consecutive spaces keep their position.
func Parse(line string) Command {
	line = strings.TrimRight(line, "\r\n")
	tokens := strings.Split(line, " ")
	return Command{
		Name: tokens[0],
		Args: tokens[1:],
	}
}

// Text rejoins the arguments with single spaces.
func (c Command) Text() string {
	return strings.Join(c.Args, " ")
}
