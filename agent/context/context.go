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

// Package context carries the logger and configuration shared by supervisor components.
package context

import (
	"github.com/xandium/bot-supervisor/agent/appconfig"
	"github.com/xandium/bot-supervisor/agent/log"
)

// T is the context handed to every component.
type T interface {
	Log() log.T
	AppConfig() appconfig.SupervisorConfig
	With(context string) T
	CurrentContext() []string
}

// Default returns a context whose logger is tagged with contextList.
func Default(logger log.T, config appconfig.SupervisorConfig, contextList ...string) T {
	return &defaultContext{
		context:   contextList,
		log:       logger.WithContext(contextList...),
		appconfig: config,
	}
}

type defaultContext struct {
	context   []string
	log       log.T
	appconfig appconfig.SupervisorConfig
}

// With returns a child context with logContext appended.
func (c *defaultContext) With(logContext string) T {
	contextSlice := make([]string, 0, len(c.context)+1)
	contextSlice = append(contextSlice, c.context...)
	contextSlice = append(contextSlice, logContext)
	return &defaultContext{
		context:   contextSlice,
		log:       c.log.WithContext(logContext),
		appconfig: c.appconfig,
	}
}

func (c *defaultContext) Log() log.T {
	return c.log
}

func (c *defaultContext) AppConfig() appconfig.SupervisorConfig {
	return c.appconfig
}

func (c *defaultContext) CurrentContext() []string {
	return c.context
}
