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

// Package appconfig manages the configuration of the supervisor.
package appconfig

import "time"

// ManagerCfg represents the control connection to the manager
type ManagerCfg struct {
	Url                     string
	ReconnectDelaySeconds   int
	PingIntervalSeconds     int
	HandshakeTimeoutSeconds int
}

// CredentialsCfg holds the three values sent in the login line
type CredentialsCfg struct {
	Account       string
	WorkerAccount string
	Secret        string
}

// WorkerCfg represents configuration for the supervised worker process
type WorkerCfg struct {
	StopTimeoutSeconds int
}

// ProvisioningCfg locates the provisioning marker file
type ProvisioningCfg struct {
	MarkerFile string
}

// ShellCfg is the shell prefix used by the execute command, e.g. "/bin/sh -c"
type ShellCfg struct {
	Command string
}

// AgentInfo represents metadata for the supervisor process itself
type AgentInfo struct {
	Name         string
	Version      string
	LogDir       string
	SeelogConfig string
	PidFile      string
	EnvFile      string
}

// SupervisorConfig is built once at startup and passed by reference to every component.
type SupervisorConfig struct {
	Manager      ManagerCfg
	Credentials  CredentialsCfg
	Worker       WorkerCfg
	Provisioning ProvisioningCfg
	Shell        ShellCfg
	Agent        AgentInfo
}

// ReconnectDelay is the flat wait between a channel closing and the next dial.
func (config SupervisorConfig) ReconnectDelay() time.Duration {
	return time.Duration(config.Manager.ReconnectDelaySeconds) * time.Second
}

// PingInterval is zero when keepalive pings are disabled.
func (config SupervisorConfig) PingInterval() time.Duration {
	return time.Duration(config.Manager.PingIntervalSeconds) * time.Second
}

func (config SupervisorConfig) HandshakeTimeout() time.Duration {
	return time.Duration(config.Manager.HandshakeTimeoutSeconds) * time.Second
}

func (config SupervisorConfig) StopTimeout() time.Duration {
	return time.Duration(config.Worker.StopTimeoutSeconds) * time.Second
}
