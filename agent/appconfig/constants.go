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

package appconfig

const (
	// DefaultAgentName is the name used for logs and the pid file
	DefaultAgentName = "bot-supervisor"

	// DefaultEnvFile is read for values missing from the process environment
	DefaultEnvFile = ".env"

	// DefaultManagerUrl is the local manager endpoint
	DefaultManagerUrl = "ws://localhost:8000"

	// DefaultMarkerFile records that the initial resource pull completed
	DefaultMarkerFile = "manager.lock"

	DefaultPidFile = DefaultAgentName + ".pid"
	DefaultLogDir  = "logs"
)

// Environment variable names. The credential names are shared with the worker deployment.
const (
	EnvAccount       = "AMQP_USER"
	EnvWorkerAccount = "AMQP_BOTUSER"
	EnvSecret        = "AMQP_PASS"

	EnvManagerUrl       = "SUPERVISOR_MANAGER_URL"
	EnvReconnectDelay   = "SUPERVISOR_RECONNECT_DELAY_SECONDS"
	EnvPingInterval     = "SUPERVISOR_PING_INTERVAL_SECONDS"
	EnvHandshakeTimeout = "SUPERVISOR_HANDSHAKE_TIMEOUT_SECONDS"
	EnvStopTimeout      = "SUPERVISOR_STOP_TIMEOUT_SECONDS"
	EnvMarkerFile       = "SUPERVISOR_MARKER_FILE"
	EnvShell            = "SUPERVISOR_SHELL"
	EnvLogDir           = "SUPERVISOR_LOG_DIR"
	EnvSeelogConfig     = "SUPERVISOR_SEELOG_CONFIG"
	EnvPidFile          = "SUPERVISOR_PID_FILE"
)

// Limits applied by the parser. Values outside a range fall back to the default.
const (
	DefaultReconnectDelaySeconds    = 5
	DefaultReconnectDelaySecondsMin = 1
	DefaultReconnectDelaySecondsMax = 300

	DefaultPingIntervalSeconds    = 60
	DefaultPingIntervalSecondsMin = 0
	DefaultPingIntervalSecondsMax = 3600

	DefaultHandshakeTimeoutSeconds    = 10
	DefaultHandshakeTimeoutSecondsMin = 1
	DefaultHandshakeTimeoutSecondsMax = 120

	DefaultStopTimeoutSeconds    = 10
	DefaultStopTimeoutSecondsMin = 1
	DefaultStopTimeoutSecondsMax = 600
)
