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

// parser applies limits and fills empty values with defaults
func parser(config *SupervisorConfig) {
	config.Agent.Name = getStringValue(config.Agent.Name, DefaultAgentName)
	config.Agent.LogDir = getStringValue(config.Agent.LogDir, DefaultLogDir)
	config.Agent.PidFile = getStringValue(config.Agent.PidFile, DefaultPidFile)

	config.Manager.Url = getStringValue(config.Manager.Url, DefaultManagerUrl)
	config.Manager.ReconnectDelaySeconds = getNumericValue(
		config.Manager.ReconnectDelaySeconds,
		DefaultReconnectDelaySecondsMin,
		DefaultReconnectDelaySecondsMax,
		DefaultReconnectDelaySeconds)
	config.Manager.PingIntervalSeconds = getNumericValue(
		config.Manager.PingIntervalSeconds,
		DefaultPingIntervalSecondsMin,
		DefaultPingIntervalSecondsMax,
		DefaultPingIntervalSeconds)
	config.Manager.HandshakeTimeoutSeconds = getNumericValue(
		config.Manager.HandshakeTimeoutSeconds,
		DefaultHandshakeTimeoutSecondsMin,
		DefaultHandshakeTimeoutSecondsMax,
		DefaultHandshakeTimeoutSeconds)

	config.Worker.StopTimeoutSeconds = getNumericValue(
		config.Worker.StopTimeoutSeconds,
		DefaultStopTimeoutSecondsMin,
		DefaultStopTimeoutSecondsMax,
		DefaultStopTimeoutSeconds)

	config.Provisioning.MarkerFile = getStringValue(config.Provisioning.MarkerFile, DefaultMarkerFile)
	config.Shell.Command = getStringValue(config.Shell.Command, DefaultShellCommand)
}

func getStringValue(configValue string, defaultValue string) string {
	if configValue == "" {
		return defaultValue
	}
	return configValue
}

func getNumericValue(configValue int, minValue int, maxValue int, defaultValue int) int {
	if configValue < minValue || configValue > maxValue {
		return defaultValue
	}
	return configValue
}
