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

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/xandium/bot-supervisor/agent/version"
	"gopkg.in/ini.v1"
)

// lookupEnv is replaced in tests.
var lookupEnv = os.LookupEnv

// Load builds the configuration from defaults, the process environment and the
// dotenv style file at envFile. Values already present in the environment are
// never overridden by the file. A missing file is not an error.
func Load(envFile string) (SupervisorConfig, error) {
	config := DefaultConfig()
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	config.Agent.EnvFile = envFile

	fileValues, err := loadEnvFile(envFile)
	if err != nil {
		return config, err
	}
	source := envSource{file: fileValues}

	config.Credentials.Account = source.get(EnvAccount)
	config.Credentials.WorkerAccount = source.get(EnvWorkerAccount)
	config.Credentials.Secret = source.get(EnvSecret)

	config.Manager.Url = source.getString(EnvManagerUrl, config.Manager.Url)
	config.Provisioning.MarkerFile = source.getString(EnvMarkerFile, config.Provisioning.MarkerFile)
	config.Shell.Command = source.getString(EnvShell, config.Shell.Command)
	config.Agent.LogDir = source.getString(EnvLogDir, config.Agent.LogDir)
	config.Agent.SeelogConfig = source.getString(EnvSeelogConfig, config.Agent.SeelogConfig)
	config.Agent.PidFile = source.getString(EnvPidFile, config.Agent.PidFile)

	ints := []struct {
		name   string
		target *int
	}{
		{EnvReconnectDelay, &config.Manager.ReconnectDelaySeconds},
		{EnvPingInterval, &config.Manager.PingIntervalSeconds},
		{EnvHandshakeTimeout, &config.Manager.HandshakeTimeoutSeconds},
		{EnvStopTimeout, &config.Worker.StopTimeoutSeconds},
	}
	for _, entry := range ints {
		if *entry.target, err = source.getInt(entry.name, *entry.target); err != nil {
			return config, err
		}
	}

	parser(&config)

	if err = validate(config); err != nil {
		return config, err
	}
	return config, nil
}

// DefaultConfig returns the configuration used when nothing is overridden.
// Credentials have no default.
func DefaultConfig() SupervisorConfig {
	return SupervisorConfig{
		Manager: ManagerCfg{
			Url:                     DefaultManagerUrl,
			ReconnectDelaySeconds:   DefaultReconnectDelaySeconds,
			PingIntervalSeconds:     DefaultPingIntervalSeconds,
			HandshakeTimeoutSeconds: DefaultHandshakeTimeoutSeconds,
		},
		Worker: WorkerCfg{
			StopTimeoutSeconds: DefaultStopTimeoutSeconds,
		},
		Provisioning: ProvisioningCfg{
			MarkerFile: DefaultMarkerFile,
		},
		Shell: ShellCfg{
			Command: DefaultShellCommand,
		},
		Agent: AgentInfo{
			Name:    DefaultAgentName,
			Version: version.Version,
			LogDir:  DefaultLogDir,
			PidFile: DefaultPidFile,
			EnvFile: DefaultEnvFile,
		},
	}
}

func validate(config SupervisorConfig) error {
	var missing []string
	if config.Credentials.Account == "" {
		missing = append(missing, EnvAccount)
	}
	if config.Credentials.WorkerAccount == "" {
		missing = append(missing, EnvWorkerAccount)
	}
	if config.Credentials.Secret == "" {
		missing = append(missing, EnvSecret)
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

// envSource resolves a key from the process environment first, then from the env file.
type envSource struct {
	file map[string]string
}

func (s envSource) get(name string) string {
	if value, ok := lookupEnv(name); ok {
		return value
	}
	return s.file[name]
}

func (s envSource) getString(name string, defaultValue string) string {
	if value := strings.TrimSpace(s.get(name)); value != "" {
		return value
	}
	return defaultValue
}

func (s envSource) getInt(name string, defaultValue int) (int, error) {
	value := strings.TrimSpace(s.get(name))
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue, fmt.Errorf("invalid value %q for %s: %v", value, name, err)
	}
	return parsed, nil
}

// loadEnvFile reads KEY=VALUE lines from a dotenv file. An "export " prefix on a key is dropped.
func loadEnvFile(path string) (map[string]string, error) {
	values := map[string]string{}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return values, nil
	}

	file, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:     true,
		SkipUnrecognizableLines: true,
		KeyValueDelimiters:      "=",
	}, path)
	if err != nil {
		return values, fmt.Errorf("failed to read env file %s: %v", path, err)
	}

	for _, key := range file.Section(ini.DefaultSection).Keys() {
		name := strings.TrimSpace(strings.TrimPrefix(key.Name(), "export "))
		values[name] = key.String()
	}
	return values, nil
}
