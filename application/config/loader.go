/*
 * © 2026 beyondverage0908
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/adrg/xdg"
	"github.com/pkg/errors"
	"github.com/subosito/gotenv"
	"gopkg.in/yaml.v3"

	er "github.com/beyondverage0908/nanjin-common/domain/observability/error_reporting"
)

const (
	envFileName    = ".nanjin.env"
	yamlConfigPath = "nanjin/reporting.yaml"
)

// File is the YAML representation of the reporting settings.
type File struct {
	Dsn               string        `yaml:"dsn"`
	Environment       string        `yaml:"environment"`
	Debug             *bool         `yaml:"debug"`
	Release           string        `yaml:"release"`
	SampleRate        float64       `yaml:"sample_rate"`
	TracesSampleRate  float64       `yaml:"traces_sample_rate"`
	AttachDeviceId    bool          `yaml:"attach_device_id"`
	SdkUrl            string        `yaml:"sdk_url"`
	UserAgent         string        `yaml:"user_agent"`
	LegacyFloor       string        `yaml:"legacy_floor"`
	PendingEnrichment int           `yaml:"pending_enrichment"`
	DuplicateWindow   time.Duration `yaml:"duplicate_window"`
	FlushTimeout      time.Duration `yaml:"flush_timeout"`
	ErrorReporting    *bool         `yaml:"error_reporting"`
	Tracing           bool          `yaml:"tracing"`
}

// Load applies env files, the YAML file and environment variables, in that order.
// Environment variables that are already set are never overwritten by env files.
func (c *Config) Load() error {
	for _, fileName := range c.envFiles() {
		c.loadEnvFile(fileName)
	}

	if path := c.yamlFile(); path != "" {
		f, err := LoadFile(path)
		if err != nil {
			return err
		}
		c.applyFile(f)
		c.Logger().Debug().Str("method", "Load").Str("fileName", path).Msg("loaded.")
	}

	return c.applyEnv()
}

// LoadFile reads a YAML reporting config.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "couldn't read config file %s", path)
	}
	var f File
	if err = yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrapf(err, "couldn't parse config file %s", path)
	}
	return &f, nil
}

func (c *Config) loadEnvFile(fileName string) {
	file, err := os.Open(fileName)
	if err != nil {
		c.Logger().Debug().Str("method", "loadEnvFile").Msg("Couldn't load " + fileName)
		return
	}
	defer file.Close()
	env := gotenv.Parse(file)
	for k, v := range env {
		if _, exists := os.LookupEnv(k); exists {
			continue
		}
		if err := os.Setenv(k, v); err != nil {
			c.Logger().Warn().Str("method", "loadEnvFile").Msg("Couldn't set environment variable " + k)
		}
	}
	c.Logger().Debug().Str("fileName", fileName).Msg("loaded.")
}

// The order of the files is important - first file variable definitions win!
func (c *Config) envFiles() []string {
	files := []string{envFileName}
	if home, err := os.UserHomeDir(); err == nil {
		files = append(files, filepath.Join(home, envFileName))
	}
	return files
}

func (c *Config) yamlFile() string {
	if configFile := c.ConfigFile(); configFile != "" {
		return configFile
	}
	path, err := xdg.SearchConfigFile(yamlConfigPath)
	if err != nil {
		return ""
	}
	return path
}

func (c *Config) applyFile(f *File) {
	c.m.Lock()
	if f.Dsn != "" {
		c.reporting.DSN = f.Dsn
	}
	if f.Debug != nil {
		c.reporting.Debug = *f.Debug
	}
	if f.Release != "" {
		c.reporting.Release = f.Release
	}
	c.reporting.SampleRate = f.SampleRate
	c.reporting.TracesSampleRate = f.TracesSampleRate
	c.reporting.AttachDeviceID = f.AttachDeviceId
	if f.SdkUrl != "" {
		c.sdkUrl = f.SdkUrl
	}
	if f.UserAgent != "" {
		c.userAgent = f.UserAgent
	}
	if f.LegacyFloor != "" {
		c.legacyFloor = f.LegacyFloor
	}
	c.pendingEnrichment = f.PendingEnrichment
	c.duplicateWindow = f.DuplicateWindow
	if f.FlushTimeout > 0 {
		c.flushTimeout = f.FlushTimeout
	}
	c.m.Unlock()

	if f.Environment != "" {
		if env, err := er.ParseEnvironment(f.Environment); err == nil {
			c.SetEnvironment(env)
		} else {
			c.Logger().Warn().Err(err).Str("method", "applyFile").Msg("ignoring environment")
		}
	}
	if f.ErrorReporting != nil {
		c.SetErrorReportingEnabled(*f.ErrorReporting)
	}
	c.SetTracingEnabled(f.Tracing)
}

func (c *Config) applyEnv() error {
	if dsn := os.Getenv(DsnKey); dsn != "" {
		c.SetDsn(dsn)
	}
	if environment := os.Getenv(EnvironmentKey); environment != "" {
		env, err := er.ParseEnvironment(environment)
		if err != nil {
			return errors.Wrap(err, EnvironmentKey)
		}
		c.SetEnvironment(env)
	}
	if debug := os.Getenv(DebugKey); debug != "" {
		parsed, err := strconv.ParseBool(debug)
		if err != nil {
			return errors.Wrap(err, DebugKey)
		}
		c.SetDebug(parsed)
	}
	if release := os.Getenv(ReleaseKey); release != "" {
		c.SetRelease(release)
	}
	if sdkUrl := os.Getenv(SdkUrlKey); sdkUrl != "" {
		c.SetSdkUrl(sdkUrl)
	}
	if userAgent := os.Getenv(UserAgentKey); userAgent != "" {
		c.SetUserAgent(userAgent)
	}
	return nil
}
