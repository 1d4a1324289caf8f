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
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/denisbrodbeck/machineid"
	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/hashicorp/go-version"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	er "github.com/beyondverage0908/nanjin-common/domain/observability/error_reporting"
	"github.com/beyondverage0908/nanjin-common/internal/concurrency"
)

const (
	DsnKey               = "NANJIN_SENTRY_DSN"
	EnvironmentKey       = "NANJIN_SENTRY_ENVIRONMENT"
	DebugKey             = "NANJIN_SENTRY_DEBUG"
	ReleaseKey           = "NANJIN_SENTRY_RELEASE"
	SdkUrlKey            = "NANJIN_SENTRY_SDK_URL"
	UserAgentKey         = "NANJIN_USER_AGENT"
	LogLevelKey          = "NANJIN_LOG_LEVEL"
	DefaultSdkUrl        = "https://premiumcdn.eastmoney.com/common/js/sentry/sentry.5.15.4.min.js"
	DefaultLegacyFloor   = "9"
	applicationId        = "nanjin-common"
	defaultFlushDuration = 2 * time.Second
)

var (
	Version       = "SNAPSHOT"
	Development   = "false"
	currentConfig *Config
	mutex         = &sync.Mutex{}
)

var (
	ErrMissingDsn   = errors.New("no dsn configured")
	ErrInvalidFloor = errors.New("legacy floor must be a version number")
)

type Config struct {
	m                       sync.RWMutex
	reporting               er.ReportingConfig
	configFile              string
	sdkUrl                  string
	userAgent               string
	legacyFloor             string
	pendingEnrichment       int
	duplicateWindow         time.Duration
	flushTimeout            time.Duration
	isErrorReportingEnabled concurrency.AtomicBool
	isTracingEnabled        concurrency.AtomicBool
	logPath                 string
	logFile                 *os.File
	logger                  *zerolog.Logger
	deviceId                string
}

func CurrentConfig() *Config {
	mutex.Lock()
	defer mutex.Unlock()
	if currentConfig == nil {
		currentConfig = New()
	}
	return currentConfig
}

func SetCurrentConfig(config *Config) {
	mutex.Lock()
	defer mutex.Unlock()
	currentConfig = config
}

func IsDevelopment() bool {
	parseBool, _ := strconv.ParseBool(Development)
	return parseBool
}

func New() *Config {
	c := &Config{}
	c.reporting = er.ReportingConfig{
		Environment: er.EnvironmentProd,
		Debug:       IsDevelopment(),
		Release:     Version,
	}
	c.sdkUrl = DefaultSdkUrl
	c.legacyFloor = DefaultLegacyFloor
	c.flushTimeout = defaultFlushDuration
	c.isErrorReportingEnabled.Set(true)
	logger := zerolog.New(c.getConsoleWriter(os.Stderr)).With().Timestamp().Logger().Level(zerolog.InfoLevel)
	c.logger = &logger
	return c
}

func (c *Config) Reporting() er.ReportingConfig {
	c.m.RLock()
	defer c.m.RUnlock()
	return c.reporting
}

func (c *Config) SetDsn(dsn string) {
	c.m.Lock()
	defer c.m.Unlock()
	c.reporting.DSN = dsn
}

func (c *Config) SetEnvironment(environment er.Environment) {
	c.m.Lock()
	defer c.m.Unlock()
	c.reporting.Environment = environment.OrDefault()
}

func (c *Config) SetDebug(debug bool) {
	c.m.Lock()
	defer c.m.Unlock()
	c.reporting.Debug = debug
}

func (c *Config) SetRelease(release string) {
	c.m.Lock()
	defer c.m.Unlock()
	c.reporting.Release = release
}

func (c *Config) SetSampleRates(sampleRate, tracesSampleRate float64) {
	c.m.Lock()
	defer c.m.Unlock()
	c.reporting.SampleRate = sampleRate
	c.reporting.TracesSampleRate = tracesSampleRate
}

func (c *Config) SetAttachDeviceId(attach bool) {
	c.m.Lock()
	defer c.m.Unlock()
	c.reporting.AttachDeviceID = attach
}

func (c *Config) SdkUrl() string {
	c.m.RLock()
	defer c.m.RUnlock()
	return c.sdkUrl
}

func (c *Config) SetSdkUrl(sdkUrl string) {
	c.m.Lock()
	defer c.m.Unlock()
	c.sdkUrl = sdkUrl
}

func (c *Config) UserAgent() string {
	c.m.RLock()
	defer c.m.RUnlock()
	return c.userAgent
}

func (c *Config) SetUserAgent(userAgent string) {
	c.m.Lock()
	defer c.m.Unlock()
	c.userAgent = userAgent
}

func (c *Config) LegacyFloor() string {
	c.m.RLock()
	defer c.m.RUnlock()
	return c.legacyFloor
}

func (c *Config) SetLegacyFloor(floor string) {
	c.m.Lock()
	defer c.m.Unlock()
	c.legacyFloor = floor
}

func (c *Config) PendingEnrichment() int {
	c.m.RLock()
	defer c.m.RUnlock()
	return c.pendingEnrichment
}

func (c *Config) SetPendingEnrichment(n int) {
	c.m.Lock()
	defer c.m.Unlock()
	c.pendingEnrichment = n
}

func (c *Config) DuplicateWindow() time.Duration {
	c.m.RLock()
	defer c.m.RUnlock()
	return c.duplicateWindow
}

func (c *Config) SetDuplicateWindow(window time.Duration) {
	c.m.Lock()
	defer c.m.Unlock()
	c.duplicateWindow = window
}

func (c *Config) FlushTimeout() time.Duration {
	c.m.RLock()
	defer c.m.RUnlock()
	return c.flushTimeout
}

func (c *Config) ConfigFile() string {
	c.m.RLock()
	defer c.m.RUnlock()
	return c.configFile
}

func (c *Config) SetConfigFile(configFile string) {
	c.m.Lock()
	defer c.m.Unlock()
	c.configFile = configFile
}

func (c *Config) IsErrorReportingEnabled() bool { return c.isErrorReportingEnabled.Get() }
func (c *Config) SetErrorReportingEnabled(enabled bool) {
	c.isErrorReportingEnabled.Set(enabled)
}
func (c *Config) IsTracingEnabled() bool         { return c.isTracingEnabled.Get() }
func (c *Config) SetTracingEnabled(enabled bool) { c.isTracingEnabled.Set(enabled) }

func (c *Config) LogPath() string {
	c.m.RLock()
	defer c.m.RUnlock()
	return c.logPath
}

func (c *Config) SetLogPath(logPath string) {
	c.m.Lock()
	defer c.m.Unlock()
	c.logPath = logPath
}

func (c *Config) Logger() *zerolog.Logger {
	c.m.RLock()
	defer c.m.RUnlock()
	return c.logger
}

func (c *Config) SetLogger(logger *zerolog.Logger) {
	c.m.Lock()
	defer c.m.Unlock()
	c.logger = logger
}

// Validate checks the reporting settings the gateway needs before it can initialize.
func (c *Config) Validate() error {
	reporting := c.Reporting()
	if reporting.DSN == "" {
		return ErrMissingDsn
	}
	if _, err := sentry.NewDsn(reporting.DSN); err != nil {
		return errors.Wrap(err, "invalid dsn")
	}
	if _, err := er.ParseEnvironment(string(reporting.Environment)); err != nil {
		return err
	}
	if _, err := version.NewVersion(c.LegacyFloor()); err != nil {
		return errors.Wrap(ErrInvalidFloor, err.Error())
	}
	return nil
}

// DeviceId is stable per machine; it falls back to a random id when the machine id is not readable.
func (c *Config) DeviceId() string {
	c.m.Lock()
	defer c.m.Unlock()
	if c.deviceId != "" {
		return c.deviceId
	}
	id, machineErr := machineid.ProtectedID(applicationId)
	if machineErr != nil {
		c.logger.Err(machineErr).Str("method", "config.DeviceId").Msg("cannot retrieve machine id")
		id = uuid.NewString()
	}
	c.deviceId = id
	return id
}

func (c *Config) ConfigureLogging(level string) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		_, _ = fmt.Fprintln(os.Stderr, "Can't set log level from flag. Setting to default (=info)")
		logLevel = zerolog.InfoLevel
	}
	if envLogLevel := os.Getenv(LogLevelKey); envLogLevel != "" {
		if envLevel, levelErr := zerolog.ParseLevel(envLogLevel); levelErr == nil {
			logLevel = envLevel
		}
	}
	zerolog.TimeFieldFormat = time.RFC3339

	writers := []io.Writer{os.Stderr}
	if logPath := c.LogPath(); logPath != "" {
		file, openErr := os.OpenFile(logPath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
		if openErr != nil {
			_, _ = fmt.Fprintln(os.Stderr, "couldn't open logfile")
		} else {
			writers = append(writers, file)
			c.m.Lock()
			c.logFile = file
			c.m.Unlock()
		}
	}

	logger := zerolog.New(c.getConsoleWriter(zerolog.MultiLevelWriter(writers...))).
		With().Timestamp().Str("method", "").Logger().Level(logLevel)
	c.SetLogger(&logger)
}

// DisableLoggingToFile closes the open log file.
func (c *Config) DisableLoggingToFile() {
	c.m.Lock()
	defer c.m.Unlock()
	c.logPath = ""
	if c.logFile != nil {
		_ = c.logFile.Close()
		c.logFile = nil
	}
}

func (c *Config) getConsoleWriter(writer io.Writer) zerolog.ConsoleWriter {
	return zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = writer
		w.NoColor = true
		w.TimeFormat = time.RFC3339Nano
		w.PartsOrder = []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			"method",
			zerolog.MessageFieldName,
		}
		w.FieldsExclude = []string{"method"}
	})
}
