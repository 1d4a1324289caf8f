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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	er "github.com/beyondverage0908/nanjin-common/domain/observability/error_reporting"
)

const testDsn = "https://public@o0.ingest.sentry.io/42"

func TestNew_Defaults(t *testing.T) {
	c := New()
	assert.Equal(t, er.EnvironmentProd, c.Reporting().Environment)
	assert.Equal(t, DefaultSdkUrl, c.SdkUrl())
	assert.Equal(t, DefaultLegacyFloor, c.LegacyFloor())
	assert.True(t, c.IsErrorReportingEnabled())
	assert.False(t, c.IsTracingEnabled())
	assert.NotNil(t, c.Logger())
}

func TestSetEnvironment_EmptyMeansProd(t *testing.T) {
	c := New()
	c.SetEnvironment(er.EnvironmentDev)
	assert.Equal(t, er.EnvironmentDev, c.Reporting().Environment)
	c.SetEnvironment("")
	assert.Equal(t, er.EnvironmentProd, c.Reporting().Environment)
}

func TestValidate(t *testing.T) {
	c := New()
	assert.ErrorIs(t, c.Validate(), ErrMissingDsn)

	c.SetDsn("not a dsn")
	assert.Error(t, c.Validate())

	c.SetDsn(testDsn)
	assert.NoError(t, c.Validate())

	c.SetLegacyFloor("8.5")
	assert.NoError(t, c.Validate())

	c.SetLegacyFloor("nine")
	assert.ErrorIs(t, c.Validate(), ErrInvalidFloor)
}

func TestLoad_YamlFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reporting.yaml")
	content := `
dsn: ` + testDsn + `
environment: test
debug: true
legacy_floor: "10"
pending_enrichment: 5
duplicate_window: 30s
error_reporting: false
tracing: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	c := New()
	c.SetConfigFile(path)
	require.NoError(t, c.Load())

	reporting := c.Reporting()
	assert.Equal(t, testDsn, reporting.DSN)
	assert.Equal(t, er.EnvironmentTest, reporting.Environment)
	assert.True(t, reporting.Debug)
	assert.Equal(t, "10", c.LegacyFloor())
	assert.Equal(t, 5, c.PendingEnrichment())
	assert.Equal(t, 30*time.Second, c.DuplicateWindow())
	assert.False(t, c.IsErrorReportingEnabled())
	assert.True(t, c.IsTracingEnabled())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reporting.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dsn: "+testDsn+"\nenvironment: test\n"), 0o600))
	t.Setenv(EnvironmentKey, "dev")
	t.Setenv(DebugKey, "true")

	c := New()
	c.SetConfigFile(path)
	require.NoError(t, c.Load())

	assert.Equal(t, er.EnvironmentDev, c.Reporting().Environment)
	assert.True(t, c.Reporting().Debug)
}

func TestLoad_InvalidEnvironmentVariable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reporting.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dsn: "+testDsn+"\n"), 0o600))
	t.Setenv(EnvironmentKey, "staging")

	c := New()
	c.SetConfigFile(path)
	assert.Error(t, c.Load())
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	c := New()
	c.SetConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, c.Load())
}

func TestLoadEnvFile_DoesNotOverrideExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".nanjin.env")
	require.NoError(t, os.WriteFile(path, []byte(DsnKey+"=from-file\n"+ReleaseKey+"=1.2.3\n"), 0o600))
	t.Setenv(DsnKey, testDsn)
	t.Setenv(ReleaseKey, "")
	require.NoError(t, os.Unsetenv(ReleaseKey))

	c := New()
	c.loadEnvFile(path)

	assert.Equal(t, testDsn, os.Getenv(DsnKey))
	assert.Equal(t, "1.2.3", os.Getenv(ReleaseKey))
}

func TestConfigureLogging(t *testing.T) {
	c := New()
	c.SetLogPath(filepath.Join(t.TempDir(), "nanjin.log"))
	c.ConfigureLogging("debug")
	t.Cleanup(c.DisableLoggingToFile)

	assert.Equal(t, "debug", c.Logger().GetLevel().String())

	c.ConfigureLogging("not-a-level")
	assert.Equal(t, "info", c.Logger().GetLevel().String())
}

func TestDeviceId_IsStable(t *testing.T) {
	c := New()
	first := c.DeviceId()
	assert.NotEmpty(t, first)
	assert.Equal(t, first, c.DeviceId())
}
