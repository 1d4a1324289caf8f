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

package testutil

import (
	"os"
	"runtime"
	"testing"

	"github.com/rs/zerolog"

	"github.com/beyondverage0908/nanjin-common/application/config"
)

const (
	TestDsn         = "https://public@o0.ingest.sentry.io/42"
	integTestEnvVar = "INTEG_TESTS"
)

func IntegTest(t *testing.T) *config.Config {
	t.Helper()
	if os.Getenv(integTestEnvVar) == "" {
		t.Logf("%s is not set", integTestEnvVar)
		t.SkipNow()
	}
	return UnitTest(t)
}

// UnitTest installs a fresh config with a test dsn that logs through the test's output.
func UnitTest(t *testing.T) *config.Config {
	t.Helper()
	c := config.New()
	c.SetDsn(TestDsn)
	logger := zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)
	c.SetLogger(&logger)
	config.SetCurrentConfig(c)
	t.Cleanup(func() {
		config.SetCurrentConfig(nil)
	})
	return c
}

func NotOnWindows(t *testing.T, reason string) {
	t.Helper()
	if //goland:noinspection GoBoolExpressions
	runtime.GOOS == "windows" {
		t.Skipf("Not on windows, because %s", reason)
	}
}
