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

package sentry

import (
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"

	er "github.com/beyondverage0908/nanjin-common/domain/observability/error_reporting"
	"github.com/beyondverage0908/nanjin-common/internal/testutil"
)

func Test_Sentry_Environment(t *testing.T) {
	assert.Equal(t, "Prod", sentryEnvironment(""))
	assert.Equal(t, "Dev", sentryEnvironment(er.EnvironmentDev))
	assert.Equal(t, "Test", sentryEnvironment(er.EnvironmentTest))
}

func Test_Sentry_Level(t *testing.T) {
	assert.Equal(t, sentry.LevelError, sentryLevel(""))
	assert.Equal(t, sentry.LevelError, sentryLevel(er.SeverityError))
	assert.Equal(t, sentry.LevelFatal, sentryLevel(er.SeverityFatal))
	assert.Equal(t, sentry.LevelWarning, sentryLevel(er.SeverityWarning))
	assert.Equal(t, sentry.LevelInfo, sentryLevel(er.SeverityInfo))
	assert.Equal(t, sentry.LevelDebug, sentryLevel(er.SeverityDebug))
}

func Test_Sentry_BeforeSend(t *testing.T) {
	c := testutil.UnitTest(t)
	enabled := true
	g := NewGateway(WithLogger(c.Logger()), WithConsent(func() bool { return enabled }))
	testEvent := sentry.NewEvent()

	result := g.beforeSendHook(testEvent, nil)
	assert.Equal(t, testEvent, result)

	g.SetBeforeSend(func(event *sentry.Event) *sentry.Event { return nil })
	result = g.beforeSendHook(testEvent, nil)
	assert.Equal(t, (*sentry.Event)(nil), result)

	g.SetBeforeSend(nil)
	enabled = false
	result = g.beforeSendHook(testEvent, nil)
	assert.Equal(t, (*sentry.Event)(nil), result)
}

func Test_Sentry_ClientOptions(t *testing.T) {
	c := testutil.UnitTest(t)
	transport := testutil.NewRecordingTransport()
	g := NewGateway(WithLogger(c.Logger()), WithTransport(transport))

	options := g.clientOptions(er.ReportingConfig{
		DSN:              testutil.TestDsn,
		Environment:      er.EnvironmentDev,
		Release:          "1.2.3",
		SampleRate:       0.5,
		TracesSampleRate: 0.1,
	})

	assert.Equal(t, testutil.TestDsn, options.Dsn)
	assert.Equal(t, "Dev", options.Environment)
	assert.Equal(t, "1.2.3", options.Release)
	assert.Equal(t, 0.5, options.SampleRate)
	assert.True(t, options.EnableTracing)
	assert.True(t, options.AttachStacktrace)
	assert.Equal(t, transport, options.Transport)
}

func Test_Remark(t *testing.T) {
	assert.Equal(t, "", remark(nil))
	assert.Equal(t, "Y", remark("Y"))
	assert.Equal(t, 42, remark(42))
}
