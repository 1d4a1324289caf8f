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

package error_reporting

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvironment(t *testing.T) {
	tests := []struct {
		in   string
		want Environment
	}{
		{"", EnvironmentProd},
		{"Dev", EnvironmentDev},
		{"development", EnvironmentDev},
		{"TEST", EnvironmentTest},
		{" prod ", EnvironmentProd},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseEnvironment(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseEnvironment("staging")
	assert.Error(t, err)
}

func TestEnvironment_OrDefault(t *testing.T) {
	assert.Equal(t, EnvironmentProd, Environment("").OrDefault())
	assert.Equal(t, EnvironmentTest, EnvironmentTest.OrDefault())
}

func TestSeverity_Valid(t *testing.T) {
	for _, s := range []Severity{SeverityFatal, SeverityError, SeverityWarning, SeverityInfo, SeverityDebug} {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, Severity("").Valid())
	assert.False(t, Severity("critical").Valid())
}

func TestResult_String(t *testing.T) {
	assert.Equal(t, "ok", Ok("").String())
	assert.Equal(t, "ok (event abc)", Ok("abc").String())
	assert.Equal(t, "load failed: boom", Fail(StatusLoadFailed, errors.New("boom")).String())
	assert.True(t, Ok("").OK())
	assert.False(t, Fail(StatusSDKUnavailable, nil).OK())
}

func TestTestErrorReporter_Records(t *testing.T) {
	r := NewTestErrorReporter()
	called := 0
	r.Initialize(ReportingConfig{}, func() { called++ })
	r.EnrichScope([]Tag{{Key: "page", Value: "home"}, {Key: "page", Value: "detail"}}, nil)
	r.ReportException("X", "Y", ExceptionOptions{Fingerprint: []string{"a"}})
	r.ReportMessage(MessageOptions{Title: "T", Level: SeverityWarning})

	assert.Equal(t, 1, called)
	assert.True(t, r.IsReady())
	assert.Equal(t, "detail", r.Tags()["page"])
	require.Len(t, r.Exceptions(), 1)
	assert.Equal(t, []string{"a"}, r.Exceptions()[0].Opts.Fingerprint)
	require.Len(t, r.Messages(), 1)
	assert.Equal(t, SeverityWarning, r.Messages()[0].Level)
}
