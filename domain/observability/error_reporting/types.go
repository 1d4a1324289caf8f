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
	"fmt"
	"strings"
)

type Environment string

const (
	EnvironmentDev  Environment = "Dev"
	EnvironmentTest Environment = "Test"
	EnvironmentProd Environment = "Prod"
)

// ParseEnvironment is case-insensitive and maps an empty value to Prod.
func ParseEnvironment(s string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return EnvironmentProd, nil
	case "dev", "development":
		return EnvironmentDev, nil
	case "test":
		return EnvironmentTest, nil
	case "prod", "production":
		return EnvironmentProd, nil
	}
	return "", fmt.Errorf("unknown environment %q, expected one of Dev, Test, Prod", s)
}

func (e Environment) OrDefault() Environment {
	if e == "" {
		return EnvironmentProd
	}
	return e
}

type Severity string

const (
	SeverityFatal   Severity = "fatal"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
	SeverityDebug   Severity = "debug"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityFatal, SeverityError, SeverityWarning, SeverityInfo, SeverityDebug:
		return true
	}
	return false
}

// ReportingConfig is passed by value and never modified after initialization.
type ReportingConfig struct {
	DSN         string
	Environment Environment
	Debug       bool

	Release          string
	SampleRate       float64
	TracesSampleRate float64
	// AttachDeviceID sets the machine id as the scope user when no user was enriched yet.
	AttachDeviceID bool
}

type Tag struct {
	Key   string
	Value string
}

// User is an opaque identity record attached to the reporting scope.
type User struct {
	ID        string
	Email     string
	Username  string
	IPAddress string
	Data      map[string]string
}

// ScopeEnrichment is applied to the global scope, last write wins per tag key.
type ScopeEnrichment struct {
	Tags []Tag
	User *User
}

type ExceptionOptions struct {
	Fingerprint []string
	User        *User
	// Level defaults to SeverityError.
	Level Severity
}

type MessageOptions struct {
	Title       string
	Extra       any
	Level       Severity
	Fingerprint []string
	User        *User
}
