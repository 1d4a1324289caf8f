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
	"github.com/getsentry/sentry-go"

	er "github.com/beyondverage0908/nanjin-common/domain/observability/error_reporting"
)

const remarkKey = "remark"

func (g *Gateway) clientOptions(cfg er.ReportingConfig) sentry.ClientOptions {
	return sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Environment:      sentryEnvironment(cfg.Environment),
		Release:          cfg.Release,
		Debug:            cfg.Debug,
		DebugWriter:      g.logger,
		SampleRate:       cfg.SampleRate,
		EnableTracing:    cfg.TracesSampleRate > 0,
		TracesSampleRate: cfg.TracesSampleRate,
		AttachStacktrace: true,
		BeforeSend:       g.beforeSendHook,
		Transport:        g.transport,
	}
}

func (g *Gateway) beforeSendHook(event *sentry.Event, _ *sentry.EventHint) (out *sentry.Event) {
	if g.consent != nil && !g.consent() {
		return nil
	}
	g.mu.Lock()
	callback := g.beforeSend
	g.mu.Unlock()
	if callback == nil {
		return event
	}
	defer func() {
		if r := recover(); r != nil {
			g.logger.Error().Str("method", "beforeSend").Msgf("before-send callback panicked: %v", r)
			out = event
		}
	}()
	return callback(event)
}

func sentryEnvironment(environment er.Environment) string {
	return string(environment.OrDefault())
}

func sentryLevel(severity er.Severity) sentry.Level {
	switch severity {
	case er.SeverityFatal:
		return sentry.LevelFatal
	case er.SeverityWarning:
		return sentry.LevelWarning
	case er.SeverityInfo:
		return sentry.LevelInfo
	case er.SeverityDebug:
		return sentry.LevelDebug
	default:
		return sentry.LevelError
	}
}

func sentryUser(user er.User) sentry.User {
	return sentry.User{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		IPAddress: user.IPAddress,
		Data:      user.Data,
	}
}

func remark(extra any) any {
	if extra == nil {
		return ""
	}
	return extra
}
