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
	"context"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"

	er "github.com/beyondverage0908/nanjin-common/domain/observability/error_reporting"
)

var (
	ErrEmptyTitle      = errors.New("title must not be empty")
	ErrUnknownSeverity = errors.New("unknown severity")
	ErrEventDropped    = errors.New("event was dropped before sending")
)

// EnrichScope sets tags and the user on the global scope. Before the client is ready the call
// is dropped, or queued when the gateway was built WithPendingEnrichment.
func (g *Gateway) EnrichScope(tags []er.Tag, user *er.User) (result er.Result) {
	defer g.recoverInto("EnrichScope", &result)
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.ready.Get() {
		if len(g.pending) < g.pendingLimit {
			g.pending = append(g.pending, er.ScopeEnrichment{Tags: append([]er.Tag(nil), tags...), User: user})
			return er.Result{Status: er.StatusQueued}
		}
		g.logger.Debug().Str("method", "EnrichScope").Msg("client not ready, dropping scope enrichment")
		return er.Fail(er.StatusSDKUnavailable, ErrNotReady)
	}
	g.applyEnrichmentLocked(tags, user)
	return er.Ok("")
}

// applyEnrichmentLocked must be called with g.mu held.
func (g *Gateway) applyEnrichmentLocked(tags []er.Tag, user *er.User) {
	g.hub.ConfigureScope(func(scope *sentry.Scope) {
		for _, tag := range tags {
			if tag.Key == "" {
				continue
			}
			scope.SetTag(tag.Key, tag.Value)
		}
		if user != nil {
			scope.SetUser(sentryUser(*user))
		}
	})
	if user != nil {
		g.userEnriched = true
	}
}

// ReportException captures an exception titled title with extra attached as "remark".
func (g *Gateway) ReportException(title string, extra any, opts er.ExceptionOptions) (result er.Result) {
	defer g.recoverInto("ReportException", &result)
	if !g.ready.Get() {
		return er.Fail(er.StatusSDKUnavailable, ErrNotReady)
	}
	if strings.TrimSpace(title) == "" {
		return er.Fail(er.StatusInvalidInput, ErrEmptyTitle)
	}
	if opts.Level != "" && !opts.Level.Valid() {
		return er.Fail(er.StatusInvalidInput, errors.Wrap(ErrUnknownSeverity, string(opts.Level)))
	}
	duplicateKey := exceptionKey(title, opts.Fingerprint)
	if g.duplicates != nil && g.duplicates.contains(duplicateKey) {
		return er.Result{Status: er.StatusSuppressed}
	}

	span := g.instrumentor.StartSpan(context.Background(), "report.exception")
	defer g.instrumentor.Finish(span)

	var eventId *sentry.EventID
	g.hub.WithScope(func(scope *sentry.Scope) {
		applyEventScope(scope, opts.Fingerprint, opts.User, opts.Level, extra)
		eventId = g.hub.CaptureException(errors.New(title))
	})
	if eventId != nil && g.duplicates != nil {
		g.duplicates.record(duplicateKey)
	}
	return captured(eventId)
}

// ReportMessage captures a message event; the severity defaults to info.
func (g *Gateway) ReportMessage(opts er.MessageOptions) (result er.Result) {
	defer g.recoverInto("ReportMessage", &result)
	if !g.ready.Get() {
		return er.Fail(er.StatusSDKUnavailable, ErrNotReady)
	}
	if strings.TrimSpace(opts.Title) == "" {
		return er.Fail(er.StatusInvalidInput, ErrEmptyTitle)
	}
	if opts.Level != "" && !opts.Level.Valid() {
		return er.Fail(er.StatusInvalidInput, errors.Wrap(ErrUnknownSeverity, string(opts.Level)))
	}

	span := g.instrumentor.StartSpan(context.Background(), "report.message")
	defer g.instrumentor.Finish(span)

	var eventId *sentry.EventID
	g.hub.WithScope(func(scope *sentry.Scope) {
		applyEventScope(scope, opts.Fingerprint, opts.User, opts.Level, opts.Extra)
		eventId = g.hub.CaptureMessage(opts.Title)
	})
	return captured(eventId)
}

func applyEventScope(scope *sentry.Scope, fingerprint []string, user *er.User, level er.Severity, extra any) {
	if len(fingerprint) > 0 {
		scope.SetFingerprint(fingerprint)
	}
	if user != nil {
		scope.SetUser(sentryUser(*user))
	}
	if level != "" {
		scope.SetLevel(sentryLevel(level))
	}
	scope.SetExtra(remarkKey, remark(extra))
}

func captured(eventId *sentry.EventID) er.Result {
	if eventId == nil {
		return er.Fail(er.StatusSuppressed, ErrEventDropped)
	}
	return er.Ok(string(*eventId))
}
