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

	"github.com/getsentry/sentry-go"

	"github.com/beyondverage0908/nanjin-common/domain/observability/performance"
)

// An instrumentor that only records sentry spans while tracing is enabled
type gdprAwareSentryInstrumentor struct {
	hub     *sentry.Hub
	enabled func() bool
}

func NewInstrumentor(hub *sentry.Hub, enabled func() bool) performance.Instrumentor {
	return &gdprAwareSentryInstrumentor{hub: hub, enabled: enabled}
}

func (i *gdprAwareSentryInstrumentor) Finish(span performance.Span) {
	span.Finish()
}

func (i *gdprAwareSentryInstrumentor) StartSpan(ctx context.Context, operation string) performance.Span {
	s := i.CreateSpan("", operation)
	s.StartSpan(ctx)
	return s
}

func (i *gdprAwareSentryInstrumentor) NewTransaction(ctx context.Context, txName string, operation string) performance.Span {
	s := i.CreateSpan(txName, operation)
	s.StartSpan(ctx)
	return s
}

func (i *gdprAwareSentryInstrumentor) CreateSpan(txName string, operation string) performance.Span {
	var s performance.Span
	if i.enabled != nil && i.enabled() {
		s = &span{operation: operation, hub: i.hub}
	} else {
		s = &performance.NoopSpan{Operation: operation}
	}
	s.SetTransactionName(txName)
	return s
}
