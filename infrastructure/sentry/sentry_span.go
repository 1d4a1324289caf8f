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

type span struct {
	span      *sentry.Span
	hub       *sentry.Hub
	txName    string
	operation string
	ctx       context.Context
}

func (s *span) GetTxName() string {
	return s.txName
}

func (s *span) GetOperation() string {
	return s.operation
}

func (s *span) GetTraceId() string {
	id, _ := performance.GetTraceId(s.Context())
	return id
}

func (s *span) Context() context.Context {
	if s.ctx == nil {
		return context.Background()
	}
	return s.ctx
}

func (s *span) StartSpan(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	var options []sentry.SpanOption
	if s.txName != "" {
		options = append(options, sentry.TransactionName(s.txName))
	}
	ctx = sentry.SetHubOnContext(ctx, s.hub)
	s.span = sentry.StartSpan(ctx, s.operation, options...)
	s.ctx = performance.GetContextWithTraceId(s.span.Context(), s.span.TraceID.String())
}

func (s *span) Finish() {
	if s.span != nil {
		s.span.Finish()
	}
}

func (s *span) SetTransactionName(name string) {
	if name != "" && s.txName == "" {
		s.txName = name
	}
}
