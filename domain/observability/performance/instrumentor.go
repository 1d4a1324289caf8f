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

package performance

import "context"

type Span interface {
	StartSpan(ctx context.Context)
	Finish()
	SetTransactionName(name string)
	GetOperation() string
	GetTxName() string
	GetTraceId() string
	Context() context.Context
}

type Instrumentor interface {
	StartSpan(ctx context.Context, operation string) Span
	NewTransaction(ctx context.Context, txName string, operation string) Span
	Finish(span Span)
}

type noopInstrumentor struct{}

// NewNoopInstrumentor hands out spans that only carry a trace id.
func NewNoopInstrumentor() Instrumentor { return noopInstrumentor{} }

func (noopInstrumentor) StartSpan(ctx context.Context, operation string) Span {
	s := &NoopSpan{Operation: operation}
	s.StartSpan(ctx)
	return s
}

func (noopInstrumentor) NewTransaction(ctx context.Context, txName string, operation string) Span {
	s := &NoopSpan{Operation: operation, TxName: txName}
	s.StartSpan(ctx)
	return s
}

func (noopInstrumentor) Finish(span Span) { span.Finish() }
