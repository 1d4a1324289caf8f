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
	"context"
	"time"
)

// ReadyFunc is called once the client for a given initialization is bound.
type ReadyFunc func()

type ErrorReporter interface {
	EnsureClient(ctx context.Context, cfg ReportingConfig, onReady ReadyFunc) Result
	Initialize(cfg ReportingConfig, onReady ReadyFunc) Result
	Ready() <-chan struct{}
	IsReady() bool
	EnrichScope(tags []Tag, user *User) Result
	ReportException(title string, extra any, opts ExceptionOptions) Result
	ReportMessage(opts MessageOptions) Result
	ShowFeedbackDialog(eventID string) Result
	Flush(timeout time.Duration) bool
}
