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
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

var _ ErrorReporter = (*TestErrorReporter)(nil)

type CapturedException struct {
	Title string
	Extra any
	Opts  ExceptionOptions
}

// TestErrorReporter is always ready and records everything it is asked to report.
type TestErrorReporter struct {
	mu         sync.Mutex
	ready      chan struct{}
	tags       map[string]string
	user       *User
	exceptions []CapturedException
	messages   []MessageOptions
	dialogs    []string
}

func NewTestErrorReporter() *TestErrorReporter {
	ready := make(chan struct{})
	close(ready)
	return &TestErrorReporter{ready: ready, tags: map[string]string{}}
}

func (s *TestErrorReporter) EnsureClient(_ context.Context, cfg ReportingConfig, onReady ReadyFunc) Result {
	return s.Initialize(cfg, onReady)
}

func (s *TestErrorReporter) Initialize(_ ReportingConfig, onReady ReadyFunc) Result {
	if onReady != nil {
		onReady()
	}
	return Ok("")
}

func (s *TestErrorReporter) Ready() <-chan struct{} { return s.ready }
func (s *TestErrorReporter) IsReady() bool          { return true }

func (s *TestErrorReporter) EnrichScope(tags []Tag, user *User) Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range tags {
		s.tags[t.Key] = t.Value
	}
	if user != nil {
		s.user = user
	}
	return Ok("")
}

func (s *TestErrorReporter) ReportException(title string, extra any, opts ExceptionOptions) Result {
	log.Log().Str("title", title).Msg("An exception has been captured by the testing error reporter")
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exceptions = append(s.exceptions, CapturedException{Title: title, Extra: extra, Opts: opts})
	return Ok("")
}

func (s *TestErrorReporter) ReportMessage(opts MessageOptions) Result {
	log.Log().Str("title", opts.Title).Msg("A message has been captured by the testing error reporter")
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, opts)
	return Ok("")
}

func (s *TestErrorReporter) ShowFeedbackDialog(eventID string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialogs = append(s.dialogs, eventID)
	return Ok(eventID)
}

func (s *TestErrorReporter) Flush(time.Duration) bool { return true }

func (s *TestErrorReporter) Exceptions() []CapturedException {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]CapturedException(nil), s.exceptions...)
}

func (s *TestErrorReporter) Messages() []MessageOptions {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]MessageOptions(nil), s.messages...)
}

func (s *TestErrorReporter) Tags() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	tags := make(map[string]string, len(s.tags))
	for k, v := range s.tags {
		tags[k] = v
	}
	return tags
}

func (s *TestErrorReporter) DialogEventIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.dialogs...)
}
