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
	"github.com/atotto/clipboard"
	"github.com/pkg/browser"
	"github.com/rs/zerolog"
)

// Presenter shows a feedback dialog to the user.
type Presenter interface {
	Present(dialog FeedbackDialog) error
}

type LogPresenter struct {
	logger *zerolog.Logger
}

func NewLogPresenter(logger *zerolog.Logger) *LogPresenter {
	return &LogPresenter{logger: logger}
}

func (p *LogPresenter) Present(dialog FeedbackDialog) error {
	p.logger.Info().
		Str("method", "Present").
		Str("eventId", dialog.EventId).
		Str("url", dialog.URL).
		Msg(dialog.Labels.Title)
	return nil
}

// BrowserPresenter opens the dialog url in the default browser.
type BrowserPresenter struct {
	open func(url string) error
}

func NewBrowserPresenter() *BrowserPresenter {
	return &BrowserPresenter{open: browser.OpenURL}
}

func (p *BrowserPresenter) Present(dialog FeedbackDialog) error {
	return p.open(dialog.URL)
}

// ClipboardPresenter copies the dialog url, for terminals without a browser.
type ClipboardPresenter struct {
	write func(text string) error
}

func NewClipboardPresenter() *ClipboardPresenter {
	return &ClipboardPresenter{write: clipboard.WriteAll}
}

func (p *ClipboardPresenter) Present(dialog FeedbackDialog) error {
	return p.write(dialog.URL)
}
