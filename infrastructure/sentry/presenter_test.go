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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/beyondverage0908/nanjin-common/internal/testutil"
)

func TestBrowserPresenter_OpensDialogUrl(t *testing.T) {
	var opened string
	p := &BrowserPresenter{open: func(url string) error {
		opened = url
		return nil
	}}

	err := p.Present(FeedbackDialog{URL: "https://example.com/form"})

	assert.NoError(t, err)
	assert.Equal(t, "https://example.com/form", opened)
}

func TestClipboardPresenter_PropagatesErrors(t *testing.T) {
	p := &ClipboardPresenter{write: func(string) error { return errors.New("no clipboard") }}

	assert.Error(t, p.Present(FeedbackDialog{URL: "https://example.com/form"}))
}

func TestLogPresenter(t *testing.T) {
	c := testutil.UnitTest(t)

	assert.NoError(t, NewLogPresenter(c.Logger()).Present(FeedbackDialog{EventId: "e1", Labels: DefaultFeedbackLabels}))
}
