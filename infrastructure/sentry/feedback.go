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
	"net/url"
	"strings"

	"github.com/pkg/errors"

	er "github.com/beyondverage0908/nanjin-common/domain/observability/error_reporting"
)

var ErrNoEventId = errors.New("no event id given and no event was captured yet")

type FeedbackLabels struct {
	Title          string
	Subtitle       string
	Subtitle2      string
	Name           string
	Email          string
	Comments       string
	Close          string
	Submit         string
	ErrorGeneric   string
	ErrorFormEntry string
	SuccessMessage string
}

var DefaultFeedbackLabels = FeedbackLabels{
	Title:          "用户反馈收集",
	Name:           "姓名",
	Email:          "邮箱",
	Comments:       "反馈内容",
	Close:          "关闭",
	Submit:         "提交",
	ErrorGeneric:   "网络异常，请重试！",
	ErrorFormEntry: "为了更好地帮助您解决问题，请正确填写反馈内容。",
	SuccessMessage: "您的反馈已发送。谢谢！",
}

const feedbackLang = "zh"

// FeedbackDialog describes the user feedback form for one event. URL points at the
// error page embed of the sentry instance behind the dsn.
type FeedbackDialog struct {
	EventId string
	Lang    string
	Labels  FeedbackLabels
	URL     string
}

func NewFeedbackDialog(dsn string, eventId string) (FeedbackDialog, error) {
	if eventId == "" {
		return FeedbackDialog{}, ErrNoEventId
	}
	endpoint, err := errorPageEndpoint(dsn)
	if err != nil {
		return FeedbackDialog{}, err
	}
	dialog := FeedbackDialog{EventId: eventId, Lang: feedbackLang, Labels: DefaultFeedbackLabels}

	query := url.Values{}
	query.Set("dsn", dsn)
	query.Set("eventId", eventId)
	query.Set("lang", dialog.Lang)
	for key, value := range map[string]string{
		"title":          dialog.Labels.Title,
		"subtitle":       dialog.Labels.Subtitle,
		"subtitle2":      dialog.Labels.Subtitle2,
		"labelName":      dialog.Labels.Name,
		"labelEmail":     dialog.Labels.Email,
		"labelComments":  dialog.Labels.Comments,
		"labelClose":     dialog.Labels.Close,
		"labelSubmit":    dialog.Labels.Submit,
		"errorGeneric":   dialog.Labels.ErrorGeneric,
		"errorFormEntry": dialog.Labels.ErrorFormEntry,
		"successMessage": dialog.Labels.SuccessMessage,
	} {
		if value != "" {
			query.Set(key, value)
		}
	}
	endpoint.RawQuery = query.Encode()
	dialog.URL = endpoint.String()
	return dialog, nil
}

// errorPageEndpoint maps scheme://key@host[:port][/path]/project to scheme://host[:port][/path]/api/embed/error-page/.
func errorPageEndpoint(dsn string) (*url.URL, error) {
	parsed, err := url.Parse(dsn)
	if err != nil {
		return nil, errors.Wrap(err, "invalid dsn")
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, errors.Errorf("invalid dsn %q", dsn)
	}
	path := strings.TrimSuffix(parsed.Path, "/")
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		path = path[:idx]
	}
	return &url.URL{
		Scheme: parsed.Scheme,
		Host:   parsed.Host,
		Path:   path + "/api/embed/error-page/",
	}, nil
}

// ShowFeedbackDialog presents the feedback form for eventId, or for the last captured event when empty.
func (g *Gateway) ShowFeedbackDialog(eventId string) (result er.Result) {
	defer g.recoverInto("ShowFeedbackDialog", &result)
	if !g.ready.Get() {
		return er.Fail(er.StatusSDKUnavailable, ErrNotReady)
	}
	if eventId == "" {
		eventId = string(g.hub.LastEventID())
	}
	g.mu.Lock()
	dsn := g.cfg.DSN
	g.mu.Unlock()

	dialog, err := NewFeedbackDialog(dsn, eventId)
	if err != nil {
		return er.Fail(er.StatusInvalidInput, err)
	}
	if err = g.presenter.Present(dialog); err != nil {
		g.logger.Warn().Err(err).Str("method", "ShowFeedbackDialog").Msg("couldn't present feedback dialog")
		return er.Fail(er.StatusDeliveryFailed, err)
	}
	return er.Ok(eventId)
}
