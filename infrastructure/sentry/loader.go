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
	"io"
	"net/http"

	"github.com/pkg/errors"
)

//go:generate go run github.com/golang/mock/mockgen -source=loader.go -destination=mock_sentry/loader_mock.go -package=mock_sentry

// Loader makes the reporting sdk available. It is called at most once per gateway.
type Loader interface {
	Load(ctx context.Context) error
}

// PresentLoader is used when the sdk is linked into the binary.
type PresentLoader struct{}

func (PresentLoader) Load(context.Context) error { return nil }

// ResourceLoader fetches the sdk resource and treats any 2xx answer as "sdk available".
// It sets no timeout of its own; cancel ctx to abort.
type ResourceLoader struct {
	url    string
	client *http.Client
}

func NewResourceLoader(url string, client *http.Client) *ResourceLoader {
	if client == nil {
		client = &http.Client{}
	}
	return &ResourceLoader{url: url, client: client}
}

func (l *ResourceLoader) Load(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return errors.Wrap(err, "couldn't create sdk request")
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "couldn't load sdk from %s", l.url)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("sdk resource %s answered %s", l.url, resp.Status)
	}
	return nil
}
