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

package httpclient

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

// NewHTTPClient returns a client honoring the proxy environment for target. It has no timeout;
// callers cancel through the request context.
func NewHTTPClient(target string, logger *zerolog.Logger) *http.Client {
	tr := http.DefaultTransport.(*http.Transport).Clone()
	method := "NewHTTPClient"
	client := &http.Client{Transport: tr}
	req, err := http.NewRequest(http.MethodGet, target, nil)
	if err != nil {
		logger.Err(err).Str("method", method).Send()
		return client
	}
	proxy, err := tr.Proxy(req)
	if err != nil {
		logger.Err(err).Str("method", method).Send()
	}
	if proxy != nil {
		logger.Info().Str("method", method).Str("proxy", maskProxy(proxy.String())).Msg("created http client with proxy support")
	}
	return client
}

func maskProxy(proxy string) string {
	proxySplit := strings.Split(proxy, "@")
	if len(proxySplit) > 1 {
		scheme := ""
		if idx := strings.Index(proxySplit[0], "://"); idx >= 0 {
			scheme = proxySplit[0][:idx+3]
		}
		return scheme + "xxx@" + proxySplit[len(proxySplit)-1]
	}
	return proxy
}
