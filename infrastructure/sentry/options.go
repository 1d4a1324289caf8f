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
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"

	"github.com/beyondverage0908/nanjin-common/domain/observability/performance"
)

type Option func(g *Gateway)

func WithLoader(loader Loader) Option {
	return func(g *Gateway) { g.loader = loader }
}

// WithSDKPresent marks the sdk as available so EnsureClient initializes without loading.
func WithSDKPresent() Option {
	return func(g *Gateway) { g.sdkPresent.Set(true) }
}

func WithUserAgent(userAgent string) Option {
	return func(g *Gateway) { g.userAgent = userAgent }
}

func WithLegacyFloor(floor string) Option {
	return func(g *Gateway) { g.legacyFloor = floor }
}

func WithTransport(transport sentry.Transport) Option {
	return func(g *Gateway) { g.transport = transport }
}

func WithLogger(logger *zerolog.Logger) Option {
	return func(g *Gateway) {
		if logger != nil {
			g.logger = logger
		}
	}
}

func WithPresenter(presenter Presenter) Option {
	return func(g *Gateway) { g.presenter = presenter }
}

func WithInstrumentor(instrumentor performance.Instrumentor) Option {
	return func(g *Gateway) { g.instrumentor = instrumentor }
}

// WithTracing replaces the instrumentor with one that records sentry spans on the gateway hub
// while enabled returns true.
func WithTracing(enabled func() bool) Option {
	return func(g *Gateway) { g.instrumentor = NewInstrumentor(g.hub, enabled) }
}

// WithConsent drops every outbound event while consent returns false.
func WithConsent(consent func() bool) Option {
	return func(g *Gateway) { g.consent = consent }
}

func WithDeviceId(deviceId func() string) Option {
	return func(g *Gateway) { g.deviceId = deviceId }
}

// WithPendingEnrichment keeps up to limit scope enrichments issued before the client is ready
// and applies them on ready. Without it, such enrichments are dropped.
func WithPendingEnrichment(limit int) Option {
	return func(g *Gateway) { g.pendingLimit = limit }
}

// WithDuplicateWindow reports identical exceptions only once per window.
func WithDuplicateWindow(window time.Duration) Option {
	return func(g *Gateway) {
		if window > 0 {
			g.duplicates = newDuplicateFilter(window)
		}
	}
}
