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

package di

import (
	"sync"

	"github.com/beyondverage0908/nanjin-common/application/config"
	er "github.com/beyondverage0908/nanjin-common/domain/observability/error_reporting"
	"github.com/beyondverage0908/nanjin-common/domain/observability/performance"
	"github.com/beyondverage0908/nanjin-common/infrastructure/sentry"
	"github.com/beyondverage0908/nanjin-common/internal/httpclient"
)

var gateway *sentry.Gateway
var errorReporter er.ErrorReporter
var instrumentor performance.Instrumentor
var presenter sentry.Presenter
var initMutex = &sync.Mutex{}

// Init wires the error reporting stack from the current config. A nil presenter logs feedback dialogs.
func Init(p sentry.Presenter) {
	initMutex.Lock()
	defer initMutex.Unlock()
	presenter = p
	initInfrastructure()
}

func initInfrastructure() {
	c := config.CurrentConfig()
	if presenter == nil {
		presenter = sentry.NewLogPresenter(c.Logger())
	}
	opts := []sentry.Option{
		sentry.WithLogger(c.Logger()),
		sentry.WithPresenter(presenter),
		sentry.WithUserAgent(c.UserAgent()),
		sentry.WithLegacyFloor(c.LegacyFloor()),
		sentry.WithConsent(c.IsErrorReportingEnabled),
		sentry.WithDeviceId(c.DeviceId),
		sentry.WithTracing(c.IsTracingEnabled),
		sentry.WithPendingEnrichment(c.PendingEnrichment()),
		sentry.WithDuplicateWindow(c.DuplicateWindow()),
	}
	if sdkUrl := c.SdkUrl(); sdkUrl != "" {
		opts = append(opts, sentry.WithLoader(sentry.NewResourceLoader(sdkUrl, httpclient.NewHTTPClient(sdkUrl, c.Logger()))))
	} else {
		opts = append(opts, sentry.WithSDKPresent())
	}
	gateway = sentry.NewGateway(opts...)
	errorReporter = gateway
	instrumentor = sentry.NewInstrumentor(gateway.Hub(), c.IsTracingEnabled)
}

/*
TODO Accessors: This should go away, since all dependencies should be satisfied at startup-time, if needed for testing
they can be returned by the test helper for unit/integration tests
*/

func ErrorReporter() er.ErrorReporter {
	initMutex.Lock()
	defer initMutex.Unlock()
	return errorReporter
}

// Gateway is nil after TestInit.
func Gateway() *sentry.Gateway {
	initMutex.Lock()
	defer initMutex.Unlock()
	return gateway
}

func Instrumentor() performance.Instrumentor {
	initMutex.Lock()
	defer initMutex.Unlock()
	return instrumentor
}
