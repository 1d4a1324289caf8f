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
	"testing"

	er "github.com/beyondverage0908/nanjin-common/domain/observability/error_reporting"
	"github.com/beyondverage0908/nanjin-common/domain/observability/performance"
)

// TestInit swaps in recording fakes and restores the previous wiring when t ends.
func TestInit(t *testing.T) *er.TestErrorReporter {
	t.Helper()
	initMutex.Lock()
	defer initMutex.Unlock()
	previousGateway, previousReporter, previousInstrumentor := gateway, errorReporter, instrumentor
	t.Cleanup(func() {
		initMutex.Lock()
		defer initMutex.Unlock()
		gateway, errorReporter, instrumentor = previousGateway, previousReporter, previousInstrumentor
	})

	reporter := er.NewTestErrorReporter()
	gateway = nil
	errorReporter = reporter
	instrumentor = performance.NewTestInstrumentor()
	return reporter
}
