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
	"strings"
	"sync"
	"time"

	"github.com/erni27/imcache"
)

type duplicateFilter struct {
	mu    sync.Mutex
	cache *imcache.Cache[string, struct{}]
}

func newDuplicateFilter(window time.Duration) *duplicateFilter {
	return &duplicateFilter{
		cache: imcache.New[string, struct{}](
			imcache.WithDefaultExpirationOption[string, struct{}](window),
		),
	}
}

func exceptionKey(title string, fingerprint []string) string {
	return title + "\x00" + strings.Join(fingerprint, "\x1f")
}

// contains reports whether key was recorded inside the window.
func (f *duplicateFilter) contains(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.cache.Get(key)
	return ok
}

// record starts the window for key. Only exceptions that were actually captured are recorded.
func (f *duplicateFilter) record(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cache.Set(key, struct{}{}, imcache.WithDefaultExpiration())
}
