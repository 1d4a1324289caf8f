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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDuplicateFilter(t *testing.T) {
	f := newDuplicateFilter(time.Minute)
	key := exceptionKey("X", []string{"a"})

	assert.False(t, f.contains(key))
	f.record(key)
	assert.True(t, f.contains(key))
	assert.False(t, f.contains(exceptionKey("X", nil)))
	assert.False(t, f.contains(exceptionKey("X", []string{"a", "b"})))
	assert.False(t, f.contains(exceptionKey("Y", []string{"a"})))
}

func TestDuplicateFilter_Expires(t *testing.T) {
	f := newDuplicateFilter(20 * time.Millisecond)
	key := exceptionKey("X", nil)

	f.record(key)
	time.Sleep(40 * time.Millisecond)
	assert.False(t, f.contains(key))
}
