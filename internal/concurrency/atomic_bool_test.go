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

package concurrency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAtomicBool_GetSet(t *testing.T) {
	b := AtomicBool{}
	assert.Equal(t, false, b.Get())

	b.Set(true)
	assert.Equal(t, true, b.Get())
}

func TestAtomicBool_CompareAndSet(t *testing.T) {
	b := AtomicBool{}
	assert.True(t, b.CompareAndSet(false, true))
	assert.False(t, b.CompareAndSet(false, true))
	assert.True(t, b.Get())
}
