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
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSignal_FiresOnce(t *testing.T) {
	s := Signal{}
	assert.False(t, s.Fired())

	var wg sync.WaitGroup
	fired := make(chan bool, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fired <- s.Fire()
		}()
	}
	wg.Wait()
	close(fired)

	count := 0
	for f := range fired {
		if f {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.True(t, s.Fired())
}

func TestSignal_DoneUnblocksWaiters(t *testing.T) {
	s := Signal{}
	done := s.Done()
	go s.Fire()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("signal did not fire")
	}
}
