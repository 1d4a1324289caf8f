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

import "sync"

// Signal is a one-shot broadcast: once fired, Done is closed forever.
type Signal struct {
	once sync.Once
	ch   chan struct{}
	mu   sync.Mutex
}

func (s *Signal) channel() chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ch == nil {
		s.ch = make(chan struct{})
	}
	return s.ch
}

func (s *Signal) Done() <-chan struct{} { return s.channel() }

// Fire closes Done. It reports whether this call was the one that fired.
func (s *Signal) Fire() bool {
	fired := false
	s.once.Do(func() {
		close(s.channel())
		fired = true
	})
	return fired
}

func (s *Signal) Fired() bool {
	select {
	case <-s.Done():
		return true
	default:
		return false
	}
}
