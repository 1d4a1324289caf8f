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

package error_reporting

import "fmt"

type Status int

const (
	StatusOK Status = iota
	// StatusPending means the SDK is loading and initialization will follow.
	StatusPending
	// StatusQueued means the enrichment was kept and is applied once the client is ready.
	StatusQueued
	StatusSDKUnavailable
	StatusLoadFailed
	StatusUnsupported
	StatusInvalidInput
	StatusSuppressed
	// StatusDeliveryFailed means the host side (e.g. a feedback presenter) rejected the call.
	StatusDeliveryFailed
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusPending:
		return "pending"
	case StatusQueued:
		return "queued"
	case StatusSDKUnavailable:
		return "sdk unavailable"
	case StatusLoadFailed:
		return "load failed"
	case StatusUnsupported:
		return "unsupported"
	case StatusInvalidInput:
		return "invalid input"
	case StatusSuppressed:
		return "suppressed"
	case StatusDeliveryFailed:
		return "delivery failed"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Result is returned by every reporter operation instead of an error.
// EventID is only set for captured events.
type Result struct {
	Status  Status
	EventID string
	Err     error
}

func (r Result) OK() bool { return r.Status == StatusOK }

func Ok(eventID string) Result { return Result{Status: StatusOK, EventID: eventID} }

func Fail(status Status, err error) Result { return Result{Status: status, Err: err} }

func (r Result) String() string {
	switch {
	case r.Err != nil:
		return fmt.Sprintf("%s: %v", r.Status, r.Err)
	case r.EventID != "":
		return fmt.Sprintf("%s (event %s)", r.Status, r.EventID)
	}
	return r.Status.String()
}
