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
	"regexp"

	"github.com/hashicorp/go-version"
)

const defaultLegacyFloor = "9"

var msiePattern = regexp.MustCompile(`MSIE\s*([0-9]+(?:\.[0-9]+)?)`)

// IsLegacyAgent reports whether userAgent is an Internet Explorer older than floor.
// Agents that don't identify as MSIE, and unparsable floors, are never legacy.
func IsLegacyAgent(userAgent string, floor string) bool {
	match := msiePattern.FindStringSubmatch(userAgent)
	if match == nil {
		return false
	}
	agentVersion, err := version.NewVersion(match[1])
	if err != nil {
		return false
	}
	floorVersion, err := version.NewVersion(floor)
	if err != nil {
		return false
	}
	return agentVersion.LessThan(floorVersion)
}
