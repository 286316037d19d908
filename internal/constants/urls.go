/*
 * © 2026 Snyk Limited All rights reserved.
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

package constants

// GitHub API endpoints
const (
	// GITHUB_API_URL is the default GitHub REST API endpoint
	GITHUB_API_URL = "https://api.github.com"
	// GITHUB_API_MEDIA_TYPE is sent as Accept header on every request
	GITHUB_API_MEDIA_TYPE = "application/vnd.github.v3+json"
)

// Defaults of the command line
const (
	// DEFAULT_REPOSITORY is the dataset repository releases are fetched from
	DEFAULT_REPOSITORY = "NickCrews/apoc-data"
	// DEFAULT_RELEASE selects the most recent published release
	DEFAULT_RELEASE     = "latest"
	DEFAULT_DESTINATION = "downloads/"
)
