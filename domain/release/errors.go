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

package release

import "errors"

var (
	// ErrInvalidArgument is returned for argument combinations that cannot be served, e.g. both a release
	// name and a tag, or downloading every asset into a single file.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound is returned when a release doesn't contain the requested asset.
	ErrNotFound = errors.New("not found")
)
