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

import (
	"net/url"

	"github.com/pkg/errors"

	"github.com/snyk/release-fetch/internal/constants"
)

// Reference identifies a release either by its name (which includes the "latest" alias) or by its tag.
type Reference struct {
	value string
	isTag bool
}

// NewReference validates that at most one of name and tag is set. Without either, the latest release is referenced.
func NewReference(name, tag string) (Reference, error) {
	if name != "" && tag != "" {
		return Reference{}, errors.Wrapf(ErrInvalidArgument, "can't provide both release %q and tag %q", name, tag)
	}
	if tag != "" {
		return Reference{value: tag, isTag: true}, nil
	}
	if name == "" {
		return Latest(), nil
	}
	return Reference{value: name}, nil
}

func Latest() Reference { return Reference{value: constants.DEFAULT_RELEASE} }

func (r Reference) Value() string { return r.value }
func (r Reference) IsTag() bool   { return r.isTag }

// Path is the releases API path below /repos/<owner>/<repo>/.
func (r Reference) Path() string {
	if r.isTag {
		return "releases/tags/" + url.PathEscape(r.value)
	}
	return "releases/" + url.PathEscape(r.value)
}

func (r Reference) String() string {
	if r.isTag {
		return "tag " + r.value
	}
	return "release " + r.value
}
