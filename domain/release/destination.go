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
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Destination is where downloaded assets go. Whether it denotes a file or a directory is decided from its
// spelling only, the filesystem is not consulted.
type Destination string

// IsFile reports whether the final path segment contains a ".". Empty paths, "." and ".." name no entry
// and count as directories.
func (d Destination) IsFile() bool {
	name := filepath.Base(string(d))
	if name == "." || name == ".." {
		return false
	}
	return strings.Contains(name, ".")
}

// Target returns the path an asset called name is written to below a directory destination.
func (d Destination) Target(name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", errors.Wrapf(ErrInvalidArgument, "asset name %q is not a plain file name", name)
	}
	return filepath.Join(string(d), name), nil
}

func (d Destination) String() string { return string(d) }
