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

package testutil

import (
	"os"
	"testing"

	"github.com/snyk/release-fetch/application/config"
)

func GetEnvironmentToken() string {
	if pat := os.Getenv(config.GithubPatKey); pat != "" {
		return pat
	}
	return os.Getenv(config.GithubTokenKey)
}

// UnsetEnv removes key for the duration of the test.
func UnsetEnv(t *testing.T, key string) {
	t.Helper()
	// t.Setenv registers the restore of the original value
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatal(err)
	}
}
