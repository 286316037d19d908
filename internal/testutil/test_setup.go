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
	"runtime"
	"testing"

	"github.com/pact-foundation/pact-go/dsl"
	"github.com/rs/zerolog"

	"github.com/snyk/release-fetch/application/config"
)

const (
	integTestEnvVar    = "INTEG_TESTS"
	contractTestEnvVar = "CONTRACT_TESTS"
)

// IntegTest runs the test only when INTEG_TESTS is set; integration tests talk to the real GitHub API.
func IntegTest(t *testing.T) *config.Config {
	t.Helper()
	return prepareTestHelper(t, integTestEnvVar)
}

// ContractTest runs the test only when CONTRACT_TESTS is set; contract tests need the pact CLI.
func ContractTest(t *testing.T) *config.Config {
	t.Helper()
	NotOnWindows(t, "we don't have a pact cli")
	return prepareTestHelper(t, contractTestEnvVar)
}

// UnitTest installs a fresh, unauthenticated config without metadata caching.
func UnitTest(t *testing.T) *config.Config {
	t.Helper()
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	c := config.New()
	c.SetToken("")
	c.SetCacheTTL(0)
	c.SetErrorReportingEnabled(false)
	config.SetCurrentConfig(c)
	t.Cleanup(func() { config.SetCurrentConfig(nil) })
	return c
}

func NotOnWindows(t *testing.T, reason string) {
	t.Helper()
	if //goland:noinspection GoBoolExpressions
	runtime.GOOS == "windows" {
		t.Skipf("Not on windows, because %s", reason)
	}
}

func OnlyOnWindows(t *testing.T, reason string) {
	t.Helper()
	if //goland:noinspection GoBoolExpressions
	runtime.GOOS != "windows" {
		t.Skipf("Only on windows, because %s", reason)
	}
}

func Pact(t *testing.T, pactDir string, provider string) *dsl.Pact {
	t.Helper()
	pact := &dsl.Pact{
		Consumer: "ReleaseFetch",
		Provider: provider,
		PactDir:  pactDir,
	}
	t.Cleanup(func() {
		pact.Teardown()
	})
	return pact
}

func prepareTestHelper(t *testing.T, envVar string) *config.Config {
	t.Helper()
	if os.Getenv(envVar) == "" {
		t.Logf("%s is not set", envVar)
		t.SkipNow()
	}

	c := config.New()
	c.SetToken(GetEnvironmentToken())
	c.SetErrorReportingEnabled(false)
	config.SetCurrentConfig(c)
	t.Cleanup(func() { config.SetCurrentConfig(nil) })
	return c
}
