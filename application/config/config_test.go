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

package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snyk/release-fetch/domain/release"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
}

func TestConfigDefaults(t *testing.T) {
	unsetEnv(t, GithubPatKey, GithubTokenKey, apiUrlKey, repositoryKey, cacheTTLKey, sentryDsnKey)

	c := New()

	assert.Equal(t, "https://api.github.com", c.ApiUrl())
	assert.Equal(t, "NickCrews/apoc-data", c.Repository())
	assert.Equal(t, "", c.Token(), "Requests should be unauthenticated by default")
	assert.Equal(t, time.Minute, c.CacheTTL())
	assert.Equal(t, FormatJson, c.Format(), "Output format should be json by default")
	assert.Equal(t, "", c.LogPath(), "Logpath should be empty by default")
	assert.False(t, c.IsErrorReportingEnabled(), "Error Reporting should be disabled by default")
}

func TestToken(t *testing.T) {
	t.Run("GITHUB_PAT wins over GITHUB_TOKEN", func(t *testing.T) {
		t.Setenv(GithubPatKey, "pat")
		t.Setenv(GithubTokenKey, "token")
		assert.Equal(t, "pat", New().Token())
	})
	t.Run("GITHUB_TOKEN as fallback", func(t *testing.T) {
		unsetEnv(t, GithubPatKey)
		t.Setenv(GithubTokenKey, "token")
		assert.Equal(t, "token", New().Token())
	})
	t.Run("empty GITHUB_PAT is ignored", func(t *testing.T) {
		t.Setenv(GithubPatKey, "")
		t.Setenv(GithubTokenKey, "token")
		assert.Equal(t, "token", New().Token())
	})
}

func TestApiUrl_TrailingSlashIsTrimmed(t *testing.T) {
	t.Setenv(apiUrlKey, "https://github.example.com/api/v3/")
	c := New()
	assert.Equal(t, "https://github.example.com/api/v3", c.ApiUrl())

	c.SetApiUrl("http://localhost:1234/")
	assert.Equal(t, "http://localhost:1234", c.ApiUrl())
}

func TestCacheTTL(t *testing.T) {
	tests := []struct {
		env  string
		want time.Duration
	}{
		{env: "5m", want: 5 * time.Minute},
		{env: "0", want: 0},
		{env: "forever", want: defaultCacheTTL},
		{env: "-1s", want: defaultCacheTTL},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv(cacheTTLKey, tt.env)
			assert.Equal(t, tt.want, New().CacheTTL())
		})
	}
}

func TestSplitRepository(t *testing.T) {
	owner, name, err := SplitRepository("NickCrews/apoc-data")
	require.NoError(t, err)
	assert.Equal(t, "NickCrews", owner)
	assert.Equal(t, "apoc-data", name)

	for _, invalid := range []string{"", "apoc-data", "/apoc-data", "NickCrews/", "a/b/c"} {
		_, _, err := SplitRepository(invalid)
		assert.ErrorIs(t, err, release.ErrInvalidArgument, invalid)
	}
}

func TestSetRepository_KeepsValueOnError(t *testing.T) {
	unsetEnv(t, repositoryKey)
	c := New()

	err := c.SetRepository("invalid")

	assert.ErrorIs(t, err, release.ErrInvalidArgument)
	assert.Equal(t, "NickCrews/apoc-data", c.Repository())
}

func TestSetFormat(t *testing.T) {
	c := New()

	require.NoError(t, c.SetFormat(FormatYaml))
	assert.Equal(t, FormatYaml, c.Format())
	assert.ErrorIs(t, c.SetFormat("md"), release.ErrInvalidArgument)
	assert.Equal(t, FormatYaml, c.Format())
}

func Test_loadFile(t *testing.T) {
	unsetEnv(t, "A", "C")
	t.Setenv("E", "from-env")
	file := filepath.Join(t.TempDir(), "config_test_loadFile")
	require.NoError(t, os.WriteFile(file, []byte("A=B\nC=D\nE=from-file"), 0600))

	New().loadFile(file)

	assert.Equal(t, "B", os.Getenv("A"))
	assert.Equal(t, "D", os.Getenv("C"))
	assert.Equal(t, "from-env", os.Getenv("E"))
}

func TestLoad_ConfigFileBeforeDefaults(t *testing.T) {
	unsetEnv(t, GithubPatKey, GithubTokenKey, repositoryKey)
	file := filepath.Join(t.TempDir(), "release-fetch.env")
	require.NoError(t, os.WriteFile(file, []byte("GITHUB_TOKEN=from-file\nRELEASE_FETCH_REPOSITORY=owner/name\n"), 0600))
	c := New()
	c.SetConfigFile(file)

	c.Load()

	assert.Equal(t, "from-file", c.Token())
	assert.Equal(t, "owner/name", c.Repository())
	assert.Equal(t, file, c.configFiles()[0])
}

func TestConfigureLogging(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())
	c := New()

	c.ConfigureLogging("trace")
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())

	c.ConfigureLogging("nonsense")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestConfigureLogging_WritesToLogPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("the log file stays open and blocks removing the temp dir")
	}
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())
	defer func(logger zerolog.Logger) { log.Logger = logger }(log.Logger)
	c := New()
	c.SetLogPath(filepath.Join(t.TempDir(), "release-fetch.log"))

	c.ConfigureLogging("debug")

	content, err := os.ReadFile(c.LogPath())
	require.NoError(t, err)
	assert.Contains(t, string(content), "Logging to file")
}

func TestDeviceID_IsStable(t *testing.T) {
	c := New()
	id := c.DeviceID()
	assert.NotEmpty(t, id)
	assert.Equal(t, id, c.DeviceID())
}

func TestCurrentConfig(t *testing.T) {
	c := New()
	SetCurrentConfig(c)
	defer SetCurrentConfig(nil)

	assert.Same(t, c, CurrentConfig())
}
