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
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/adrg/xdg"
	"github.com/denisbrodbeck/machineid"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/subosito/gotenv"

	"github.com/snyk/release-fetch/domain/release"
	"github.com/snyk/release-fetch/internal/constants"
)

const (
	GithubPatKey   = "GITHUB_PAT"
	GithubTokenKey = "GITHUB_TOKEN"
	apiUrlKey      = "GITHUB_API_URL"
	repositoryKey  = "RELEASE_FETCH_REPOSITORY"
	cacheTTLKey    = "RELEASE_FETCH_CACHE_TTL" // duration (number + unit), e.g. 5m; 0 disables the cache
	sentryDsnKey   = "RELEASE_FETCH_SENTRY_DSN"
	FormatJson     = "json"
	FormatYaml     = "yaml"
	appName        = "release-fetch"
)

const defaultCacheTTL = time.Minute

var (
	Version       = "SNAPSHOT"
	Development   = "false"
	currentConfig *Config
	initMutex     = &sync.Mutex{}
)

type Config struct {
	apiUrl                  string
	repository              string
	token                   string
	cacheTTL                time.Duration
	sentryDsn               string
	configFile              string
	format                  string
	logPath                 string
	deviceId                string
	isErrorReportingEnabled atomic.Bool
	deviceIdMutex           sync.Mutex
}

func CurrentConfig() *Config {
	initMutex.Lock()
	defer initMutex.Unlock()
	if currentConfig == nil {
		currentConfig = New()
	}
	return currentConfig
}

func SetCurrentConfig(config *Config) {
	initMutex.Lock()
	defer initMutex.Unlock()
	currentConfig = config
}

func IsDevelopment() bool {
	return Development == "true"
}

func New() *Config {
	c := &Config{}
	c.format = FormatJson
	c.readEnv()
	return c
}

func (c *Config) readEnv() {
	c.apiUrl = apiUrlFromEnv()
	c.repository = repositoryFromEnv()
	c.token = tokenFromEnv()
	c.cacheTTL = cacheTTLFromEnv()
	c.sentryDsn = os.Getenv(sentryDsnKey)
}

// Load exports the variables of all config files that are not yet set in the environment and re-reads the
// environment afterwards.
func (c *Config) Load() {
	for _, fileName := range c.configFiles() {
		c.loadFile(fileName)
	}
	c.readEnv()
}

func (c *Config) loadFile(fileName string) {
	file, err := os.Open(fileName)
	if err != nil {
		log.Debug().Str("method", "loadFile").Msg("Couldn't load " + fileName)
		return
	}
	defer file.Close()
	env := gotenv.Parse(file)
	for k, v := range env {
		if _, exists := os.LookupEnv(k); exists {
			continue
		}
		if err := os.Setenv(k, v); err != nil {
			log.Warn().Str("method", "loadFile").Msg("Couldn't set environment variable " + k)
		}
	}
	log.Debug().Str("fileName", fileName).Msg("loaded.")
}

// The order of the files is important - first file variable definitions win!
func (c *Config) configFiles() []string {
	var files []string
	if c.configFile != "" {
		files = append(files, c.configFile)
	}
	files = append(files,
		"."+appName+".env",
		filepath.Join(xdg.ConfigHome, appName, appName+".env"),
	)
	if home, err := os.UserHomeDir(); err == nil {
		files = append(files, filepath.Join(home, "."+appName+".env"))
	}
	return files
}

func (c *Config) ApiUrl() string                  { return c.apiUrl }
func (c *Config) Repository() string              { return c.repository }
func (c *Config) Token() string                   { return c.token }
func (c *Config) CacheTTL() time.Duration         { return c.cacheTTL }
func (c *Config) SentryDsn() string               { return c.sentryDsn }
func (c *Config) Format() string                  { return c.format }
func (c *Config) LogPath() string                 { return c.logPath }
func (c *Config) IsErrorReportingEnabled() bool   { return c.isErrorReportingEnabled.Load() }
func (c *Config) SetApiUrl(apiUrl string)         { c.apiUrl = strings.TrimRight(apiUrl, "/") }
func (c *Config) SetToken(token string)           { c.token = token }
func (c *Config) SetCacheTTL(ttl time.Duration)   { c.cacheTTL = ttl }
func (c *Config) SetSentryDsn(dsn string)         { c.sentryDsn = dsn }
func (c *Config) SetConfigFile(configFile string) { c.configFile = configFile }
func (c *Config) SetLogPath(logPath string)       { c.logPath = logPath }
func (c *Config) SetErrorReportingEnabled(enabled bool) {
	c.isErrorReportingEnabled.Store(enabled)
}

func (c *Config) SetFormat(format string) error {
	switch format {
	case FormatJson, FormatYaml:
		c.format = format
		return nil
	default:
		return errors.Wrapf(release.ErrInvalidArgument, "unknown output format %q", format)
	}
}

func (c *Config) SetRepository(repository string) error {
	if _, _, err := SplitRepository(repository); err != nil {
		return err
	}
	c.repository = repository
	return nil
}

// Owner and name of the configured repository. The value is validated when set, so errors cannot occur here
// unless the environment carries a malformed value.
func (c *Config) RepositoryOwnerAndName() (owner string, name string, err error) {
	return SplitRepository(c.repository)
}

// SplitRepository splits "owner/name".
func SplitRepository(repository string) (owner string, name string, err error) {
	owner, name, found := strings.Cut(repository, "/")
	if !found || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", errors.Wrapf(release.ErrInvalidArgument, "repository %q is not of the form owner/name", repository)
	}
	return owner, name, nil
}

// DeviceID identifies this machine towards error reporting without exposing the raw machine id.
func (c *Config) DeviceID() string {
	c.deviceIdMutex.Lock()
	defer c.deviceIdMutex.Unlock()
	if c.deviceId != "" {
		return c.deviceId
	}
	id, err := machineid.ProtectedID(appName)
	if err != nil {
		log.Err(err).Str("method", "config.DeviceID").Msg("cannot retrieve machine id")
		id = uuid.NewString()
	}
	c.deviceId = id
	return c.deviceId
}

func (c *Config) ConfigureLogging(level string) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		fmt.Fprintln(os.Stderr, "Can't set log level from flag. Setting to default (=info)")
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)
	zerolog.TimeFieldFormat = time.RFC3339

	if c.logPath != "" {
		file, err := os.OpenFile(c.logPath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
		if err != nil {
			log.Err(err).Msg("couldn't open logfile")
			return
		}
		log.Logger = log.Output(file)
		log.Debug().Msgf("Logging to file %s", c.logPath)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

func apiUrlFromEnv() string {
	trim := strings.TrimRight(os.Getenv(apiUrlKey), "/")
	if trim == "" {
		trim = constants.GITHUB_API_URL
	}
	return trim
}

func repositoryFromEnv() string {
	repository := os.Getenv(repositoryKey)
	if repository == "" {
		return constants.DEFAULT_REPOSITORY
	}
	return repository
}

// GITHUB_PAT wins over the more common GITHUB_TOKEN.
func tokenFromEnv() string {
	if pat := os.Getenv(GithubPatKey); pat != "" {
		return pat
	}
	return os.Getenv(GithubTokenKey)
}

func cacheTTLFromEnv() time.Duration {
	env := os.Getenv(cacheTTLKey)
	if env == "" {
		return defaultCacheTTL
	}
	ttl, err := time.ParseDuration(env)
	if err != nil || ttl < 0 {
		log.Warn().Str("method", "cacheTTLFromEnv").Str(cacheTTLKey, env).Msg("couldn't parse cache ttl, using default")
		return defaultCacheTTL
	}
	return ttl
}
