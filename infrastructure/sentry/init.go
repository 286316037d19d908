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

package sentry

import (
	"sync/atomic"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog/log"

	"github.com/snyk/release-fetch/application/config"
)

var initialized atomic.Bool

func initializeSentry(c *config.Config) {
	if !initialized.CompareAndSwap(false, true) {
		return
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              c.SentryDsn(),
		Environment:      sentryEnvironment(),
		Release:          config.Version,
		Debug:            config.IsDevelopment(),
		BeforeSend:       beforeSend(c),
		AttachStacktrace: true,
	})
	if err != nil {
		log.Error().Str("method", "initializeSentry").Msg(err.Error())
		return
	}
	log.Debug().Msg("Error reporting initialized")
	addUserId(c)
}

func addUserId(c *config.Config) {
	device := c.DeviceID()
	if device != "" {
		sentry.ConfigureScope(func(scope *sentry.Scope) {
			scope.SetUser(sentry.User{ID: device})
		})
	}
}

// Events are only sent when the user opted in, the flag is evaluated per event.
func beforeSend(c *config.Config) func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
	return func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
		if c.IsErrorReportingEnabled() {
			return event
		}
		return nil
	}
}

func sentryEnvironment() string {
	if config.IsDevelopment() {
		return "development"
	} else {
		return "production"
	}
}
