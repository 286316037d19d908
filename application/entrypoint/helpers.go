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

package entrypoint

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/snyk/release-fetch/application/config"
	"github.com/snyk/release-fetch/infrastructure/sentry"
)

// OnPanicRecover reports a panic, prints the stack and exits non-zero. Must be deferred directly.
func OnPanicRecover() {
	if err := recover(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		debug.PrintStack()
		er := sentry.NewSentryErrorReporter(config.CurrentConfig())
		er.CaptureError(fmt.Errorf("%v", err))
		er.FlushErrorReporting()
		os.Exit(1)
	}
}
