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

package error_reporting

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// TestErrorReporter records captured errors instead of sending them.
type TestErrorReporter struct {
	mutex    sync.Mutex
	captured []error
}

func NewTestErrorReporter() *TestErrorReporter {
	return &TestErrorReporter{}
}

func (s *TestErrorReporter) FlushErrorReporting() {
}

func (s *TestErrorReporter) CaptureError(err error) bool {
	log.Log().Err(err).Msg("An error has been captured by the testing error reporter")
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.captured = append(s.captured, err)
	return true
}

func (s *TestErrorReporter) Captured() []error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return append([]error(nil), s.captured...)
}
