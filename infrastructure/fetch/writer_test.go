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

package fetch

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snyk/release-fetch/internal/progress"
)

func Test_writeFile_CreatesParentDirectories(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "dir", "data.csv")

	written, err := writeFile(target, strings.NewReader("x,y\n"))

	require.NoError(t, err)
	assert.Equal(t, int64(4), written)
	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "x,y\n", string(content))
}

func Test_writeFile_LeavesNoTemporaryFiles(t *testing.T) {
	dir := t.TempDir()

	_, err := writeFile(filepath.Join(dir, "data.csv"), strings.NewReader("content"))

	require.NoError(t, err)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "data.csv", entries[0].Name())
}

func Test_writeCounter_ReportsPercentage(t *testing.T) {
	var events []progress.Params
	tracker := progress.NewTestTracker(func(params progress.Params) { events = append(events, params) })
	tracker.Begin("title", "message")
	writer := newWriter(4, tracker, onProgress)

	_, _ = writer.Write([]byte("ab"))
	_, _ = writer.Write([]byte("cd"))

	require.Len(t, events, 3)
	assert.Equal(t, 50, events[1].Percentage)
	assert.Equal(t, 100, events[2].Percentage)
}

func Test_writeCounter_UnknownSizeDoesNotReport(t *testing.T) {
	var events []progress.Params
	tracker := progress.NewTestTracker(func(params progress.Params) { events = append(events, params) })
	writer := newWriter(-1, tracker, onProgress)

	n, err := writer.Write([]byte("abc"))

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Empty(t, events)
}
