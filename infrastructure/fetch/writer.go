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
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/pkg/errors"

	"github.com/snyk/release-fetch/internal/progress"
)

// writeCounter counts the number of bytes written to it.
type writeCounter struct {
	total           int64 // total size, -1 if unknown
	downloaded      int64 // downloaded # of bytes transferred
	onProgress      func(downloaded int64, total int64, progressTracker *progress.Tracker)
	progressTracker *progress.Tracker
}

// Write implements the io.Writer interface.
//
// Always completes and never returns an error.
func (wc *writeCounter) Write(p []byte) (n int, e error) {
	n = len(p)
	wc.downloaded += int64(n)
	wc.onProgress(wc.downloaded, wc.total, wc.progressTracker)
	return
}

func newWriter(size int64, progressTracker *progress.Tracker, onProgress func(downloaded, total int64, progressTracker *progress.Tracker)) io.Writer {
	return &writeCounter{total: size, progressTracker: progressTracker, onProgress: onProgress}
}

func onProgress(downloaded, total int64, progressTracker *progress.Tracker) {
	if total <= 0 {
		return
	}
	percentage := float64(downloaded) / float64(total) * 100
	progressTracker.Report(int(percentage))
}

// writeFile streams r into a temporary file next to target and moves it into place once complete, so target
// is never left truncated. Missing parent directories are created.
func writeFile(target string, r io.Reader) (written int64, err error) {
	dir := filepath.Dir(target)
	if err = os.MkdirAll(dir, 0755); err != nil {
		return 0, errors.Wrapf(err, "couldn't create directory %s", dir)
	}

	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(target)+".*.part")
	if err != nil {
		return 0, errors.Wrapf(err, "couldn't create temporary file in %s", dir)
	}
	defer func() {
		_ = tmpFile.Close()
		if err != nil {
			_ = os.Remove(tmpFile.Name())
		}
	}()

	written, err = io.Copy(tmpFile, r)
	if err != nil {
		return written, errors.Wrapf(err, "couldn't write %s", target)
	}
	if err = tmpFile.Chmod(0644); err != nil {
		return written, errors.Wrapf(err, "couldn't set permissions of %s", tmpFile.Name())
	}
	// close file to allow moving it on Windows
	if err = tmpFile.Close(); err != nil {
		return written, errors.Wrapf(err, "couldn't close %s", tmpFile.Name())
	}

	// for Windows, we have to remove original file first before move/rename
	if runtime.GOOS == "windows" {
		if _, statErr := os.Stat(target); statErr == nil {
			if err = os.Remove(target); err != nil {
				return written, errors.Wrapf(err, "couldn't replace %s", target)
			}
		}
	}
	if err = os.Rename(tmpFile.Name(), target); err != nil {
		return written, errors.Wrapf(err, "couldn't move download to %s", target)
	}
	return written, nil
}
