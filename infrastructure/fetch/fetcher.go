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
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/snyk/release-fetch/domain/observability/error_reporting"
	"github.com/snyk/release-fetch/domain/release"
	"github.com/snyk/release-fetch/internal/progress"
)

//go:generate mockgen -source=fetcher.go -destination mock_fetch/fetcher_mock.go -package mock_fetch

// ReleaseSource resolves releases and opens asset downloads.
type ReleaseSource interface {
	ResolveRelease(ctx context.Context, ref release.Reference) (string, release.Assets, error)
	Open(ctx context.Context, url string) (io.ReadCloser, int64, error)
}

type Options struct {
	// Release name, e.g. "latest". Mutually exclusive with Tag; without either the latest release is used.
	Release string
	Tag     string
	// Filename selects a single asset. Empty downloads all assets.
	Filename    string
	Destination string
}

type Result struct {
	Tag   string
	Files []string
}

type Fetcher struct {
	source        ReleaseSource
	errorReporter error_reporting.ErrorReporter
	progressSink  progress.Sink
}

func NewFetcher(source ReleaseSource, errorReporter error_reporting.ErrorReporter, progressSink progress.Sink) *Fetcher {
	return &Fetcher{
		source:        source,
		errorReporter: errorReporter,
		progressSink:  progressSink,
	}
}

// Download resolves the release and downloads the selected asset, or all assets when no filename is set.
func (f *Fetcher) Download(ctx context.Context, opts Options) (*Result, error) {
	ref, err := release.NewReference(opts.Release, opts.Tag)
	if err != nil {
		return nil, err
	}
	destination := release.Destination(opts.Destination)
	if opts.Filename == "" && destination.IsFile() {
		return nil, errors.Wrapf(release.ErrInvalidArgument, "can't download all files to the single file %q", destination)
	}

	tag, assets, err := f.source.ResolveRelease(ctx, ref)
	if err != nil {
		return nil, err
	}
	log.Info().Str("method", "Download").Str("tag", tag).Msgf("resolved %s to %s with %d assets", ref, tag, assets.Len())

	if opts.Filename != "" {
		file, err := f.DownloadOne(ctx, assets, opts.Filename, destination)
		if err != nil {
			return nil, errors.Wrapf(err, "release %s", tag)
		}
		return &Result{Tag: tag, Files: []string{file}}, nil
	}

	files, err := f.DownloadAll(ctx, assets, destination)
	if err != nil {
		return nil, errors.Wrapf(err, "release %s", tag)
	}
	return &Result{Tag: tag, Files: files}, nil
}

// DownloadAll writes every asset below the directory destination, one after the other. On failure the
// remaining assets are skipped; the returned paths are the files written before the failure.
func (f *Fetcher) DownloadAll(ctx context.Context, assets release.Assets, destination release.Destination) ([]string, error) {
	if destination.IsFile() {
		return nil, errors.Wrapf(release.ErrInvalidArgument, "can't download all files to the single file %q", destination)
	}
	files := make([]string, 0, assets.Len())
	for _, asset := range assets.All() {
		target, err := destination.Target(asset.Name)
		if err != nil {
			return files, err
		}
		if err := f.downloadAsset(ctx, asset, target); err != nil {
			return files, err
		}
		files = append(files, target)
	}
	return files, nil
}

// DownloadOne writes the asset called filename. A directory destination receives the asset under its own
// name, a file destination is the target itself.
func (f *Fetcher) DownloadOne(ctx context.Context, assets release.Assets, filename string, destination release.Destination) (string, error) {
	url, ok := assets.Lookup(filename)
	if !ok {
		return "", errors.Wrapf(release.ErrNotFound, "no file named %q", filename)
	}

	target := destination.String()
	if destination.IsFile() {
		if info, err := os.Stat(target); err == nil && info.IsDir() {
			return "", errors.Wrapf(release.ErrInvalidArgument, "destination %q looks like a file but is a directory", target)
		}
	} else {
		var err error
		if target, err = destination.Target(filename); err != nil {
			return "", err
		}
	}

	if err := f.downloadAsset(ctx, release.Asset{Name: filename, URL: url}, target); err != nil {
		return "", err
	}
	return target, nil
}

func (f *Fetcher) downloadAsset(ctx context.Context, asset release.Asset, target string) error {
	logger := log.With().Str("method", "downloadAsset").Str("download_url", asset.URL).Logger()

	body, length, err := f.source.Open(ctx, asset.URL)
	if err != nil {
		f.captureError(ctx, err)
		return err
	}
	defer func(body io.ReadCloser) { _ = body.Close() }(body)

	tracker := progress.NewTracker(f.progressSink)
	tracker.Begin(fmt.Sprintf("Downloading %s...", asset.Name), target)

	// pipe stream
	reader := io.TeeReader(body, newWriter(length, tracker, onProgress))
	bytesCopied, err := writeFile(target, reader)
	if err != nil {
		tracker.End(fmt.Sprintf("Downloading %s failed.", asset.Name))
		f.captureError(ctx, err)
		return err
	}
	tracker.End(fmt.Sprintf("%s has been downloaded.", asset.Name))

	logger.Info().Int64("bytes_copied", bytesCopied).Msgf("copied to %s", target)
	return nil
}

// cancellation by the user is not an error worth reporting
func (f *Fetcher) captureError(ctx context.Context, err error) {
	if ctx.Err() != nil || f.errorReporter == nil {
		return
	}
	f.errorReporter.CaptureError(err)
}
