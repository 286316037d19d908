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
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/snyk/release-fetch/application/config"
	"github.com/snyk/release-fetch/infrastructure/fetch"
	"github.com/snyk/release-fetch/infrastructure/github"
	"github.com/snyk/release-fetch/infrastructure/sentry"
	"github.com/snyk/release-fetch/internal/httpclient"
	"github.com/snyk/release-fetch/internal/progress"
)

type Options struct {
	Release     string
	Filename    string
	Destination string
	// List prints the releases of the repository instead of downloading.
	List bool
}

// Run executes a single invocation and writes its result to out: the downloaded paths one per line, or the
// release list in the configured format.
func Run(ctx context.Context, c *config.Config, opts Options, out io.Writer) error {
	errorReporter := sentry.NewSentryErrorReporter(c)
	defer errorReporter.FlushErrorReporting()

	httpClient := httpclient.NewHTTPClient(c.ApiUrl())
	client, err := github.NewClient(c, func() *http.Client { return httpClient })
	if err != nil {
		return err
	}
	log.Debug().Str("method", "Run").Str("repository", client.Repository()).Bool("authenticated", c.Token() != "").Msg("starting")

	if opts.List {
		return listReleases(ctx, client, c.Format(), out)
	}

	fetcher := fetch.NewFetcher(client, errorReporter, progress.LogSink)
	result, err := fetcher.Download(ctx, fetch.Options{
		Release:     opts.Release,
		Filename:    opts.Filename,
		Destination: opts.Destination,
	})
	if err != nil {
		return err
	}
	for _, file := range result.Files {
		if _, err := fmt.Fprintln(out, file); err != nil {
			return err
		}
	}
	return nil
}

func listReleases(ctx context.Context, client *github.Client, format string, out io.Writer) error {
	releases, err := client.ListReleases(ctx)
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case config.FormatYaml:
		data, err = yaml.Marshal(releases)
	default:
		data, err = json.MarshalIndent(releases, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return errors.Wrapf(err, "couldn't render releases as %s", format)
	}
	_, err = out.Write(data)
	return err
}
