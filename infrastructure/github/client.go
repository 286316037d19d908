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

package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/erni27/imcache"
	"github.com/rs/zerolog/log"

	"github.com/snyk/release-fetch/application/config"
	"github.com/snyk/release-fetch/internal/constants"
)

const maxErrorBodySize = 64 << 10

// Client talks to the releases API of a single repository.
type Client struct {
	apiUrl     string
	owner      string
	repo       string
	token      string
	userAgent  string
	httpClient func() *http.Client
	cacheTTL   time.Duration
	cache      *imcache.Cache[string, []byte]
}

// NewClient takes the repository, API endpoint, token and cache settings from c. The token is captured at
// construction, the client never consults the environment.
func NewClient(c *config.Config, httpClient func() *http.Client) (*Client, error) {
	owner, repo, err := c.RepositoryOwnerAndName()
	if err != nil {
		return nil, err
	}
	client := &Client{
		apiUrl:     c.ApiUrl(),
		owner:      owner,
		repo:       repo,
		token:      c.Token(),
		userAgent:  "release-fetch/" + config.Version,
		httpClient: httpClient,
		cacheTTL:   c.CacheTTL(),
	}
	if client.cacheTTL > 0 {
		client.cache = imcache.New[string, []byte]()
	}
	return client, nil
}

func (c *Client) Repository() string { return c.owner + "/" + c.repo }

func (c *Client) repositoryURL(path string) string {
	return fmt.Sprintf("%s/repos/%s/%s/%s", c.apiUrl, c.owner, c.repo, path)
}

// Get returns the body of a successful GET request.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	body, _, err := c.Open(ctx, url)
	if err != nil {
		return nil, err
	}
	defer func(body io.ReadCloser) { _ = body.Close() }(body)

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	return data, nil
}

// Open returns the body stream of a successful GET request and its announced length (-1 if unknown).
// The caller must close the body.
func (c *Client) Open(ctx context.Context, url string) (io.ReadCloser, int64, error) {
	logger := log.With().Str("method", "Open").Str("url", url).Logger()

	req, err := c.newRequest(ctx, url)
	if err != nil {
		return nil, 0, err
	}

	logger.Trace().Bool("authenticated", c.token != "").Msg("sending request")
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, 0, &TransportError{URL: url, Err: err}
	}
	logger.Trace().Str("response_status", resp.Status).Msg("received")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		defer func(body io.ReadCloser) { _ = body.Close() }(resp.Body)
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return nil, 0, &TransportError{URL: url, StatusCode: resp.StatusCode, Status: resp.Status, Body: string(body)}
	}
	return resp.Body, resp.ContentLength, nil
}

func (c *Client) newRequest(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", constants.GITHUB_API_MEDIA_TYPE)
	req.Header.Set("User-Agent", c.userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}
	return req, nil
}

// getMetadata is Get with a response cache for API documents.
func (c *Client) getMetadata(ctx context.Context, url string) ([]byte, error) {
	if c.cache != nil {
		if data, ok := c.cache.Get(url); ok {
			log.Trace().Str("method", "getMetadata").Str("url", url).Msg("cache hit")
			return data, nil
		}
	}
	data, err := c.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	if c.cache != nil {
		c.cache.Set(url, data, imcache.WithExpiration(c.cacheTTL))
	}
	return data, nil
}
