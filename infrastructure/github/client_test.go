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
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snyk/release-fetch/application/config"
	"github.com/snyk/release-fetch/domain/release"
	"github.com/snyk/release-fetch/internal/testutil"
)

func newTestClient(t *testing.T, c *config.Config, server *httptest.Server) *Client {
	t.Helper()
	c.SetApiUrl(server.URL)
	client, err := NewClient(c, server.Client)
	require.NoError(t, err)
	return client
}

func TestClient_Get_SendsApiHeaders(t *testing.T) {
	c := testutil.UnitTest(t)
	var received http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received = r.Header.Clone()
		_, _ = w.Write([]byte("payload"))
	}))
	t.Cleanup(server.Close)
	client := newTestClient(t, c, server)

	body, err := client.Get(context.Background(), server.URL+"/anything")

	require.NoError(t, err)
	assert.Equal(t, "payload", string(body))
	assert.Equal(t, "application/vnd.github.v3+json", received.Get("Accept"))
	assert.Equal(t, "release-fetch/"+config.Version, received.Get("User-Agent"))
	assert.NotContains(t, received, "Authorization")
}

func TestClient_Get_AddsTokenWhenConfigured(t *testing.T) {
	c := testutil.UnitTest(t)
	c.SetToken("secret")
	var authorization string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization = r.Header.Get("Authorization")
	}))
	t.Cleanup(server.Close)
	client := newTestClient(t, c, server)

	_, err := client.Get(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, "token secret", authorization)
}

func TestClient_Get_TokenIsCapturedAtConstruction(t *testing.T) {
	c := testutil.UnitTest(t)
	t.Setenv(config.GithubPatKey, "from-env")
	var authorization string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization = r.Header.Get("Authorization")
	}))
	t.Cleanup(server.Close)
	client := newTestClient(t, c, server)

	_, err := client.Get(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Empty(t, authorization)
}

func TestClient_Get_NonSuccessStatusIsTransportError(t *testing.T) {
	c := testutil.UnitTest(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"API rate limit exceeded"}`))
	}))
	t.Cleanup(server.Close)
	client := newTestClient(t, c, server)

	_, err := client.Get(context.Background(), server.URL+"/limited")

	var transportError *TransportError
	require.ErrorAs(t, err, &transportError)
	assert.Equal(t, http.StatusForbidden, transportError.StatusCode)
	assert.Equal(t, server.URL+"/limited", transportError.URL)
	assert.Contains(t, transportError.Body, "rate limit")
	assert.Contains(t, err.Error(), "403")
}

func TestClient_Get_NetworkFailureIsTransportError(t *testing.T) {
	c := testutil.UnitTest(t)
	server := httptest.NewServer(http.NotFoundHandler())
	client := newTestClient(t, c, server)
	server.Close()

	_, err := client.Get(context.Background(), server.URL)

	var transportError *TransportError
	require.ErrorAs(t, err, &transportError)
	assert.Zero(t, transportError.StatusCode)
	assert.Error(t, transportError.Err)
}

func TestClient_Get_CancelledContext(t *testing.T) {
	c := testutil.UnitTest(t)
	server := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(server.Close)
	client := newTestClient(t, c, server)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Get(ctx, server.URL)

	assert.True(t, errors.Is(err, context.Canceled))
}

func TestClient_Open_ReturnsLength(t *testing.T) {
	c := testutil.UnitTest(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "5")
		_, _ = w.Write([]byte("bytes"))
	}))
	t.Cleanup(server.Close)
	client := newTestClient(t, c, server)

	body, length, err := client.Open(context.Background(), server.URL)

	require.NoError(t, err)
	t.Cleanup(func() { _ = body.Close() })
	assert.Equal(t, int64(5), length)
}

func TestNewClient_RejectsMalformedRepository(t *testing.T) {
	testutil.UnitTest(t)
	t.Setenv("RELEASE_FETCH_REPOSITORY", "no-slash")
	c := config.New()

	_, err := NewClient(c, func() *http.Client { return http.DefaultClient })

	assert.ErrorIs(t, err, release.ErrInvalidArgument)
}
