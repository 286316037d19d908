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
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/snyk/release-fetch/domain/release"
)

// Release is the part of the releases API document that is needed to locate assets.
type Release struct {
	TagName     string         `json:"tag_name"`
	Name        string         `json:"name"`
	Draft       bool           `json:"draft"`
	Prerelease  bool           `json:"prerelease"`
	PublishedAt time.Time      `json:"published_at"`
	HTMLURL     string         `json:"html_url"`
	Assets      []ReleaseAsset `json:"assets"`
}

type ReleaseAsset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
	Size               int64  `json:"size"`
	ContentType        string `json:"content_type"`
}

func (c *Client) GetRelease(ctx context.Context, ref release.Reference) (*Release, error) {
	releaseURL := c.repositoryURL(ref.Path())
	log.Debug().Str("method", "GetRelease").Str("url", releaseURL).Msgf("requesting %s of %s", ref, c.Repository())

	body, err := c.getMetadata(ctx, releaseURL)
	if err != nil {
		return nil, err
	}

	r := Release{}
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, errors.Wrapf(err, "unable to unmarshal release from %q", releaseURL)
	}
	if r.TagName == "" {
		return nil, errors.Errorf("release from %q carries no tag_name", releaseURL)
	}
	return &r, nil
}

// ResolveRelease returns the canonical tag of the referenced release and its assets in API order.
func (c *Client) ResolveRelease(ctx context.Context, ref release.Reference) (string, release.Assets, error) {
	r, err := c.GetRelease(ctx, ref)
	if err != nil {
		return "", release.Assets{}, err
	}
	assets := release.Assets{}
	for _, asset := range r.Assets {
		assets.Add(asset.Name, asset.BrowserDownloadURL)
	}
	log.Debug().Str("method", "ResolveRelease").Str("tag", r.TagName).Int("assets", assets.Len()).Msg("resolved")
	return r.TagName, assets, nil
}

// ListReleases returns the first page of the release collection exactly as the API sent it.
func (c *Client) ListReleases(ctx context.Context) ([]map[string]any, error) {
	releasesURL := c.repositoryURL("releases")
	log.Debug().Str("method", "ListReleases").Str("url", releasesURL).Msg("requesting releases")

	body, err := c.getMetadata(ctx, releasesURL)
	if err != nil {
		return nil, err
	}

	var releases []map[string]any
	if err := json.Unmarshal(body, &releases); err != nil {
		return nil, errors.Wrapf(err, "unable to unmarshal releases from %q", releasesURL)
	}
	return releases, nil
}
