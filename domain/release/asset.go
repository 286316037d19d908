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

package release

import (
	"golang.org/x/exp/slices"
)

type Asset struct {
	Name string
	URL  string
}

// Assets maps asset names to download URLs and keeps the order in which the API listed them.
// The zero value is an empty map ready to use.
type Assets struct {
	entries []Asset
	index   map[string]int
}

func NewAssets(assets ...Asset) Assets {
	a := Assets{}
	for _, asset := range assets {
		a.Add(asset.Name, asset.URL)
	}
	return a
}

// Add inserts name. A name that is already present keeps its position and gets the new URL.
func (a *Assets) Add(name, url string) {
	if a.index == nil {
		a.index = make(map[string]int)
	}
	if i, ok := a.index[name]; ok {
		a.entries[i].URL = url
		return
	}
	a.index[name] = len(a.entries)
	a.entries = append(a.entries, Asset{Name: name, URL: url})
}

func (a Assets) Lookup(name string) (string, bool) {
	i, ok := a.index[name]
	if !ok {
		return "", false
	}
	return a.entries[i].URL, true
}

func (a Assets) Len() int { return len(a.entries) }

func (a Assets) All() []Asset { return slices.Clone(a.entries) }

func (a Assets) Names() []string {
	names := make([]string, 0, len(a.entries))
	for _, e := range a.entries {
		names = append(names, e.Name)
	}
	return names
}
