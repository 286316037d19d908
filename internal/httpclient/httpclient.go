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

package httpclient

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

// NewHTTPClient returns a client honouring the proxy environment. It has no timeout, requests are bounded by
// their context only.
func NewHTTPClient(apiUrl string) *http.Client {
	tr := http.DefaultTransport.(*http.Transport).Clone()
	method := "NewHTTPClient"
	client := &http.Client{Transport: tr}

	req, err := http.NewRequest(http.MethodGet, apiUrl, nil)
	if err != nil {
		log.Err(err).Str("method", method).Send()
		return client
	}
	proxy, err := tr.Proxy(req)
	if err != nil {
		log.Err(err).Str("method", method).Send()
	}
	if proxy != nil {
		log.Info().Str("method", method).Str("proxy", redactProxy(proxy.String())).Msg("created http client with proxy support")
	}
	return client
}

func redactProxy(proxy string) string {
	proxySplit := strings.Split(proxy, "@")
	if len(proxySplit) > 1 {
		return "xxx@" + proxySplit[len(proxySplit)-1]
	}
	return proxySplit[0]
}
