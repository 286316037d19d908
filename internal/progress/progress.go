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

package progress

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Kind string

const (
	KindBegin  Kind = "begin"
	KindReport Kind = "report"
	KindEnd    Kind = "end"
)

type Params struct {
	Token      string
	Kind       Kind
	Title      string
	Message    string
	Percentage int
}

// Sink receives every progress event a Tracker emits.
type Sink func(params Params)

type Tracker struct {
	sink           Sink
	token          string
	reportInterval time.Duration
	lastReport     time.Time
	lastPercentage int
	finished       bool
}

func NewTracker(sink Sink) *Tracker {
	if sink == nil {
		sink = LogSink
	}
	return &Tracker{
		sink:           sink,
		reportInterval: time.Second,
	}
}

// NewTestTracker doesn't throttle reports and uses a fixed token.
func NewTestTracker(sink Sink) *Tracker {
	return &Tracker{
		sink: sink,
		// deepcode ignore HardcodedPassword: false positive
		token: "token",
	}
}

func (t *Tracker) Begin(title, message string) {
	if t.token == "" {
		t.token = uuid.New().String()
	}
	t.send(Params{Token: t.token, Kind: KindBegin, Title: title, Message: message})
	t.lastReport = time.Now()
	t.lastPercentage = 0
}

// Report is throttled to one event per report interval and drops repeated percentages.
func (t *Tracker) Report(percentage int) {
	if percentage == t.lastPercentage || time.Now().Before(t.lastReport.Add(t.reportInterval)) {
		return
	}
	t.send(Params{Token: t.token, Kind: KindReport, Percentage: percentage})
	t.lastReport = time.Now()
	t.lastPercentage = percentage
}

func (t *Tracker) End(message string) {
	if t.finished {
		log.Error().Str("method", "End").Str("token", t.token).Msg("progress ended twice")
		return
	}
	t.finished = true
	t.send(Params{Token: t.token, Kind: KindEnd, Message: message, Percentage: 100})
}

func (t *Tracker) GetToken() string {
	return t.token
}

func (t *Tracker) send(params Params) {
	if params.Token == "" {
		log.Error().Str("method", "send").Msg("progress token must be set")
	}
	t.sink(params)
}

// LogSink writes progress to the global logger.
func LogSink(params Params) {
	switch params.Kind {
	case KindBegin:
		log.Info().Str("token", params.Token).Msg(params.Title)
	case KindReport:
		log.Debug().Str("token", params.Token).Int("percentage", params.Percentage).Msg("progress")
	case KindEnd:
		log.Debug().Str("token", params.Token).Msg(params.Message)
	}
}
