// Copyright 2024-2025 NetCracker Technology Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var WSBranchSessionCount = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "pandamonium_ws_branch_session_count",
		Help: "ws branch sessions count.",
	},
	[]string{},
)

var TotalRequests = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "pandamonium_http_requests_total",
		Help: "Number of get requests.",
	},
	[]string{"path", "code", "method"},
)

var HttpDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name: "pandamonium_http_request_duration_seconds_historgram",
		Buckets: []float64{
			0.1, // 100 ms
			0.2,
			0.25,
			0.5,
			1,
			1.5,
			3,
			5,
			10,
		},
	},
	[]string{"path", "code", "method"},
)

var ActiveSessionCount = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "pandamonium_active_session_count",
		Help: "Authenticated sessions currently held in the session store.",
	},
	[]string{},
)

var MessagesSentCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "pandamonium_messages_sent_total",
		Help: "Messages accepted into branches.",
	},
	[]string{},
)

func RegisterAllPrometheusApplicationMetrics() {
	prometheus.Register(TotalRequests)
	prometheus.Register(HttpDuration)
	prometheus.Register(WSBranchSessionCount)
	prometheus.Register(ActiveSessionCount)
	prometheus.Register(MessagesSentCount)
}
