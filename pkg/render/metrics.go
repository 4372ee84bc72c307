// Copyright (c) 2026, The StatusKit Authors.  All rights reserved.
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

package render

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Render pass metrics
	renderTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "statuskit_render_total",
			Help: "Total number of render passes",
		},
		[]string{"mode", "status"}, // success, error or not_found
	)

	renderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "statuskit_render_duration_seconds",
			Help:    "Time taken by a complete render pass",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		},
		[]string{"mode"},
	)

	providerFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "statuskit_provider_render_failures_total",
			Help: "Total number of provider render failures surfaced inline",
		},
	)

	attachmentFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "statuskit_attachment_failures_total",
			Help: "Total number of attachment open or copy failures",
		},
	)
)
