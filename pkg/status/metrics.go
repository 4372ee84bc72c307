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

package status

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Provider cache metrics
	cacheRebuilds = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "statuskit_provider_cache_rebuilds_total",
			Help: "Total number of provider cache rebuilds",
		},
	)

	cachedProviders = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "statuskit_providers",
			Help: "Number of providers in the current cache snapshot",
		},
	)
)
