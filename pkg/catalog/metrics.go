// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package catalog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reloadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "brewbook_catalog_reload_duration_seconds",
			Help:    "Duration of catalog resolution in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	catalogRecipes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "brewbook_catalog_recipes",
			Help: "Number of resolved recipes in the most recently loaded catalog",
		},
	)

	danglingBases = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "brewbook_catalog_dangling_base_refs_total",
			Help: "Total number of recipes referencing a base that does not exist",
		},
	)

	loadFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "brewbook_catalog_load_failures_total",
			Help: "Total number of dataset loads that failed",
		},
	)

	filterResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "brewbook_catalog_filter_total",
			Help: "Total number of filter evaluations by outcome",
		},
		[]string{"result"},
	)
)
