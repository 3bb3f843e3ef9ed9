/*
Copyright 2022 The Numaproj Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const labelStrategy = "strategy"

// elementsProcessedCount is used to indicate the number of elements windowed
var elementsProcessedCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Subsystem: "windowing_engine",
	Name:      "elements_total",
	Help:      "Total number of elements processed",
}, []string{labelStrategy})

// windowsCreatedCount is used to indicate the number of window entries created
var windowsCreatedCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Subsystem: "windowing_engine",
	Name:      "windows_created_total",
	Help:      "Total number of windows created",
}, []string{labelStrategy})

// windowMergesCount is used to indicate the number of merge events
var windowMergesCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Subsystem: "windowing_engine",
	Name:      "window_merges_total",
	Help:      "Total number of window groups merged",
}, []string{labelStrategy})

// windowsEvictedCount is used to indicate the number of windows evicted
var windowsEvictedCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Subsystem: "windowing_engine",
	Name:      "windows_evicted_total",
	Help:      "Total number of windows evicted",
}, []string{labelStrategy})
