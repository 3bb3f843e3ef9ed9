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

// Package window implements windowing constructs. In the world of data processing on an unbounded stream, windowing
// is a concept of grouping data using temporal boundaries. We use event-time to discover temporal boundaries on an
// unbounded, infinite stream; a reduce function can later be applied on each group of data.
//
// Windowing is implemented as a two stage process,
//   - Assign windows - map the event time of an element to one or more windows
//   - Merge windows - collapse overlapping windows into their union, for the strategies that permit it
//
// The two stage approach is required because assignment happens as elements stream in, while merging can keep
// reshaping a key's windows until the data is materialized. This matters most for session windows, where a single
// late element can bridge two windows that were previously far apart.
//
// Windows may be either aligned (Fixed, Sliding, Global), i.e. applied across all the data for the window of time in
// question, or unaligned (Session), i.e. applied across only specific subsets of the data (e.g. per key) for the
// given window of time.
//
// All window arithmetic is done in nanoseconds on the unix epoch grid.
package window
