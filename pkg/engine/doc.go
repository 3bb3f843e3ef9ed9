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

// Package engine orchestrates windowing for a keyed stream. For every
// incoming (key, event time, element) it resolves the candidate windows via
// the configured window.Assigner, records the element in the key's window
// set, and, for merging strategies, collapses overlapping windows and
// reports the merge provenance so the aggregation layer above can move its
// per-window state.
//
// Each key's window set is an independent single-writer resource guarded by
// its own lock; operations on different keys proceed in parallel with no
// ordering constraint between them. The engine does not decide when a window
// is complete - watermarking, triggering and expiry timing belong to the
// caller, which evicts windows explicitly.
package engine
