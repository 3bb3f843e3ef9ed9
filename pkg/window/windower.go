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

package window

import "time"

// Strategy represents the windowing strategy. The set of strategies is
// closed; the engine switches exhaustively over it, so adding a strategy is
// a compile-time visible change.
type Strategy int

const (
	Fixed Strategy = iota
	Sliding
	Session
	Global
)

func (s Strategy) String() string {
	switch s {
	case Fixed:
		return "Fixed"
	case Sliding:
		return "Sliding"
	case Session:
		return "Session"
	case Global:
		return "Global"
	default:
		return "Unknown"
	}
}

// Assigner maps the event time of a single element to the set of windows the
// element belongs to. Assignment is deterministic and stateless: the same
// event time always yields the same windows regardless of history.
type Assigner interface {
	// Strategy returns the window strategy.
	Strategy() Strategy
	// AssignWindows assigns the event time to windows based on the window
	// configuration.
	AssignWindows(eventTime time.Time) []IntervalWindow
}

// Merger is an Assigner whose windows can grow by absorbing overlapping
// neighbors. Session is the only merging strategy.
type Merger interface {
	Assigner
	// MergeWindows collapses every group of transitively overlapping windows
	// into its union and returns the resulting pairwise-disjoint set, sorted
	// by start time, together with one MergeEvent per collapsed group. The
	// result is a fixpoint: merging it again is a no-op. Windows that overlap
	// nothing pass through unreported.
	MergeWindows(windows []IntervalWindow) ([]IntervalWindow, []MergeEvent)
}

// MergeEvent records the provenance of one merge: the windows that were
// dissolved and the union window that replaced them. Callers use it to move
// any per-window state they keep onto the result window.
type MergeEvent struct {
	// Dissolved is the group of two or more windows that were collapsed.
	Dissolved []IntervalWindow
	// Result is the union window replacing the dissolved group.
	Result IntervalWindow
}
