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

// Package session implements Session windows, the only merging strategy.
// Every element opens a provisional window [t, t+gap); windows of the same
// key that overlap are collapsed into their union until none overlap. Two
// elements therefore end up in the same session iff they are chained by
// gaps smaller than the configured timeout.
package session

import (
	"sort"
	"time"

	"github.com/streamproj/streamwin/pkg/window"
)

// Windower assigns each event time to a provisional gap-length window and
// merges overlapping windows into sessions. Windower is immutable once
// constructed.
type Windower struct {
	// gap is the inactivity timeout that closes a session.
	gap time.Duration
}

var _ window.Merger = (*Windower)(nil)

// NewWindower returns a session windower for the given gap. It returns a
// *window.ConfigError when the gap is not positive.
func NewWindower(gap time.Duration) (*Windower, error) {
	if gap <= 0 {
		return nil, &window.ConfigError{Strategy: window.Session, Message: "gap must be positive"}
	}
	return &Windower{gap: gap}, nil
}

// Strategy returns the window strategy.
func (w *Windower) Strategy() window.Strategy {
	return window.Session
}

// AssignWindows assigns a single provisional window [t, t+gap) for the given
// event time. The final session boundaries are only known after merging.
func (w *Windower) AssignWindows(eventTime time.Time) []window.IntervalWindow {
	return []window.IntervalWindow{
		window.NewIntervalWindow(eventTime, eventTime.Add(w.gap)),
	}
}

// MergeWindows collapses every group of transitively overlapping windows
// into its union with a single sorted sweep: sort by start time, then walk
// left to right keeping a running window and extending it while the next
// window starts before the running window ends. The sort imposes a canonical
// order, so the resulting disjoint set does not depend on the order elements
// arrived or the order pairs would have been merged, and one pass reaches
// the fixpoint in O(n log n).
func (w *Windower) MergeWindows(windows []window.IntervalWindow) ([]window.IntervalWindow, []window.MergeEvent) {
	if len(windows) == 0 {
		return nil, nil
	}

	sorted := make([]window.IntervalWindow, len(windows))
	copy(sorted, windows)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].Start.Equal(sorted[j].Start) {
			return sorted[i].Start.Before(sorted[j].Start)
		}
		return sorted[i].End.Before(sorted[j].End)
	})

	merged := make([]window.IntervalWindow, 0, len(sorted))
	events := make([]window.MergeEvent, 0)

	running := sorted[0]
	group := []window.IntervalWindow{sorted[0]}
	for _, win := range sorted[1:] {
		if win.Start.Before(running.End) {
			running = running.Union(win)
			group = append(group, win)
			continue
		}
		merged = append(merged, running)
		if len(group) > 1 {
			events = append(events, window.MergeEvent{Dissolved: group, Result: running})
		}
		running = win
		group = []window.IntervalWindow{win}
	}
	merged = append(merged, running)
	if len(group) > 1 {
		events = append(events, window.MergeEvent{Dissolved: group, Result: running})
	}

	return merged, events
}
