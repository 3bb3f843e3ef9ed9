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

// Package sliding implements Sliding windows. Sliding windows are defined by a static window size
// and a slide, the duration by which the boundaries of successive windows are phased out. When the
// slide is smaller than the length, windows overlap and one element belongs to several of them.
// A slide larger than the length is legal too: it produces gaps where some event times fall in no
// window at all, which is a sparse-sampling configuration and not an error.
package sliding

import (
	"time"

	"github.com/streamproj/streamwin/pkg/window"
)

// Windower assigns each event time to every sliding window containing it.
// Windower is immutable once constructed.
type Windower struct {
	// length is the temporal length of each window.
	length time.Duration
	// slide is the duration between the start times of successive windows.
	slide time.Duration
	// offset phases the window grid out from the unix epoch, in [0, slide).
	offset time.Duration
}

var _ window.Assigner = (*Windower)(nil)

// Option customizes the windower.
type Option func(*Windower)

// WithOffset phases the window start times out from the unix epoch by the
// given duration.
func WithOffset(offset time.Duration) Option {
	return func(w *Windower) {
		w.offset = offset
	}
}

// NewWindower returns a sliding windower for the given window length and
// slide. It returns a *window.ConfigError when either is not positive or the
// offset is outside [0, slide).
func NewWindower(length time.Duration, slide time.Duration, opts ...Option) (*Windower, error) {
	w := &Windower{length: length, slide: slide}
	for _, opt := range opts {
		opt(w)
	}
	if w.length <= 0 {
		return nil, &window.ConfigError{Strategy: window.Sliding, Message: "length must be positive"}
	}
	if w.slide <= 0 {
		return nil, &window.ConfigError{Strategy: window.Sliding, Message: "slide must be positive"}
	}
	if w.offset < 0 || w.offset >= w.slide {
		return nil, &window.ConfigError{Strategy: window.Sliding, Message: "offset must be in [0, slide)"}
	}
	return w, nil
}

// Strategy returns the window strategy.
func (w *Windower) Strategy() window.Strategy {
	return window.Sliding
}

// AssignWindows returns the set of windows that contain the element based on
// its event time, in ascending start-time order. The bounding window starts
// are computed directly from the slide grid rather than by scanning.
func (w *Windower) AssignWindows(eventTime time.Time) []window.IntervalWindow {
	windows := make([]window.IntervalWindow, 0)

	// last is the largest grid start at or below the event time. Walking
	// back one slide at a time from it, the earliest window still containing
	// the element is the first grid start after eventTime-length.
	last := window.GridStart(eventTime, w.slide, w.offset)
	earliest := window.GridStart(eventTime.Add(-w.length), w.slide, w.offset).Add(w.slide)

	// Since there is overlap at the boundaries we attribute the element to
	// the window to the right (higher) of the boundary: left inclusive and
	// right exclusive. So given windows 500-600 and 600-700 and an event
	// time of 600, the element belongs to 600-700 and not to 500-600.
	for start := earliest; !start.After(last); start = start.Add(w.slide) {
		end := start.Add(w.length)
		if end.After(eventTime) {
			windows = append(windows, window.NewIntervalWindow(start, end))
		}
	}

	return windows
}
