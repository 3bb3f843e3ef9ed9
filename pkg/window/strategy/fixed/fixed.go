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

// Package fixed implements Fixed windows. Fixed windows (sometimes called tumbling windows) are
// defined by a static window size, e.g. minutely windows or hourly windows. They are aligned, i.e. every
// window applies across all the data for the corresponding period of time, and an optional offset phases
// the whole grid out from the unix epoch.
package fixed

import (
	"time"

	"github.com/streamproj/streamwin/pkg/window"
)

// Windower assigns each event time to exactly one window of a fixed length.
// Windower is immutable once constructed.
type Windower struct {
	// length is the temporal length of the window.
	length time.Duration
	// offset phases the window grid out from the unix epoch, in [0, length).
	offset time.Duration
}

var _ window.Assigner = (*Windower)(nil)

// Option customizes the windower.
type Option func(*Windower)

// WithOffset phases the window boundaries out from the unix epoch by the
// given duration.
func WithOffset(offset time.Duration) Option {
	return func(w *Windower) {
		w.offset = offset
	}
}

// NewWindower returns a fixed windower for the given window length. It
// returns a *window.ConfigError when the length is not positive or the
// offset is outside [0, length).
func NewWindower(length time.Duration, opts ...Option) (*Windower, error) {
	w := &Windower{length: length}
	for _, opt := range opts {
		opt(w)
	}
	if w.length <= 0 {
		return nil, &window.ConfigError{Strategy: window.Fixed, Message: "length must be positive"}
	}
	if w.offset < 0 || w.offset >= w.length {
		return nil, &window.ConfigError{Strategy: window.Fixed, Message: "offset must be in [0, length)"}
	}
	return w, nil
}

// Strategy returns the window strategy.
func (w *Windower) Strategy() window.Strategy {
	return window.Fixed
}

// AssignWindows assigns a window for the given event time.
// Assignment follows a left inclusive and right exclusive principle, so any
// element exactly on a boundary falls into the window to the right of the
// boundary.
func (w *Windower) AssignWindows(eventTime time.Time) []window.IntervalWindow {
	start := window.GridStart(eventTime, w.length, w.offset)
	return []window.IntervalWindow{
		window.NewIntervalWindow(start, start.Add(w.length)),
	}
}
