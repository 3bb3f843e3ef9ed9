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

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// IntervalWindow is a half-open span of event time [Start, End).
// An element with event time t belongs to the window iff Start <= t < End.
// IntervalWindow is a value type; operations that change a window return a
// new value and never mutate the receiver.
type IntervalWindow struct {
	// Start is the start time of the window, inclusive.
	Start time.Time
	// End is the end time of the window, exclusive.
	End time.Time
}

// NewIntervalWindow returns an IntervalWindow for the given boundaries.
func NewIntervalWindow(start time.Time, end time.Time) IntervalWindow {
	return IntervalWindow{Start: start, End: end}
}

// StartTime returns the start time of the window.
func (iw IntervalWindow) StartTime() time.Time {
	return iw.Start
}

// EndTime returns the end time of the window.
func (iw IntervalWindow) EndTime() time.Time {
	return iw.End
}

// Duration returns the temporal length of the window.
func (iw IntervalWindow) Duration() time.Duration {
	return iw.End.Sub(iw.Start)
}

// Contains returns true when t falls inside the window.
// Assignment follows a left inclusive and right exclusive principle, so an
// element exactly on the boundary falls into the window to the right of it.
func (iw IntervalWindow) Contains(t time.Time) bool {
	return !t.Before(iw.Start) && t.Before(iw.End)
}

// Overlaps returns true when this window and r share at least one instant.
// Adjacent windows ([a,b) and [b,c)) do not overlap.
func (iw IntervalWindow) Overlaps(r IntervalWindow) bool {
	return iw.Start.Before(r.End) && r.Start.Before(iw.End)
}

// Union returns the smallest window covering both this window and r.
func (iw IntervalWindow) Union(r IntervalWindow) IntervalWindow {
	u := iw
	if r.Start.Before(u.Start) {
		u.Start = r.Start
	}
	if r.End.After(u.End) {
		u.End = r.End
	}
	return u
}

// Equal returns true when both boundaries match. Windows are compared by
// value, never by identity.
func (iw IntervalWindow) Equal(r IntervalWindow) bool {
	return iw.Start.Equal(r.Start) && iw.End.Equal(r.End)
}

func (iw IntervalWindow) String() string {
	return fmt.Sprintf("[%d,%d)", iw.Start.UnixMilli(), iw.End.UnixMilli())
}

// intervalWindowJSON is the persisted form of a window, a (start, end) pair
// in unix milliseconds.
type intervalWindowJSON struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

// MarshalJSON implements json.Marshaler.
func (iw IntervalWindow) MarshalJSON() ([]byte, error) {
	return json.Marshal(intervalWindowJSON{Start: iw.Start.UnixMilli(), End: iw.End.UnixMilli()})
}

// UnmarshalJSON implements json.Unmarshaler.
func (iw *IntervalWindow) UnmarshalJSON(data []byte) error {
	var v intervalWindowJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	iw.Start = time.UnixMilli(v.Start)
	iw.End = time.UnixMilli(v.End)
	return nil
}

// GridStart returns the start of the grid-aligned interval containing t,
// where intervals of length step are phased out from the unix epoch by
// offset. The result is the largest grid point at or below t, which holds
// for timestamps before the epoch as well (floor division, not truncation).
// The math runs in nanoseconds, so any positive step is exact.
func GridStart(t time.Time, step time.Duration, offset time.Duration) time.Time {
	stepNs := step.Nanoseconds()
	offsetNs := offset.Nanoseconds()
	d := t.UnixNano() - offsetNs
	k := d / stepNs
	if d < 0 && d%stepNs != 0 {
		k--
	}
	return time.Unix(0, offsetNs+k*stepNs)
}
