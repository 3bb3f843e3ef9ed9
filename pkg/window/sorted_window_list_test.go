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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func listOf(windows ...IntervalWindow) *SortedWindowList[IntervalWindow] {
	l := NewSortedWindowList[IntervalWindow]()
	for _, w := range windows {
		l.Insert(w)
	}
	return l
}

func TestSortedWindowList_Insert(t *testing.T) {
	tests := []struct {
		name     string
		given    []IntervalWindow
		input    IntervalWindow
		expected []IntervalWindow
	}{
		{
			name:     "first_window",
			given:    []IntervalWindow{},
			input:    NewIntervalWindow(time.Unix(0, 0), time.Unix(60, 0)),
			expected: []IntervalWindow{NewIntervalWindow(time.Unix(0, 0), time.Unix(60, 0))},
		},
		{
			name: "late_window_goes_front",
			given: []IntervalWindow{
				NewIntervalWindow(time.Unix(120, 0), time.Unix(180, 0)),
			},
			input: NewIntervalWindow(time.Unix(0, 0), time.Unix(60, 0)),
			expected: []IntervalWindow{
				NewIntervalWindow(time.Unix(0, 0), time.Unix(60, 0)),
				NewIntervalWindow(time.Unix(120, 0), time.Unix(180, 0)),
			},
		},
		{
			name: "early_window_goes_back",
			given: []IntervalWindow{
				NewIntervalWindow(time.Unix(0, 0), time.Unix(60, 0)),
			},
			input: NewIntervalWindow(time.Unix(120, 0), time.Unix(180, 0)),
			expected: []IntervalWindow{
				NewIntervalWindow(time.Unix(0, 0), time.Unix(60, 0)),
				NewIntervalWindow(time.Unix(120, 0), time.Unix(180, 0)),
			},
		},
		{
			name: "middle_window",
			given: []IntervalWindow{
				NewIntervalWindow(time.Unix(0, 0), time.Unix(60, 0)),
				NewIntervalWindow(time.Unix(120, 0), time.Unix(180, 0)),
			},
			input: NewIntervalWindow(time.Unix(60, 0), time.Unix(120, 0)),
			expected: []IntervalWindow{
				NewIntervalWindow(time.Unix(0, 0), time.Unix(60, 0)),
				NewIntervalWindow(time.Unix(60, 0), time.Unix(120, 0)),
				NewIntervalWindow(time.Unix(120, 0), time.Unix(180, 0)),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := listOf(tt.given...)
			l.Insert(tt.input)
			assert.Equal(t, tt.expected, l.Items())
		})
	}
}

func TestSortedWindowList_InsertIfNotPresent(t *testing.T) {
	l := listOf(
		NewIntervalWindow(time.Unix(0, 0), time.Unix(60, 0)),
	)

	existing, present := l.InsertIfNotPresent(NewIntervalWindow(time.Unix(0, 0), time.Unix(60, 0)))
	assert.True(t, present)
	assert.True(t, existing.Equal(NewIntervalWindow(time.Unix(0, 0), time.Unix(60, 0))))
	assert.Equal(t, 1, l.Len())

	inserted, present := l.InsertIfNotPresent(NewIntervalWindow(time.Unix(60, 0), time.Unix(120, 0)))
	assert.False(t, present)
	assert.True(t, inserted.Equal(NewIntervalWindow(time.Unix(60, 0), time.Unix(120, 0))))
	assert.Equal(t, 2, l.Len())

	// same start, different end is a different entry
	_, present = l.InsertIfNotPresent(NewIntervalWindow(time.Unix(0, 0), time.Unix(90, 0)))
	assert.False(t, present)
	assert.Equal(t, 3, l.Len())
}

func TestSortedWindowList_Delete(t *testing.T) {
	l := listOf(
		NewIntervalWindow(time.Unix(0, 0), time.Unix(60, 0)),
		NewIntervalWindow(time.Unix(60, 0), time.Unix(120, 0)),
		NewIntervalWindow(time.Unix(120, 0), time.Unix(180, 0)),
	)

	deleted, found := l.Delete(NewIntervalWindow(time.Unix(60, 0), time.Unix(120, 0)))
	assert.True(t, found)
	assert.True(t, deleted.Equal(NewIntervalWindow(time.Unix(60, 0), time.Unix(120, 0))))
	assert.Equal(t, 2, l.Len())

	_, found = l.Delete(NewIntervalWindow(time.Unix(60, 0), time.Unix(120, 0)))
	assert.False(t, found)
	assert.Equal(t, 2, l.Len())
}

func TestSortedWindowList_Get(t *testing.T) {
	l := listOf(
		NewIntervalWindow(time.Unix(0, 0), time.Unix(60, 0)),
		NewIntervalWindow(time.Unix(0, 0), time.Unix(90, 0)),
		NewIntervalWindow(time.Unix(60, 0), time.Unix(120, 0)),
	)

	got, found := l.Get(NewIntervalWindow(time.Unix(0, 0), time.Unix(90, 0)))
	assert.True(t, found)
	assert.True(t, got.Equal(NewIntervalWindow(time.Unix(0, 0), time.Unix(90, 0))))

	// same start, different end is a different entry
	_, found = l.Get(NewIntervalWindow(time.Unix(0, 0), time.Unix(120, 0)))
	assert.False(t, found)

	_, found = l.Get(NewIntervalWindow(time.Unix(120, 0), time.Unix(180, 0)))
	assert.False(t, found)

	assert.Equal(t, 3, l.Len())
}

func TestSortedWindowList_RemoveWindowsBefore(t *testing.T) {
	l := listOf(
		NewIntervalWindow(time.Unix(0, 0), time.Unix(60, 0)),
		NewIntervalWindow(time.Unix(60, 0), time.Unix(120, 0)),
		NewIntervalWindow(time.Unix(120, 0), time.Unix(180, 0)),
	)

	removed := l.RemoveWindowsBefore(time.Unix(120, 0))
	assert.Equal(t, []IntervalWindow{
		NewIntervalWindow(time.Unix(0, 0), time.Unix(60, 0)),
		NewIntervalWindow(time.Unix(60, 0), time.Unix(120, 0)),
	}, removed)
	assert.Equal(t, 1, l.Len())

	// nothing left to remove at the same watermark
	assert.Empty(t, l.RemoveWindowsBefore(time.Unix(120, 0)))
}

func TestSortedWindowList_FindWindowForTime(t *testing.T) {
	l := listOf(
		NewIntervalWindow(time.Unix(0, 0), time.Unix(60, 0)),
		NewIntervalWindow(time.Unix(120, 0), time.Unix(180, 0)),
	)

	win, found := l.FindWindowForTime(time.Unix(130, 0))
	assert.True(t, found)
	assert.True(t, win.Equal(NewIntervalWindow(time.Unix(120, 0), time.Unix(180, 0))))

	// end boundary is exclusive
	_, found = l.FindWindowForTime(time.Unix(60, 0))
	assert.False(t, found)

	_, found = l.FindWindowForTime(time.Unix(200, 0))
	assert.False(t, found)
}

func TestSortedWindowList_FrontBack(t *testing.T) {
	l := NewSortedWindowList[IntervalWindow]()
	_, ok := l.Front()
	assert.False(t, ok)
	_, ok = l.Back()
	assert.False(t, ok)

	l.Insert(NewIntervalWindow(time.Unix(60, 0), time.Unix(120, 0)))
	l.Insert(NewIntervalWindow(time.Unix(0, 0), time.Unix(60, 0)))

	front, ok := l.Front()
	assert.True(t, ok)
	assert.True(t, front.Equal(NewIntervalWindow(time.Unix(0, 0), time.Unix(60, 0))))

	back, ok := l.Back()
	assert.True(t, ok)
	assert.True(t, back.Equal(NewIntervalWindow(time.Unix(60, 0), time.Unix(120, 0))))
}
