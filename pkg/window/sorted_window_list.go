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
	"sort"
	"sync"
	"time"
)

// TimedWindow is anything that spans [StartTime, EndTime). Two timed windows
// are considered the same entry when both boundaries match.
type TimedWindow interface {
	StartTime() time.Time
	EndTime() time.Time
}

// SortedWindowList is a thread safe list implementation, which is sorted by
// window start time from lowest to highest.
type SortedWindowList[W TimedWindow] struct {
	windows []W
	lock    *sync.RWMutex
}

// NewSortedWindowList implements a window list ordered by the start time. The Front/Head of the list will always have
// the smallest element while the End/Tail will have the largest element (start time).
func NewSortedWindowList[W TimedWindow]() *SortedWindowList[W] {
	return &SortedWindowList[W]{
		windows: make([]W, 0),
		lock:    &sync.RWMutex{},
	}
}

// Insert inserts a window into the list, keeping the start-time order.
func (s *SortedWindowList[W]) Insert(window W) {
	s.lock.Lock()
	defer s.lock.Unlock()

	index := sort.Search(len(s.windows), func(i int) bool {
		return !s.windows[i].StartTime().Before(window.StartTime())
	})

	if index == len(s.windows) {
		s.windows = append(s.windows, window)
		return
	}

	s.windows = append(s.windows[:index+1], s.windows[index:]...)
	s.windows[index] = window
}

// InsertIfNotPresent inserts a window into the list if no entry with the same
// boundaries is present, and returns the resident entry along with whether it
// was already present.
func (s *SortedWindowList[W]) InsertIfNotPresent(window W) (W, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	index := sort.Search(len(s.windows), func(i int) bool {
		return !s.windows[i].StartTime().Before(window.StartTime())
	})

	updatedIndex := index

	for i := index; i < len(s.windows); i++ {
		if s.windows[i].StartTime().Equal(window.StartTime()) && s.windows[i].EndTime().Equal(window.EndTime()) {
			return s.windows[i], true
		}

		if s.windows[i].StartTime().After(window.StartTime()) {
			updatedIndex = i
			break
		}
	}

	s.windows = append(s.windows, window)
	copy(s.windows[updatedIndex+1:], s.windows[updatedIndex:])
	s.windows[updatedIndex] = window

	return window, false
}

// Delete deletes the entry with the same boundaries as window from the list.
func (s *SortedWindowList[W]) Delete(window W) (deleted W, found bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	index := sort.Search(len(s.windows), func(i int) bool {
		return !s.windows[i].StartTime().Before(window.StartTime())
	})

	for i := index; i < len(s.windows); i++ {
		if s.windows[i].StartTime().Equal(window.StartTime()) && s.windows[i].EndTime().Equal(window.EndTime()) {
			deleted = s.windows[i]
			s.windows = append(s.windows[:i], s.windows[i+1:]...)
			found = true
			break
		}

		if s.windows[i].StartTime().After(window.StartTime()) {
			break
		}
	}
	return deleted, found
}

// Get returns the entry with the same boundaries as window, if present.
func (s *SortedWindowList[W]) Get(window W) (W, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	index := sort.Search(len(s.windows), func(i int) bool {
		return !s.windows[i].StartTime().Before(window.StartTime())
	})

	for i := index; i < len(s.windows); i++ {
		if s.windows[i].StartTime().Equal(window.StartTime()) && s.windows[i].EndTime().Equal(window.EndTime()) {
			return s.windows[i], true
		}

		if s.windows[i].StartTime().After(window.StartTime()) {
			break
		}
	}

	var empty W
	return empty, false
}

// RemoveWindowsBefore removes and returns the windows whose end time is not
// after the given time, i.e. the windows a watermark at t has fully passed.
func (s *SortedWindowList[W]) RemoveWindowsBefore(t time.Time) []W {
	s.lock.Lock()
	defer s.lock.Unlock()

	removed := make([]W, 0)
	kept := s.windows[:0]
	for _, win := range s.windows {
		if win.EndTime().After(t) {
			kept = append(kept, win)
		} else {
			removed = append(removed, win)
		}
	}
	s.windows = kept

	return removed
}

// FindWindowForTime returns the first window containing t, if any.
func (s *SortedWindowList[W]) FindWindowForTime(t time.Time) (W, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	for _, win := range s.windows {
		if win.StartTime().After(t) {
			break
		}
		if win.EndTime().After(t) {
			return win, true
		}
	}

	var empty W
	return empty, false
}

// Len returns the length of the list.
func (s *SortedWindowList[W]) Len() int {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return len(s.windows)
}

// Front returns the element with the smallest start time.
func (s *SortedWindowList[W]) Front() (W, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	var front W
	if len(s.windows) == 0 {
		return front, false
	}
	return s.windows[0], true
}

// Back returns the element with the largest start time.
func (s *SortedWindowList[W]) Back() (W, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	var back W
	if len(s.windows) == 0 {
		return back, false
	}
	return s.windows[len(s.windows)-1], true
}

// Items returns a copy of the entire window list.
func (s *SortedWindowList[W]) Items() []W {
	s.lock.RLock()
	defer s.lock.RUnlock()

	items := make([]W, len(s.windows))
	copy(items, s.windows)

	return items
}
