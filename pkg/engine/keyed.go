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
	"sort"
	"sync"
	"time"

	"github.com/streamproj/streamwin/pkg/window"
)

// ElementRef is an opaque reference to a buffered element. The engine never
// interprets it; the aggregation layer uses it to locate the element's
// payload when a window fires or is evicted.
type ElementRef string

// entry pairs an open window with the references of the elements buffered in
// it. The window value is immutable; a merge replaces the entry, it never
// mutates it.
type entry struct {
	win  window.IntervalWindow
	refs map[ElementRef]struct{}
}

func newEntry(win window.IntervalWindow) *entry {
	return &entry{
		win:  win,
		refs: make(map[ElementRef]struct{}),
	}
}

func (e *entry) StartTime() time.Time {
	return e.win.Start
}

func (e *entry) EndTime() time.Time {
	return e.win.End
}

func (e *entry) elementRefs() []ElementRef {
	refs := make([]ElementRef, 0, len(e.refs))
	for r := range e.refs {
		refs = append(refs, r)
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i] < refs[j] })
	return refs
}

// keyedWindows is the window set of a single key: its currently open windows
// and the elements buffered in each. All operations must run under mu, which
// makes the key a single-writer resource; the merge pass relies on seeing a
// consistent snapshot of all of the key's windows.
type keyedWindows struct {
	mu      sync.Mutex
	entries *window.SortedWindowList[*entry]
}

func newKeyedWindows() *keyedWindows {
	return &keyedWindows{
		entries: window.NewSortedWindowList[*entry](),
	}
}

// createOrGet returns the entry for win, creating it when absent, and
// reports whether it was created.
func (kw *keyedWindows) createOrGet(win window.IntervalWindow) (*entry, bool) {
	ent, present := kw.entries.InsertIfNotPresent(newEntry(win))
	return ent, !present
}

// applyMerges replaces each dissolved group of entries with a single entry
// for the union window, transferring the buffered element references.
func (kw *keyedWindows) applyMerges(events []window.MergeEvent) {
	for _, ev := range events {
		merged := newEntry(ev.Result)
		for _, d := range ev.Dissolved {
			if ent, found := kw.entries.Delete(newEntry(d)); found {
				for r := range ent.refs {
					merged.refs[r] = struct{}{}
				}
			}
		}
		kw.entries.Insert(merged)
	}
}

// windows returns the key's open windows in start-time order.
func (kw *keyedWindows) windows() []window.IntervalWindow {
	items := kw.entries.Items()
	wins := make([]window.IntervalWindow, len(items))
	for i, ent := range items {
		wins[i] = ent.win
	}
	return wins
}

// find returns the entry with the given boundaries, if present.
func (kw *keyedWindows) find(win window.IntervalWindow) (*entry, bool) {
	return kw.entries.Get(newEntry(win))
}
