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
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/streamproj/streamwin/pkg/window"
)

// ProcessResult reports what one element did to its key's window set.
type ProcessResult struct {
	// WindowsTouched is the post-merge set of windows the element was
	// recorded in. For sliding windows this can be several windows; for a
	// merging strategy it is the session the element ended up in.
	WindowsTouched []window.IntervalWindow
	// Merges is the provenance of the merge pass triggered by this element,
	// one event per group of windows collapsed into one. Empty for
	// non-merging strategies and for elements that did not bridge windows.
	Merges []window.MergeEvent
}

// EvictedWindow is a window removed from a key's window set together with
// the element references that were buffered in it, for the caller to drain.
type EvictedWindow struct {
	Window window.IntervalWindow
	Refs   []ElementRef
}

// Engine assigns elements of a keyed stream to event-time windows using a
// single window.Assigner and maintains one window set per key.
// We don't intend a single Engine to serve multiple windowing strategies;
// create one Engine per strategy instead.
type Engine struct {
	assigner window.Assigner
	keys     map[string]*keyedWindows
	log      *zap.SugaredLogger
	// we need the lock only to access the keys map; every keyedWindows
	// carries its own lock so that keys never serialize behind each other
	sync.RWMutex
}

// New returns an Engine for the given assigner.
// We don't intend this to be called by multiple routines.
func New(ctx context.Context, assigner window.Assigner, opts ...Option) (*Engine, error) {
	if assigner == nil {
		return nil, errors.New("assigner must not be nil")
	}
	engineOpts := defaultOptions(ctx)
	for _, opt := range opts {
		if opt != nil {
			if err := opt(engineOpts); err != nil {
				return nil, err
			}
		}
	}
	return &Engine{
		assigner: assigner,
		keys:     make(map[string]*keyedWindows),
		log:      engineOpts.log,
	}, nil
}

// Process windows a single element. It validates the event time, assigns the
// element to its candidate windows, records ref in each, and for merging
// strategies runs the merge pass for this key until no two windows overlap.
// When ref is empty a fresh reference is generated so the buffered element
// stays addressable. Side effects are confined to the one key's window set;
// a failure aborts only this call and leaves every other key untouched.
func (e *Engine) Process(key string, eventTime time.Time, ref ElementRef) (ProcessResult, error) {
	if eventTime.IsZero() {
		return ProcessResult{}, &window.InvalidTimestampError{Timestamp: eventTime}
	}
	if ref == "" {
		ref = ElementRef(uuid.NewString())
	}

	kw := e.windowsOf(key)
	kw.mu.Lock()
	defer kw.mu.Unlock()

	strategy := e.assigner.Strategy().String()

	assigned := e.assigner.AssignWindows(eventTime)
	touched := make([]window.IntervalWindow, 0, len(assigned))
	for _, win := range assigned {
		ent, created := kw.createOrGet(win)
		ent.refs[ref] = struct{}{}
		if created {
			windowsCreatedCount.WithLabelValues(strategy).Inc()
		}
		touched = append(touched, win)
	}

	var merges []window.MergeEvent
	switch e.assigner.Strategy() {
	case window.Session:
		merged, events := e.assigner.(window.Merger).MergeWindows(kw.windows())
		kw.applyMerges(events)
		merges = events
		windowMergesCount.WithLabelValues(strategy).Add(float64(len(events)))
		if len(events) > 0 {
			e.log.Debugw("Merged windows", zap.String("key", key), zap.Int("activeWindows", len(merged)))
		}
	case window.Fixed, window.Sliding, window.Global:
		// non-merging; sliding windows overlap by design and stay separate
	}

	// an element whose provisional window was dissolved ended up in the
	// union window that replaced it
	for i, win := range touched {
		for _, ev := range merges {
			for _, d := range ev.Dissolved {
				if d.Equal(win) {
					touched[i] = ev.Result
				}
			}
		}
	}

	elementsProcessedCount.WithLabelValues(strategy).Inc()
	return ProcessResult{WindowsTouched: touched, Merges: merges}, nil
}

// WindowsFor returns the open windows of the given key in start-time order.
func (e *Engine) WindowsFor(key string) []window.IntervalWindow {
	kw, ok := e.lookup(key)
	if !ok {
		return nil
	}
	kw.mu.Lock()
	defer kw.mu.Unlock()
	return kw.windows()
}

// Elements returns the references buffered in the given window of the key.
func (e *Engine) Elements(key string, win window.IntervalWindow) ([]ElementRef, bool) {
	kw, ok := e.lookup(key)
	if !ok {
		return nil, false
	}
	kw.mu.Lock()
	defer kw.mu.Unlock()
	ent, found := kw.find(win)
	if !found {
		return nil, false
	}
	return ent.elementRefs(), true
}

// Evict removes the given window from the key's window set and returns the
// element references that were buffered in it. The caller's expiry policy
// decides when to call this; the engine never evicts on its own.
func (e *Engine) Evict(key string, win window.IntervalWindow) ([]ElementRef, bool) {
	kw, ok := e.lookup(key)
	if !ok {
		return nil, false
	}
	kw.mu.Lock()
	defer kw.mu.Unlock()
	ent, found := kw.entries.Delete(newEntry(win))
	if !found {
		return nil, false
	}
	windowsEvictedCount.WithLabelValues(e.assigner.Strategy().String()).Inc()
	return ent.elementRefs(), true
}

// ExpireBefore removes every window of the key whose end time is at or
// before the given time, typically the caller's watermark plus allowed
// lateness, and returns them with their buffered references.
func (e *Engine) ExpireBefore(key string, t time.Time) []EvictedWindow {
	kw, ok := e.lookup(key)
	if !ok {
		return nil
	}
	kw.mu.Lock()
	defer kw.mu.Unlock()
	removed := kw.entries.RemoveWindowsBefore(t)
	evicted := make([]EvictedWindow, 0, len(removed))
	for _, ent := range removed {
		evicted = append(evicted, EvictedWindow{Window: ent.win, Refs: ent.elementRefs()})
	}
	windowsEvictedCount.WithLabelValues(e.assigner.Strategy().String()).Add(float64(len(removed)))
	return evicted
}

// NextWindowToClose returns the key's earliest open window, the next one the
// caller's watermark will pass.
func (e *Engine) NextWindowToClose(key string) (window.IntervalWindow, bool) {
	kw, ok := e.lookup(key)
	if !ok {
		return window.IntervalWindow{}, false
	}
	kw.mu.Lock()
	defer kw.mu.Unlock()
	front, found := kw.entries.Front()
	if !found {
		return window.IntervalWindow{}, false
	}
	return front.win, true
}

// Keys returns the keys that currently have a window set, sorted.
func (e *Engine) Keys() []string {
	e.RLock()
	defer e.RUnlock()
	keys := make([]string, 0, len(e.keys))
	for k := range e.keys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// windowsOf returns the window set of the key, creating it when absent.
func (e *Engine) windowsOf(key string) *keyedWindows {
	e.RLock()
	kw, ok := e.keys[key]
	e.RUnlock()
	if ok {
		return kw
	}

	e.Lock()
	defer e.Unlock()
	if kw, ok = e.keys[key]; !ok {
		kw = newKeyedWindows()
		e.keys[key] = kw
	}
	return kw
}

func (e *Engine) lookup(key string) (*keyedWindows, bool) {
	e.RLock()
	defer e.RUnlock()
	kw, ok := e.keys[key]
	return kw, ok
}
