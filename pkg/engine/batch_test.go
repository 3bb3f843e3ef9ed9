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
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"

	"github.com/streamproj/streamwin/pkg/window"
	"github.com/streamproj/streamwin/pkg/window/strategy/fixed"
	"github.com/streamproj/streamwin/pkg/window/strategy/session"
)

func TestEngine_ProcessBatch(t *testing.T) {
	defer goleak.VerifyNone(t)

	w, err := session.NewWindower(5 * time.Second)
	assert.NoError(t, err)
	e := newTestEngine(t, w)

	elements := []Element{
		{Key: "k1", EventTime: time.Unix(1, 0), Ref: "a1"},
		{Key: "k2", EventTime: time.Unix(1, 0), Ref: "b1"},
		{Key: "k1", EventTime: time.Unix(3, 0), Ref: "a2"},
		{Key: "k2", EventTime: time.Unix(20, 0), Ref: "b2"},
	}

	results, err := e.ProcessBatch(context.Background(), elements)
	assert.NoError(t, err)
	assert.Len(t, results, len(elements))

	// within a key the relative order was kept: a2 merged into a1's session
	assertWindows(t, []window.IntervalWindow{window.NewIntervalWindow(time.Unix(1, 0), time.Unix(8, 0))}, e.WindowsFor("k1"))
	assertWindows(t, []window.IntervalWindow{
		window.NewIntervalWindow(time.Unix(1, 0), time.Unix(6, 0)),
		window.NewIntervalWindow(time.Unix(20, 0), time.Unix(25, 0)),
	}, e.WindowsFor("k2"))

	// results are aligned with the input slice
	assert.Len(t, results[2].Merges, 1)
	assert.True(t, results[2].WindowsTouched[0].Equal(window.NewIntervalWindow(time.Unix(1, 0), time.Unix(8, 0))))
}

func TestEngine_ProcessBatch_InvalidTimestampStopsBatch(t *testing.T) {
	defer goleak.VerifyNone(t)

	w, err := fixed.NewWindower(10 * time.Second)
	assert.NoError(t, err)
	e := newTestEngine(t, w)

	_, err = e.ProcessBatch(context.Background(), []Element{
		{Key: "k1", EventTime: time.Unix(2, 0), Ref: "a1"},
		{Key: "k1", EventTime: time.Time{}, Ref: "a2"},
	})
	assert.Error(t, err)

	// elements processed before the failure are kept
	assert.Len(t, e.WindowsFor("k1"), 1)
}

// many keys processed concurrently stay fully independent
func TestEngine_ProcessBatch_ManyKeys(t *testing.T) {
	defer goleak.VerifyNone(t)

	w, err := session.NewWindower(5 * time.Second)
	assert.NoError(t, err)
	e := newTestEngine(t, w)

	elements := make([]Element, 0)
	for k := 0; k < 50; k++ {
		key := fmt.Sprintf("key-%d", k)
		for _, ts := range []int64{1, 3, 9, 20} {
			elements = append(elements, Element{Key: key, EventTime: time.Unix(ts, 0)})
		}
	}

	results, err := e.ProcessBatch(context.Background(), elements)
	assert.NoError(t, err)
	assert.Len(t, results, len(elements))
	assert.Len(t, e.Keys(), 50)

	expected := []window.IntervalWindow{
		window.NewIntervalWindow(time.Unix(1, 0), time.Unix(8, 0)),
		window.NewIntervalWindow(time.Unix(9, 0), time.Unix(14, 0)),
		window.NewIntervalWindow(time.Unix(20, 0), time.Unix(25, 0)),
	}
	for _, key := range e.Keys() {
		assertWindows(t, expected, e.WindowsFor(key))
	}
}
