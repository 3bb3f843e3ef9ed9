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

// Package global implements the Global window, a single window covering the
// whole representable range of event time. Every element of every key is
// assigned to the same window value.
package global

import (
	"math"
	"time"

	"github.com/streamproj/streamwin/pkg/window"
)

// Windower assigns every event time to the one global window. It has no
// configuration and its construction never fails.
type Windower struct{}

var _ window.Assigner = (*Windower)(nil)

// NewWindower returns a global windower.
func NewWindower() *Windower {
	return &Windower{}
}

// Strategy returns the window strategy.
func (w *Windower) Strategy() window.Strategy {
	return window.Global
}

// AssignWindows returns the single window spanning the minimum to the
// maximum representable instant. The window is a plain value; equality is by
// boundaries, not identity.
func (w *Windower) AssignWindows(time.Time) []window.IntervalWindow {
	return []window.IntervalWindow{Window()}
}

// Window returns the global window value.
func Window() window.IntervalWindow {
	return window.NewIntervalWindow(time.Unix(0, math.MinInt64), time.Unix(0, math.MaxInt64))
}
