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
)

// ConfigError indicates invalid strategy parameters, e.g. a non-positive
// size or an offset outside its legal range. It is raised at construction
// time only, never while processing elements, and is never silently clamped
// or defaulted.
type ConfigError struct {
	// Strategy the configuration was meant for.
	Strategy Strategy
	// Message describes which parameter is invalid and why.
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s window configuration: %s", e.Strategy, e.Message)
}

// InvalidTimestampError indicates an event time that cannot be windowed,
// i.e. the zero time.Time, which callers use as "no timestamp". Late or
// out-of-order timestamps are valid inputs and never produce this error.
type InvalidTimestampError struct {
	Timestamp time.Time
}

func (e *InvalidTimestampError) Error() string {
	return fmt.Sprintf("invalid event time %v", e.Timestamp)
}
