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

	"go.uber.org/zap"

	"github.com/streamproj/streamwin/pkg/shared/logging"
)

type options struct {
	// log is the logger the engine reports with
	log *zap.SugaredLogger
}

func defaultOptions(ctx context.Context) *options {
	return &options{
		log: logging.FromContext(ctx),
	}
}

// Option customizes the engine.
type Option func(*options) error

// WithLogger overrides the logger carried in the construction context.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(o *options) error {
		o.log = log
		return nil
	}
}
