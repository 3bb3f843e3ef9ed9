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
	"time"

	"golang.org/x/sync/errgroup"
)

// Element is one keyed, timestamped item of the stream. The payload itself
// is not part of the core; Ref points the aggregation layer back to it.
type Element struct {
	Key       string
	EventTime time.Time
	Ref       ElementRef
}

// ProcessBatch windows a batch of elements, fanning out one goroutine per
// key while keeping each key's elements in their original relative order.
// Results are returned aligned with the input slice. The first error stops
// the batch; per-key state already updated by earlier elements is kept, as
// every Process call is atomic for its key.
func (e *Engine) ProcessBatch(ctx context.Context, elements []Element) ([]ProcessResult, error) {
	results := make([]ProcessResult, len(elements))

	byKey := make(map[string][]int)
	for i, el := range elements {
		byKey[el.Key] = append(byKey[el.Key], i)
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, indexes := range byKey {
		indexes := indexes
		g.Go(func() error {
			for _, i := range indexes {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				result, err := e.Process(elements[i].Key, elements[i].EventTime, elements[i].Ref)
				if err != nil {
					return err
				}
				results[i] = result
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
