// Package batch runs the matcher over many descriptions concurrently. Each
// match call is independent and CPU-bound, so the runner fans out across a
// bounded number of workers over a shared read-only matcher and reassembles
// results in input order.
package batch

import (
	"context"
	"sync"

	"github.com/wetshaving/brushmatch/pkg/matcher"
	"github.com/wetshaving/brushmatch/pkg/types"
)

// Result pairs one input with its match outcome. Index is the position in
// the input slice; the output slice preserves input order.
type Result struct {
	Index  int
	Input  string
	Result *types.BrushMatchResult
}

// Runner processes batches of descriptions.
type Runner struct {
	matcher *matcher.Matcher
	workers int
	sem     chan struct{} // semaphore for bounded concurrency
}

// NewRunner creates a batch runner with the given worker bound.
func NewRunner(m *matcher.Matcher, workers int) *Runner {
	if workers <= 0 {
		workers = 4
	}
	return &Runner{
		matcher: m,
		workers: workers,
		sem:     make(chan struct{}, workers),
	}
}

// Run matches every input and returns results in input order. A canceled
// context stops dispatching new work; already-dispatched matches complete.
// Unmatched inputs are normal results, so Run itself cannot partially fail.
func (r *Runner) Run(ctx context.Context, inputs []string) []*Result {
	results := make([]*Result, len(inputs))
	var wg sync.WaitGroup

	for i, input := range inputs {
		select {
		case <-ctx.Done():
			// fill the remainder with unmatched-style placeholders so
			// the output stays aligned with the input
			for j := i; j < len(inputs); j++ {
				results[j] = &Result{Index: j, Input: inputs[j]}
			}
			wg.Wait()
			return results
		case r.sem <- struct{}{}:
		}

		wg.Add(1)
		go func(idx int, text string) {
			defer wg.Done()
			defer func() { <-r.sem }()
			results[idx] = &Result{
				Index:  idx,
				Input:  text,
				Result: r.matcher.Match(text),
			}
		}(i, input)
	}

	wg.Wait()
	return results
}
