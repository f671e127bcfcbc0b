// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Each runs process over items on workerCount goroutines and returns one error slot per item,
// in item order. A failing item does not stop the others. Items not started before ctx is done
// report ctx.Err().
func Each[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) error,
) []error {
	if workerCount <= 0 {
		workerCount = 1
	}

	errs := make([]error, len(items))
	indexes := make(chan int)
	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range indexes {
				errs[idx] = process(ctx, items[idx])
			}
		}()
	}

	next := 0
feed:
	for ; next < len(items); next++ {
		select {
		case <-ctx.Done():
			break feed
		case indexes <- next:
		}
	}
	close(indexes)
	wg.Wait()

	for ; next < len(items); next++ {
		errs[next] = ctx.Err()
	}
	return errs
}

// FirstFailure returns the index of the first non-nil error, or len(errs) when all succeeded.
func FirstFailure(errs []error) int {
	for i, err := range errs {
		if err != nil {
			return i
		}
	}
	return len(errs)
}
