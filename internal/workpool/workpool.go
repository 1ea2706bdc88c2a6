// Package workpool fans per-item work out over a bounded number of goroutines.
package workpool

import "golang.org/x/sync/errgroup"

// Run calls fn(i) for every i in [0, n) using at most workers goroutines.
// Callers write results into index-addressed slots, so the outcome does not
// depend on scheduling. workers <= 1 runs sequentially on the calling
// goroutine. The first error returned by fn is returned once all calls finish.
func Run(n, workers int, fn func(i int) error) error {
	if n <= 0 {
		return nil
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}
	if workers > n {
		workers = n
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		g.Go(func() error { return fn(i) })
	}
	return g.Wait()
}
