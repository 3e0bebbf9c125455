package concurrent

import (
	"golang.org/x/sync/errgroup"

	"github.com/draftline/draftline/pkg/sequence"
)

// Concurrent runs the action function for each element of the iterator in a
// separate goroutine, at most workers at a time. It waits for all
// goroutines to finish. If action returns an error, it returns the first
// error encountered.
func Concurrent[T any](i *sequence.Iterator[T], workers int, action func(T) error) error {
	group := errgroup.Group{}
	if workers > 0 {
		group.SetLimit(workers)
	}

	next, stop := i.Pull()
	defer stop()

	for {
		value, valid := next()
		if !valid {
			break
		}

		group.Go(func() error {
			return action(value)
		})
	}

	return group.Wait()
}
