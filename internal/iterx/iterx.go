// Package iterx adapts plain Go collections into iter.Seq sequences for the
// statefn stream sources.
package iterx

import (
	"iter"
)

func FromSlice[T any](in []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range in {
			if !yield(item) {
				break
			}
		}
	}
}

// FromChan yields received values until in is closed. Stopping early leaves
// the channel open for other consumers.
func FromChan[T any](in <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range in {
			if !yield(i) {
				break
			}
		}
	}
}
