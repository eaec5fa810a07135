package statefn

import (
	"iter"

	"statefn/internal/iterx"
)

// Stream is a lazy, single-pass sequence of notifications: zero or more
// values followed by at most one terminal event. Nothing runs until a Stream
// is ranged over, and every range is an independent traversal from the
// start; there is no shared cursor to rewind.
//
// Stopping iteration early cancels the traversal and releases the source.
type Stream[T any] iter.Seq[Notification[T]]

// Of returns a stream of the given values followed by the end-of-stream
// marker.
func Of[T any](values ...T) Stream[T] {
	return Materialize(iterx.FromSlice(values))
}

// FromNotifications returns a stream delivering exactly the given
// notifications, in order. It places the responsibility for well-formedness
// (at most one terminal, last) on the caller; Of and Materialize are
// preferred for plain value sources.
func FromNotifications[T any](ns ...Notification[T]) Stream[T] {
	return Stream[T](iterx.FromSlice(ns))
}

// FromChan returns a stream of the values received from ch, ending with the
// end-of-stream marker when ch is closed.
func FromChan[T any](ch <-chan T) Stream[T] {
	return Materialize(iterx.FromChan(ch))
}

// Materialize lifts a plain sequence into a notification stream, appending
// the end-of-stream marker after the last value.
func Materialize[T any](seq iter.Seq[T]) Stream[T] {
	return func(yield func(Notification[T]) bool) {
		for v := range seq {
			if !yield(Value(v)) {
				return
			}
		}
		yield(Completed[T]())
	}
}

// Dematerialize converts a notification stream back into a plain sequence of
// (value, error) pairs. Values arrive as (v, nil); a stream error arrives as
// a final (zero, err) pair; completion simply ends the sequence. Anything
// after the first terminal notification is not observed.
func Dematerialize[T any](s Stream[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for n := range s {
			switch n.Kind {
			case KindValue:
				if !yield(n.Value, nil) {
					return
				}
			case KindError:
				var zero T
				yield(zero, n.Err)
				return
			default:
				return
			}
		}
	}
}

// Collect drains the stream and returns its values in order. If the stream
// terminates with an error, Collect returns the values emitted before it
// together with that error.
func Collect[T any](s Stream[T]) ([]T, error) {
	var out []T
	for v, err := range Dematerialize(s) {
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, nil
}
