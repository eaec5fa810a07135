package statefn

import "fmt"

// Kind identifies the kind of event a Notification carries.
type Kind int

const (
	KindValue     Kind = iota // A regular stream value.
	KindCompleted             // End of stream (as input) or stream completion (as output).
	KindError                 // Stream failure.
)

func (k Kind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindCompleted:
		return "completed"
	case KindError:
		return "error"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Notification is one event of a materialized stream: a value, the
// end-of-stream marker, or an error.
//
// A well-formed stream carries zero or more KindValue notifications followed
// by at most one terminal notification (KindCompleted or KindError), which is
// always the last event observed.
type Notification[T any] struct {
	Kind  Kind
	Value T     // Set when Kind is KindValue.
	Err   error // Set when Kind is KindError.
}

// Value returns a notification carrying a regular stream value.
func Value[T any](v T) Notification[T] {
	return Notification[T]{Kind: KindValue, Value: v}
}

// Completed returns the terminal notification marking normal end of stream.
func Completed[T any]() Notification[T] {
	return Notification[T]{Kind: KindCompleted}
}

// Failed returns the terminal notification carrying a stream error.
func Failed[T any](err error) Notification[T] {
	return Notification[T]{Kind: KindError, Err: err}
}

// IsTerminal reports whether the notification ends its stream.
func (n Notification[T]) IsTerminal() bool {
	return n.Kind != KindValue
}
