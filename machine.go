package statefn

type (

	// InitialFunc produces the first state of a traversal. It is invoked
	// once per traversal of the output stream, when iteration starts, and
	// never cached across traversals.
	InitialFunc[S any] func() S

	// TransitionFunc is invoked once per input value. It receives the
	// current state and the value, may emit any number of output values
	// (or a terminal signal) through the Emitter, and returns the next
	// state.
	TransitionFunc[S, In, Out any] func(state S, value In, out Emitter[Out]) S

	// CompletionFunc is invoked once, when the input stream ends. It may
	// emit trailing output values through the Emitter; its result decides
	// whether an explicit completion marker is appended after them. The
	// output stream terminates either way.
	CompletionFunc[S, Out any] func(state S, out Emitter[Out]) bool
)

// Machine is a stream operator built from a user state machine: an initial
// state, a transition applied to every input value, and a completion step
// applied at end of stream. Construct one with New and apply it with
// Transform.
//
// A Machine holds no traversal state and may be applied to any number of
// streams, concurrently or repeatedly.
type Machine[S, In, Out any] struct {
	initial    InitialFunc[S]
	transition TransitionFunc[S, In, Out]
	completion CompletionFunc[S, Out]
}

// New builds a Machine from the three callbacks.
//
// New panics if any callback is nil; a missing callback is a configuration
// error and is never deferred to stream execution.
func New[S, In, Out any](
	initial InitialFunc[S],
	transition TransitionFunc[S, In, Out],
	completion CompletionFunc[S, Out]) Machine[S, In, Out] {

	if initial == nil {
		panic("statefn.New: initial function must not be nil")
	}
	if transition == nil {
		panic("statefn.New: transition function must not be nil")
	}
	if completion == nil {
		panic("statefn.New: completion function must not be nil")
	}

	return Machine[S, In, Out]{
		initial:    initial,
		transition: transition,
		completion: completion,
	}
}

// Transform returns the stream obtained by running the machine over src.
//
// The returned stream is lazy: nothing runs until it is iterated, and each
// iteration is an independent traversal with its own state, starting from a
// fresh call to the initial function. Values are processed strictly in input
// order, one transition per input value, and each step's emissions are
// flattened into the output before the next input is considered. Memory held
// is proportional to the state plus one step's batch, never to stream
// length.
//
// The traversal ends with exactly one terminal notification:
//
//   - When src delivers its end-of-stream marker (or is simply exhausted),
//     the completion function runs and the output completes, after the
//     completion function's own emissions.
//   - When src delivers an error, it is forwarded as-is; the completion
//     function does not run.
//   - When a callback signals Complete or Fail through its Emitter, that
//     signal ends the output immediately and no further input is pulled.
//
// Stopping iteration of the output stream early stops the traversal: no
// further transitions run and src is released.
func (m Machine[S, In, Out]) Transform(src Stream[In]) Stream[Out] {
	return func(yield func(Notification[Out]) bool) {
		state := m.initial()
		for n := range src {
			switch n.Kind {
			case KindError:
				// Forwarded verbatim; state is discarded and the
				// completion function never runs.
				yield(Failed[Out](n.Err))
				return
			case KindCompleted:
				m.finish(state, yield)
				return
			default:
				rec := recorder[Out]{}
				state = m.transition(state, n.Value, &rec)
				if !flushStep(yield, rec.batch) {
					return
				}
			}
		}
		// src ended without an explicit terminal notification; treat it as
		// end of stream.
		m.finish(state, yield)
	}
}

// finish runs the end-of-stream step: completion emissions, the optional
// explicit marker, and the unconditional stream terminal.
func (m Machine[S, In, Out]) finish(state S, yield func(Notification[Out]) bool) {
	rec := recorder[Out]{}
	if m.completion(state, &rec) {
		rec.Complete()
	}
	if !flushStep(yield, rec.batch) {
		return
	}
	// The completion function declined the explicit marker; the output
	// stream still terminates exactly once.
	yield(Completed[Out]())
}

// flushStep forwards one step's batch downstream, in emission order. It
// reports whether the traversal should continue: false once a terminal
// notification has been delivered or the consumer has stopped listening.
func flushStep[Out any](yield func(Notification[Out]) bool, batch []Notification[Out]) bool {
	for _, n := range batch {
		if !yield(n) || n.IsTerminal() {
			return false
		}
	}
	return true
}
