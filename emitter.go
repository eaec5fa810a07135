package statefn

// Emitter is the narrow output capability handed to transition and
// completion functions. Everything emitted through it during one step is
// recorded in call order and flattened into the output stream once the step
// returns.
//
// At most one terminal signal (Complete or Fail) is recorded per step; the
// first one wins and every later call on the same Emitter is ignored. A
// terminal signal ends the output stream and no further input is processed,
// so Complete and Fail may be used from a transition function to cut a
// stream short based on state alone.
//
// An Emitter is only valid for the duration of the call it was passed to;
// callbacks must not retain it.
type Emitter[Out any] interface {
	// Emit appends a value to the current step's output.
	Emit(value Out)

	// Complete appends the completion marker, ending the output stream.
	Complete()

	// Fail appends an error, ending the output stream. Fail panics if err
	// is nil.
	Fail(err error)
}

// recorder is the per-step Emitter implementation. A fresh recorder backs
// every step, so the batch never outlives one input event.
type recorder[Out any] struct {
	batch    []Notification[Out]
	terminal bool
}

var _ Emitter[int] = (*recorder[int])(nil)

func (r *recorder[Out]) Emit(value Out) {
	if r.terminal {
		return
	}
	r.batch = append(r.batch, Value(value))
}

func (r *recorder[Out]) Complete() {
	if r.terminal {
		return
	}
	r.terminal = true
	r.batch = append(r.batch, Completed[Out]())
}

func (r *recorder[Out]) Fail(err error) {
	if err == nil {
		panic("statefn: Fail requires a non-nil error")
	}
	if r.terminal {
		return
	}
	r.terminal = true
	r.batch = append(r.batch, Failed[Out](err))
}
