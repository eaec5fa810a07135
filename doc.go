/*
Package statefn turns an arbitrary stateful transition function into a
streaming operator over iter.Seq, without buffering the input.

The package is built around three ideas:

A Stream[T] is a lazy, single-pass sequence of Notification[T] events: zero
or more values followed by one terminal event, either completion or an
error. Streams are ordinary iter.Seq sequences underneath, so they compose
with range-over-func and are only evaluated on demand. Of, Materialize and
FromChan build streams from plain values, sequences and channels;
Dematerialize and Collect convert back.

A Machine[S, In, Out] is a user state machine packaged as a stream operator.
It is built from three functions:

	initial    func() S                                  // first state of a traversal
	transition func(state S, value In, out Emitter[Out]) S // one call per input value
	completion func(state S, out Emitter[Out]) bool        // one call at end of stream

The transition function threads the state forward: it receives the current
state and one input value, and returns the next state. Along the way it may
emit zero or more output values through the Emitter, so a single input can
expand into many outputs, or none at all. The completion function runs once
when the input ends; it can flush whatever the state still holds and decides
whether to append an explicit completion marker. Either way the output stream
terminates exactly once.

An Emitter is the only output capability user code sees. Besides values it
can signal completion or an error directly, which ends the output stream
immediately and stops the traversal — mid-stream termination driven by state
logic rather than by upstream exhaustion.

Example of a machine that assembles lines into paragraphs:

	// State: lines of the paragraph under construction.
	m := statefn.New(
		func() []string { return nil },
		func(para []string, line string, out statefn.Emitter[string]) []string {
			if line != "" {
				return append(para, line)
			}
			if len(para) > 0 {
				out.Emit(strings.Join(para, " "))
			}
			return nil
		},
		func(para []string, out statefn.Emitter[string]) bool {
			// Flush the unterminated final paragraph.
			if len(para) > 0 {
				out.Emit(strings.Join(para, " "))
			}
			return false
		},
	)

	paragraphs, err := statefn.Collect(m.Transform(statefn.Of(lines...)))

Each traversal of a transformed stream is independent: the initial function
is re-invoked, so no state leaks between runs, and a Machine may be applied
to any number of streams. Errors are one-way: an upstream error (or an
Emitter.Fail call) is forwarded as the stream's sole terminal event, the
completion function is skipped, and no further input is processed.

The operator introduces no goroutines and no locking; it runs on whatever
goroutine iterates the output stream, and memory held is proportional to the
state plus one step's emissions, never to the length of the input.
*/
package statefn
