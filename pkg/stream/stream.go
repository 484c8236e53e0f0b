package stream

// ============================================================================
// CORE TYPES
// ============================================================================

// Step is the outcome of observing a stream once: either one element together
// with the stream's continuation, or the terminal value.
type Step[T, R any] struct {
	// Elem and Rest are meaningful when End is false.
	Elem T
	Rest Stream[T, R]

	// Final is meaningful when End is true.
	Final R
	End   bool
}

// Stream is a lazy, effectful, single-pass pull sequence of T terminated by a
// final value of R.
//
// A Stream value owns one position in the sequence. Observing it consumes
// that position and hands back a new Stream value (or the terminal value) to
// continue from. The zero value is an empty stream whose terminal value is
// the zero value of R.
type Stream[T, R any] struct {
	step func() (Step[T, R], error)
}

// New builds a stream from a step function, the suspension primitive every
// other constructor is built on. The function runs once per Observe call;
// any effects it performs happen at observation time.
func New[T, R any](step func() (Step[T, R], error)) Stream[T, R] {
	return Stream[T, R]{step: step}
}

// Observe forces the next suspension point, producing either the next element
// and continuation or the terminal value. Effect failures are returned
// unchanged; reaching the end of the stream is never an error.
func (s Stream[T, R]) Observe() (Step[T, R], error) {
	if s.step == nil {
		var done Step[T, R]
		done.End = true
		return done, nil
	}
	return s.step()
}
