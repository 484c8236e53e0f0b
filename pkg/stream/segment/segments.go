package segment

import (
	"github.com/torgeirsh/streamparse/pkg/stream"
)

// ============================================================================
// SEGMENTATION ENGINE
// ============================================================================

// Step is the outcome of observing a segmentation once: either the next layer
// or the terminal value carried over from the source stream.
type Step[T, R any] struct {
	// Layer is meaningful when End is false. Its own terminal value is the
	// segmentation continuing after the layer, so the only way to reach the
	// next layer is to consume this one.
	Layer stream.Stream[T, Segments[T, R]]

	// Final is meaningful when End is true.
	Final R
	End   bool
}

// Segments is a lazy sequence of layers (sub-streams) terminated by the
// source stream's final value. Like a Stream, a Segments value is single-pass
// and owned by exactly one consumer; the zero value has no layers and a zero
// terminal value.
type Segments[T, R any] struct {
	step func() (Step[T, R], error)
}

// Observe forces the next layer boundary.
func (g Segments[T, R]) Observe() (Step[T, R], error) {
	if g.step == nil {
		var done Step[T, R]
		done.End = true
		return done, nil
	}
	return g.step()
}

// terminal is the segmentation with no layers at all.
func terminal[T, R any](final R) Segments[T, R] {
	return Segments[T, R]{step: func() (Step[T, R], error) {
		return Step[T, R]{End: true, Final: final}, nil
	}}
}

// GroupBy segments s into maximal runs of consecutive elements that all
// satisfy eq against the first element of the run. Every layer has at least
// one element; exhausted input produces no trailing layer.
func GroupBy[T, R any](s stream.Stream[T, R], eq func(T, T) bool) Segments[T, R] {
	return Segments[T, R]{step: func() (Step[T, R], error) {
		st, err := s.Observe()
		if err != nil {
			return Step[T, R]{}, err
		}
		if st.End {
			return Step[T, R]{End: true, Final: st.Final}, nil
		}
		pivot := st.Elem
		return Step[T, R]{Layer: stream.Cons(pivot, run(st.Rest, pivot, eq))}, nil
	}}
}

// Group is GroupBy at value equality.
func Group[T comparable, R any](s stream.Stream[T, R]) Segments[T, R] {
	return GroupBy(s, func(a, b T) bool { return a == b })
}

// run continues the run opened by pivot; its terminal value segments whatever
// follows the run.
func run[T, R any](s stream.Stream[T, R], pivot T, eq func(T, T) bool) stream.Stream[T, Segments[T, R]] {
	return stream.New(func() (stream.Step[T, Segments[T, R]], error) {
		st, err := s.Observe()
		if err != nil {
			return stream.Step[T, Segments[T, R]]{}, err
		}
		if st.End {
			return stream.Step[T, Segments[T, R]]{End: true, Final: terminal[T](st.Final)}, nil
		}
		if !eq(pivot, st.Elem) {
			// First element of the next run: hand it back unconsumed.
			next := GroupBy(stream.Cons(st.Elem, st.Rest), eq)
			return stream.Step[T, Segments[T, R]]{End: true, Final: next}, nil
		}
		return stream.Step[T, Segments[T, R]]{Elem: st.Elem, Rest: run(st.Rest, pivot, eq)}, nil
	})
}

// ChunksOf segments s into layers of exactly n elements; only the last layer
// may be shorter when the input ends mid-chunk. A chunk size of zero or less
// is degenerate: the remainder becomes one undivided layer rather than an
// endless run of empty ones.
func ChunksOf[T, R any](s stream.Stream[T, R], n int) Segments[T, R] {
	return Segments[T, R]{step: func() (Step[T, R], error) {
		st, err := s.Observe()
		if err != nil {
			return Step[T, R]{}, err
		}
		if st.End {
			return Step[T, R]{End: true, Final: st.Final}, nil
		}
		if n <= 0 {
			rest := stream.Cons(st.Elem, st.Rest)
			return Step[T, R]{Layer: stream.MapFinal(rest, terminal[T, R])}, nil
		}
		return Step[T, R]{Layer: stream.Cons(st.Elem, chunk(st.Rest, n-1, n))}, nil
	}}
}

// chunk emits up to left more elements of the current layer; its terminal
// value chunks the remainder.
func chunk[T, R any](s stream.Stream[T, R], left, n int) stream.Stream[T, Segments[T, R]] {
	return stream.New(func() (stream.Step[T, Segments[T, R]], error) {
		if left <= 0 {
			return stream.Step[T, Segments[T, R]]{End: true, Final: ChunksOf(s, n)}, nil
		}
		st, err := s.Observe()
		if err != nil {
			return stream.Step[T, Segments[T, R]]{}, err
		}
		if st.End {
			return stream.Step[T, Segments[T, R]]{End: true, Final: terminal[T](st.Final)}, nil
		}
		return stream.Step[T, Segments[T, R]]{Elem: st.Elem, Rest: chunk(st.Rest, left-1, n)}, nil
	})
}
