package segment

import (
	"github.com/torgeirsh/streamparse/pkg/stream"
)

// ============================================================================
// BISECTION PRIMITIVES
// ============================================================================

// Span bisects s at the first element failing pred. The returned stream emits
// the maximal satisfying prefix and terminates in the continuation: a stream
// starting at the first failing element, or an empty stream carrying the
// original terminal value when the input ends first. Concatenating prefix and
// continuation replays s exactly.
func Span[T, R any](s stream.Stream[T, R], pred func(T) bool) stream.Stream[T, stream.Stream[T, R]] {
	return stream.New(func() (stream.Step[T, stream.Stream[T, R]], error) {
		st, err := s.Observe()
		if err != nil {
			return stream.Step[T, stream.Stream[T, R]]{}, err
		}
		if st.End {
			return stream.Step[T, stream.Stream[T, R]]{End: true, Final: stream.Done[T](st.Final)}, nil
		}
		if !pred(st.Elem) {
			// The failing element belongs to the continuation, unconsumed.
			return stream.Step[T, stream.Stream[T, R]]{End: true, Final: stream.Cons(st.Elem, st.Rest)}, nil
		}
		return stream.Step[T, stream.Stream[T, R]]{Elem: st.Elem, Rest: Span(st.Rest, pred)}, nil
	})
}

// SplitAt bisects s after n elements, or fewer if the stream ends first.
// n <= 0 yields an empty prefix and the untouched continuation without
// observing anything.
func SplitAt[T, R any](s stream.Stream[T, R], n int) stream.Stream[T, stream.Stream[T, R]] {
	return stream.New(func() (stream.Step[T, stream.Stream[T, R]], error) {
		if n <= 0 {
			return stream.Step[T, stream.Stream[T, R]]{End: true, Final: s}, nil
		}
		st, err := s.Observe()
		if err != nil {
			return stream.Step[T, stream.Stream[T, R]]{}, err
		}
		if st.End {
			return stream.Step[T, stream.Stream[T, R]]{End: true, Final: stream.Done[T](st.Final)}, nil
		}
		return stream.Step[T, stream.Stream[T, R]]{Elem: st.Elem, Rest: SplitAt(st.Rest, n-1)}, nil
	})
}
