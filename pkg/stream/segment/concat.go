package segment

import (
	"github.com/torgeirsh/streamparse/pkg/stream"
)

// ============================================================================
// FLATTENING
// ============================================================================

// Concat flattens a segmentation back into a single stream: every layer's
// elements in order, then the terminal value. It is the right inverse of
// GroupBy and ChunksOf: Concat(GroupBy(s, eq)) replays s exactly.
func Concat[T, R any](segs Segments[T, R]) stream.Stream[T, R] {
	return atBoundary(segs)
}

// atBoundary advances to the next layer holding at least one element.
func atBoundary[T, R any](segs Segments[T, R]) stream.Stream[T, R] {
	return stream.New(func() (stream.Step[T, R], error) {
		for {
			st, err := segs.Observe()
			if err != nil {
				return stream.Step[T, R]{}, err
			}
			if st.End {
				return stream.Step[T, R]{End: true, Final: st.Final}, nil
			}
			ls, err := st.Layer.Observe()
			if err != nil {
				return stream.Step[T, R]{}, err
			}
			if ls.End {
				segs = ls.Final
				continue
			}
			return stream.Step[T, R]{Elem: ls.Elem, Rest: inLayer(ls.Rest)}, nil
		}
	})
}

// inLayer streams the rest of one layer, then continues at the boundary.
func inLayer[T, R any](layer stream.Stream[T, Segments[T, R]]) stream.Stream[T, R] {
	return stream.New(func() (stream.Step[T, R], error) {
		ls, err := layer.Observe()
		if err != nil {
			return stream.Step[T, R]{}, err
		}
		if ls.End {
			return atBoundary(ls.Final).Observe()
		}
		return stream.Step[T, R]{Elem: ls.Elem, Rest: inLayer(ls.Rest)}, nil
	})
}

// Intercalate flattens like Concat but plays sep between consecutive layers:
// nothing before the first, nothing after the last. sep must be a pure,
// replayable stream (Emit, Of, FromSlice build one); it is observed from the
// start once per gap, and its terminal value is ignored.
func Intercalate[T, R any](sep stream.Stream[T, struct{}], segs Segments[T, R]) stream.Stream[T, R] {
	return interBoundary(sep, segs, true)
}

func interBoundary[T, R any](sep stream.Stream[T, struct{}], segs Segments[T, R], first bool) stream.Stream[T, R] {
	return stream.New(func() (stream.Step[T, R], error) {
		st, err := segs.Observe()
		if err != nil {
			return stream.Step[T, R]{}, err
		}
		if st.End {
			return stream.Step[T, R]{End: true, Final: st.Final}, nil
		}
		if first {
			return interLayer(sep, st.Layer).Observe()
		}
		return interSep(sep, sep, st.Layer).Observe()
	})
}

// interSep plays out the pending separator, then the layer it guards.
func interSep[T, R any](sep, cur stream.Stream[T, struct{}], layer stream.Stream[T, Segments[T, R]]) stream.Stream[T, R] {
	return stream.New(func() (stream.Step[T, R], error) {
		ss, err := cur.Observe()
		if err != nil {
			return stream.Step[T, R]{}, err
		}
		if ss.End {
			return interLayer(sep, layer).Observe()
		}
		return stream.Step[T, R]{Elem: ss.Elem, Rest: interSep(sep, ss.Rest, layer)}, nil
	})
}

func interLayer[T, R any](sep stream.Stream[T, struct{}], layer stream.Stream[T, Segments[T, R]]) stream.Stream[T, R] {
	return stream.New(func() (stream.Step[T, R], error) {
		ls, err := layer.Observe()
		if err != nil {
			return stream.Step[T, R]{}, err
		}
		if ls.End {
			return interBoundary(sep, ls.Final, false).Observe()
		}
		return stream.Step[T, R]{Elem: ls.Elem, Rest: interLayer(sep, ls.Rest)}, nil
	})
}
