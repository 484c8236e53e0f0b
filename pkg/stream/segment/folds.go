package segment

import (
	"github.com/torgeirsh/streamparse/pkg/stream"
)

// ============================================================================
// PER-LAYER AGGREGATION
// ============================================================================

// Folds collapses each layer to a single value: step is folded strictly over
// the layer's elements starting from begin, done finishes the accumulator,
// and the result becomes one element of the output stream. Each layer is
// consumed exactly once, fully, before the next is requested; no raw elements
// are buffered. The source terminal value carries through unchanged.
func Folds[T, R, A, B any](segs Segments[T, R], begin A, step func(A, T) A, done func(A) B) stream.Stream[B, R] {
	return stream.New(func() (stream.Step[B, R], error) {
		st, err := segs.Observe()
		if err != nil {
			return stream.Step[B, R]{}, err
		}
		if st.End {
			return stream.Step[B, R]{End: true, Final: st.Final}, nil
		}
		acc := begin
		layer := st.Layer
		for {
			ls, err := layer.Observe()
			if err != nil {
				return stream.Step[B, R]{}, err
			}
			if ls.End {
				return stream.Step[B, R]{Elem: done(acc), Rest: Folds(ls.Final, begin, step, done)}, nil
			}
			acc = step(acc, ls.Elem)
			layer = ls.Rest
		}
	})
}

// FoldsErr is Folds with effectful callbacks: begin seeds each layer and may
// fail, as may step and done. The first failure surfaces through the output
// stream's observation, unchanged.
func FoldsErr[T, R, A, B any](
	segs Segments[T, R],
	begin func() (A, error),
	step func(A, T) (A, error),
	done func(A) (B, error),
) stream.Stream[B, R] {
	return stream.New(func() (stream.Step[B, R], error) {
		st, err := segs.Observe()
		if err != nil {
			return stream.Step[B, R]{}, err
		}
		if st.End {
			return stream.Step[B, R]{End: true, Final: st.Final}, nil
		}
		acc, err := begin()
		if err != nil {
			return stream.Step[B, R]{}, err
		}
		layer := st.Layer
		for {
			ls, err := layer.Observe()
			if err != nil {
				return stream.Step[B, R]{}, err
			}
			if ls.End {
				out, err := done(acc)
				if err != nil {
					return stream.Step[B, R]{}, err
				}
				return stream.Step[B, R]{Elem: out, Rest: FoldsErr(ls.Final, begin, step, done)}, nil
			}
			acc, err = step(acc, ls.Elem)
			if err != nil {
				return stream.Step[B, R]{}, err
			}
			layer = ls.Rest
		}
	})
}
