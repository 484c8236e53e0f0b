package segment

import (
	"github.com/torgeirsh/streamparse/pkg/stream"
)

// ============================================================================
// BOUNDING AND SKIPPING
// ============================================================================

// Take keeps the first n layers and stops. Layers past the bound are never
// observed, not even drained, so the source terminal value is lost; the
// result terminates in struct{}. n <= 0 yields nothing at all. Use TakeDrain
// when the terminal value matters.
func Take[T, R any](n int, segs Segments[T, R]) Segments[T, struct{}] {
	return Segments[T, struct{}]{step: func() (Step[T, struct{}], error) {
		if n <= 0 {
			return Step[T, struct{}]{End: true}, nil
		}
		st, err := segs.Observe()
		if err != nil {
			return Step[T, struct{}]{}, err
		}
		if st.End {
			return Step[T, struct{}]{End: true}, nil
		}
		layer := stream.MapFinal(st.Layer, func(next Segments[T, R]) Segments[T, struct{}] {
			return Take(n-1, next)
		})
		return Step[T, struct{}]{Layer: layer}, nil
	}}
}

// TakeDrain keeps the first n layers' elements exactly like Take, then fully
// drains every remaining layer, consuming but never emitting, so the true
// terminal value is still reached.
func TakeDrain[T, R any](n int, segs Segments[T, R]) Segments[T, R] {
	return Segments[T, R]{step: func() (Step[T, R], error) {
		if n <= 0 {
			final, err := drainAll(segs)
			if err != nil {
				return Step[T, R]{}, err
			}
			return Step[T, R]{End: true, Final: final}, nil
		}
		st, err := segs.Observe()
		if err != nil {
			return Step[T, R]{}, err
		}
		if st.End {
			return st, nil
		}
		layer := stream.MapFinal(st.Layer, func(next Segments[T, R]) Segments[T, R] {
			return TakeDrain(n-1, next)
		})
		return Step[T, R]{Layer: layer}, nil
	}}
}

// Drop drains the first n layers to reach their continuations and resumes the
// segmentation at layer n. A source with fewer than n layers keeps its
// terminal value; the work happens on the first observation.
func Drop[T, R any](n int, segs Segments[T, R]) Segments[T, R] {
	return Segments[T, R]{step: func() (Step[T, R], error) {
		for i := 0; i < n; i++ {
			st, err := segs.Observe()
			if err != nil {
				return Step[T, R]{}, err
			}
			if st.End {
				return st, nil
			}
			next, err := stream.DiscardAll(st.Layer)
			if err != nil {
				return Step[T, R]{}, err
			}
			segs = next
		}
		return segs.Observe()
	}}
}

// drainAll exhausts every remaining layer of segs, layer by layer, for its
// terminal value.
func drainAll[T, R any](segs Segments[T, R]) (R, error) {
	for {
		st, err := segs.Observe()
		if err != nil {
			var zero R
			return zero, err
		}
		if st.End {
			return st.Final, nil
		}
		next, err := stream.DiscardAll(st.Layer)
		if err != nil {
			var zero R
			return zero, err
		}
		segs = next
	}
}
