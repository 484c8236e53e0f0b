package stream

// ============================================================================
// TRANSFORMATION OPERATORS
// ============================================================================

// Map applies f to every element, leaving the terminal value untouched.
func Map[In, Out, R any](s Stream[In, R], f func(In) Out) Stream[Out, R] {
	return New(func() (Step[Out, R], error) {
		st, err := s.Observe()
		if err != nil {
			return Step[Out, R]{}, err
		}
		if st.End {
			return Step[Out, R]{End: true, Final: st.Final}, nil
		}
		return Step[Out, R]{Elem: f(st.Elem), Rest: Map(st.Rest, f)}, nil
	})
}

// MapFinal applies f to the terminal value, leaving elements untouched.
func MapFinal[T, R1, R2 any](s Stream[T, R1], f func(R1) R2) Stream[T, R2] {
	return New(func() (Step[T, R2], error) {
		st, err := s.Observe()
		if err != nil {
			return Step[T, R2]{}, err
		}
		if st.End {
			return Step[T, R2]{End: true, Final: f(st.Final)}, nil
		}
		return Step[T, R2]{Elem: st.Elem, Rest: MapFinal(st.Rest, f)}, nil
	})
}
