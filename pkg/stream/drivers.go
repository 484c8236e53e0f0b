package stream

// ============================================================================
// DRIVERS (RUN TO COMPLETION)
// ============================================================================

// Each consumes the entire stream, applying fn to every element in order, and
// returns the terminal value. It stops at the first effect or fn failure.
func Each[T, R any](s Stream[T, R], fn func(T) error) (R, error) {
	for {
		st, err := s.Observe()
		if err != nil {
			var zero R
			return zero, err
		}
		if st.End {
			return st.Final, nil
		}
		if err := fn(st.Elem); err != nil {
			var zero R
			return zero, err
		}
		s = st.Rest
	}
}

// DiscardAll consumes and discards every remaining element solely to reach
// the terminal value. Discarding an already-exhausted stream is a no-op that
// returns its terminal value again.
func DiscardAll[T, R any](s Stream[T, R]) (R, error) {
	for {
		st, err := s.Observe()
		if err != nil {
			var zero R
			return zero, err
		}
		if st.End {
			return st.Final, nil
		}
		s = st.Rest
	}
}

// Collect materializes the whole stream into a slice plus its terminal value.
// O(n) memory; meant for tests and small inputs, not the streaming path.
func Collect[T, R any](s Stream[T, R]) ([]T, R, error) {
	var out []T
	final, err := Each(s, func(v T) error {
		out = append(out, v)
		return nil
	})
	return out, final, err
}
