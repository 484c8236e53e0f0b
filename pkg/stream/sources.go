package stream

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"
)

// ============================================================================
// SOURCE OPERATORS
// ============================================================================

// Done returns an empty stream that immediately yields final.
func Done[T, R any](final R) Stream[T, R] {
	return New(func() (Step[T, R], error) {
		return Step[T, R]{End: true, Final: final}, nil
	})
}

// Cons prepends head to rest. No part of rest is observed until head has been
// consumed.
func Cons[T, R any](head T, rest Stream[T, R]) Stream[T, R] {
	return New(func() (Step[T, R], error) {
		return Step[T, R]{Elem: head, Rest: rest}, nil
	})
}

// Emit returns a one-element pure stream with no meaningful terminal value.
func Emit[T any](v T) Stream[T, struct{}] {
	return Cons(v, Done[T](struct{}{}))
}

// Of returns a pure stream over the given elements.
func Of[T any](elems ...T) Stream[T, struct{}] {
	return FromSlice(elems, struct{}{})
}

// FromSlice returns a pure stream over elems terminated by final.
func FromSlice[T, R any](elems []T, final R) Stream[T, R] {
	return fromSlice(elems, 0, final)
}

func fromSlice[T, R any](elems []T, i int, final R) Stream[T, R] {
	return New(func() (Step[T, R], error) {
		if i >= len(elems) {
			return Step[T, R]{End: true, Final: final}, nil
		}
		return Step[T, R]{Elem: elems[i], Rest: fromSlice(elems, i+1, final)}, nil
	})
}

// Range returns a pure stream of integers from start to end (exclusive).
func Range[T constraints.Integer](start, end T) Stream[T, struct{}] {
	return New(func() (Step[T, struct{}], error) {
		if start >= end {
			return Step[T, struct{}]{End: true}, nil
		}
		return Step[T, struct{}]{Elem: start, Rest: Range(start+1, end)}, nil
	})
}

// FromChan pulls elements from ch until it is closed. Each observation blocks
// on one receive.
func FromChan[T any](ch <-chan T) Stream[T, struct{}] {
	return New(func() (Step[T, struct{}], error) {
		v, ok := <-ch
		if !ok {
			return Step[T, struct{}]{End: true}, nil
		}
		return Step[T, struct{}]{Elem: v, Rest: FromChan(ch)}, nil
	})
}

// FromGenerator runs gen in its own goroutine and streams everything it
// emits. The generator's returned error becomes the stream's terminal value;
// a nil terminal value means it completed cleanly.
//
// The goroutine starts on the first observation and runs ahead of the
// consumer by at most GeneratorBuffer elements. The stream must be consumed
// to its terminal value or the goroutine leaks; resource release follows the
// same rule as any other effectful source.
func FromGenerator[T any](gen func(emit func(T)) error) Stream[T, error] {
	ch := make(chan T, GeneratorBuffer)
	var g errgroup.Group
	started := false

	var next func() (Step[T, error], error)
	next = func() (Step[T, error], error) {
		if !started {
			started = true
			g.Go(func() error {
				defer close(ch)
				return gen(func(v T) { ch <- v })
			})
		}
		v, ok := <-ch
		if !ok {
			return Step[T, error]{End: true, Final: g.Wait()}, nil
		}
		return Step[T, error]{Elem: v, Rest: New(next)}, nil
	}
	return New(next)
}
