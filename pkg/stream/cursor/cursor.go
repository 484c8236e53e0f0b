// Package cursor provides a stateful parsing cursor over a single owned
// stream: draw elements one at a time, peek without consuming, and push
// already-drawn elements back for the next draw.
package cursor

import (
	"github.com/gammazero/deque"

	"github.com/torgeirsh/streamparse/pkg/stream"
)

// ============================================================================
// CURSOR
// ============================================================================

// Cursor wraps the currently-remaining stream and advances over it in place.
// It takes ownership of the stream it is created from; the stream must not be
// observed elsewhere afterwards.
//
// Pushed-back elements form a LIFO stack consulted before the underlying
// stream, so repeated pushbacks are drawn most-recently-pushed first.
type Cursor[T, R any] struct {
	src    stream.Stream[T, R]
	unread *deque.Deque[T]
	final  R
	done   bool
}

// New creates a cursor positioned at the start of s.
func New[T, R any](s stream.Stream[T, R]) *Cursor[T, R] {
	return &Cursor[T, R]{src: s, unread: deque.New[T]()}
}

// Draw returns the next element and advances. Once the underlying stream is
// exhausted, Draw keeps reporting no element without observing it again, and
// the terminal value becomes available through Final.
//
// An effect failure leaves the position unchanged: the next Draw observes the
// same suspension point again and the failure is reported unchanged, never
// swallowed.
func (c *Cursor[T, R]) Draw() (T, bool, error) {
	if c.unread.Len() > 0 {
		return c.unread.PopFront(), true, nil
	}
	var zero T
	if c.done {
		return zero, false, nil
	}
	st, err := c.src.Observe()
	if err != nil {
		return zero, false, err
	}
	if st.End {
		c.done = true
		c.final = st.Final
		c.src = stream.Done[T](st.Final)
		return zero, false, nil
	}
	c.src = st.Rest
	return st.Elem, true, nil
}

// Skip draws and discards one element, reporting whether one was present.
func (c *Cursor[T, R]) Skip() (bool, error) {
	_, ok, err := c.Draw()
	return ok, err
}

// Pushback prepends v so the next Draw returns it before the underlying
// stream resumes. Values that were never drawn may be pushed back too.
func (c *Cursor[T, R]) Pushback(v T) {
	c.unread.PushFront(v)
}

// Peek returns the next element without consuming it.
func (c *Cursor[T, R]) Peek() (T, bool, error) {
	v, ok, err := c.Draw()
	if err != nil || !ok {
		return v, ok, err
	}
	c.Pushback(v)
	return v, true, nil
}

// AtEnd reports whether a Draw would find no element.
func (c *Cursor[T, R]) AtEnd() (bool, error) {
	_, ok, err := c.Peek()
	if err != nil {
		return false, err
	}
	return !ok, nil
}

// DrawAll drains the cursor into a slice. O(n) memory; a test and small-input
// convenience, not the streaming path.
func (c *Cursor[T, R]) DrawAll() ([]T, error) {
	var out []T
	for {
		v, ok, err := c.Draw()
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, v)
	}
}

// SkipAll draws and discards until the cursor is exhausted.
func (c *Cursor[T, R]) SkipAll() error {
	for {
		ok, err := c.Skip()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}

// Final returns the terminal value of the underlying stream. It is available
// once the cursor has drawn past the last element and is fixed thereafter.
func (c *Cursor[T, R]) Final() (R, bool) {
	return c.final, c.done
}
