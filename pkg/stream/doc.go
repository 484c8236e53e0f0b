// Package stream provides a lazy, effectful, pull-based stream abstraction.
//
// A Stream[T, R] is a single-pass sequence of elements of type T terminated
// by a final value of type R. Nothing happens until the stream is observed:
// each Observe call runs the stream up to its next suspension point,
// performing whatever effects element production requires, and yields either
// one element plus a continuation or the terminal value.
//
// Ownership is exclusive. Observing a stream consumes that position; the
// continuation returned by Observe replaces the observed value. Handing a
// half-consumed stream to two consumers re-runs effects and is undefined.
//
// The package supplies constructors (Of, FromSlice, FromChan, FromGenerator,
// Range, Emit, Cons, Done), drivers that run a stream to completion (Each,
// DiscardAll, Collect), and element/terminal mapping (Map, MapFinal).
// Higher-level parsing and segmentation live in the cursor and segment
// subpackages.
package stream
