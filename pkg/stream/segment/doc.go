// Package segment losslessly re-partitions a stream into a lazy sequence of
// sub-streams and operates on the result.
//
// Span and SplitAt perform one bisection: the returned stream emits a prefix
// of the input and terminates in the continuation. GroupBy, Group, and
// ChunksOf apply bisection repeatedly, producing a Segments value: a stream
// of layers in which each layer's own terminal value is the segmentation
// continuing after it. Concat is the canonical inverse of segmentation;
// Intercalate, Take, TakeDrain, Drop, Folds, and FoldsErr make up the rest of
// the algebra.
//
// Nothing is buffered: a layer's elements are produced on demand, each source
// element is observed at most once, and the source terminal value threads
// through every operation that does not explicitly document dropping it.
package segment
