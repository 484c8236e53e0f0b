package cursor

// ============================================================================
// WHOLE-INPUT FOLDS
// ============================================================================

// FoldAll draws the cursor to exhaustion, folding step strictly over every
// element from begin, and returns done applied to the accumulator. The
// accumulator is forced each iteration; no deferred computation builds up on
// long inputs.
func FoldAll[T, R, A, B any](c *Cursor[T, R], begin A, step func(A, T) A, done func(A) B) (B, error) {
	acc := begin
	for {
		v, ok, err := c.Draw()
		if err != nil {
			var zero B
			return zero, err
		}
		if !ok {
			return done(acc), nil
		}
		acc = step(acc, v)
	}
}

// FoldAllErr is FoldAll with effectful callbacks: begin, step, and done may
// fail, and the first failure stops the fold.
func FoldAllErr[T, R, A, B any](
	c *Cursor[T, R],
	begin func() (A, error),
	step func(A, T) (A, error),
	done func(A) (B, error),
) (B, error) {
	var zero B
	acc, err := begin()
	if err != nil {
		return zero, err
	}
	for {
		v, ok, err := c.Draw()
		if err != nil {
			return zero, err
		}
		if !ok {
			return done(acc)
		}
		acc, err = step(acc, v)
		if err != nil {
			return zero, err
		}
	}
}
