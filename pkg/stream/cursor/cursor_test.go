package cursor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/torgeirsh/streamparse/pkg/stream"
)

func TestDrawSequence(t *testing.T) {
	c := New(stream.FromSlice([]int{1, 2, 3}, "eof"))

	for _, want := range []int{1, 2, 3} {
		v, ok, err := c.Draw()
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, want, v)
	}

	_, ok, err := c.Draw()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDrawPastEndIsIdempotent(t *testing.T) {
	observed := 0
	src := stream.New(func() (stream.Step[int, string], error) {
		observed++
		return stream.Step[int, string]{End: true, Final: "eof"}, nil
	})
	c := New(src)

	// The end state sticks: repeated draws do not re-observe the source.
	for i := 0; i < 3; i++ {
		_, ok, err := c.Draw()
		require.NoError(t, err)
		assert.False(t, ok)
	}
	assert.Equal(t, 1, observed)

	final, done := c.Final()
	assert.True(t, done)
	assert.Equal(t, "eof", final)
}

func TestFinalUnavailableBeforeEnd(t *testing.T) {
	c := New(stream.FromSlice([]int{1}, "eof"))

	_, done := c.Final()
	assert.False(t, done)

	require.NoError(t, c.SkipAll())
	final, done := c.Final()
	assert.True(t, done)
	assert.Equal(t, "eof", final)
}

func TestPushbackLIFO(t *testing.T) {
	c := New(stream.FromSlice([]int{9}, struct{}{}))

	c.Pushback(1) // a
	c.Pushback(2) // b, pushed last, drawn first

	elems, err := c.DrawAll()
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 9}, elems)
}

func TestPushbackNeverDrawn(t *testing.T) {
	c := New(stream.Of("x"))
	c.Pushback("injected")

	elems, err := c.DrawAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"injected", "x"}, elems)
}

func TestPeekDoesNotConsume(t *testing.T) {
	c := New(stream.Of(7, 8))

	v, ok, err := c.Peek()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 7, v)

	elems, err := c.DrawAll()
	require.NoError(t, err)
	assert.Equal(t, []int{7, 8}, elems)
}

func TestAtEnd(t *testing.T) {
	c := New(stream.Of(1))

	end, err := c.AtEnd()
	require.NoError(t, err)
	assert.False(t, end)

	ok, err := c.Skip()
	require.NoError(t, err)
	require.True(t, ok)

	end, err = c.AtEnd()
	require.NoError(t, err)
	assert.True(t, end)
}

func TestSkipReportsPresence(t *testing.T) {
	c := New(stream.Of(1))

	ok, err := c.Skip()
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.Skip()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFoldAll(t *testing.T) {
	c := New(stream.FromSlice([]int{1, 2, 3, 4}, "eof"))

	sum, err := FoldAll(c, 0,
		func(acc, v int) int { return acc + v },
		func(acc int) string {
			if acc > 5 {
				return "big"
			}
			return "small"
		})
	require.NoError(t, err)
	assert.Equal(t, "big", sum)

	final, done := c.Final()
	assert.True(t, done)
	assert.Equal(t, "eof", final)
}

func TestFoldAllSeesPushback(t *testing.T) {
	c := New(stream.Of(2, 3))
	c.Pushback(1)

	total, err := FoldAll(c, 0,
		func(acc, v int) int { return acc + v },
		func(acc int) int { return acc })
	require.NoError(t, err)
	assert.Equal(t, 6, total)
}

func TestFoldAllErr(t *testing.T) {
	boom := errors.New("step failed")
	c := New(stream.Of(1, 2, 3))

	_, err := FoldAllErr(c,
		func() (int, error) { return 0, nil },
		func(acc, v int) (int, error) {
			if v == 2 {
				return 0, boom
			}
			return acc + v, nil
		},
		func(acc int) (int, error) { return acc, nil })
	assert.ErrorIs(t, err, boom)
}

func TestDrawErrorKeepsPosition(t *testing.T) {
	boom := errors.New("transient")
	failed := false
	src := stream.New(func() (stream.Step[int, struct{}], error) {
		if !failed {
			failed = true
			return stream.Step[int, struct{}]{}, boom
		}
		return stream.Step[int, struct{}]{Elem: 5, Rest: stream.Done[int](struct{}{})}, nil
	})
	c := New(src)

	_, _, err := c.Draw()
	assert.ErrorIs(t, err, boom)

	// The failed suspension point is observed again, not skipped.
	v, ok, err := c.Draw()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 5, v)
}
