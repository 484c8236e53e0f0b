package stream

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroValueIsEmpty(t *testing.T) {
	var s Stream[int, string]

	st, err := s.Observe()
	require.NoError(t, err)
	assert.True(t, st.End)
	assert.Equal(t, "", st.Final)
}

func TestFromSliceCollect(t *testing.T) {
	s := FromSlice([]int{1, 2, 3}, "eof")

	elems, final, err := Collect(s)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, elems)
	assert.Equal(t, "eof", final)
}

func TestConsIsLazy(t *testing.T) {
	observed := 0
	tail := New(func() (Step[int, struct{}], error) {
		observed++
		return Step[int, struct{}]{End: true}, nil
	})
	s := Cons(7, tail)
	assert.Equal(t, 0, observed)

	st, err := s.Observe()
	require.NoError(t, err)
	require.False(t, st.End)
	assert.Equal(t, 7, st.Elem)
	assert.Equal(t, 0, observed)

	st, err = st.Rest.Observe()
	require.NoError(t, err)
	assert.True(t, st.End)
	assert.Equal(t, 1, observed)
}

func TestEmit(t *testing.T) {
	elems, _, err := Collect(Emit("sep"))
	require.NoError(t, err)
	assert.Equal(t, []string{"sep"}, elems)
}

func TestRange(t *testing.T) {
	elems, _, err := Collect(Range(3, 7))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 5, 6}, elems)

	elems, _, err = Collect(Range(7, 3))
	require.NoError(t, err)
	assert.Empty(t, elems)
}

func TestEachReturnsFinal(t *testing.T) {
	var seen []int
	final, err := Each(FromSlice([]int{4, 5}, 42), func(v int) error {
		seen = append(seen, v)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5}, seen)
	assert.Equal(t, 42, final)
}

func TestEachStopsOnCallbackError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	_, err := Each(Of(1, 2, 3), func(int) error {
		calls++
		if calls == 2 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
}

func TestDiscardAll(t *testing.T) {
	final, err := DiscardAll(FromSlice([]string{"a", "b"}, 9))
	require.NoError(t, err)
	assert.Equal(t, 9, final)

	// Discarding an already-exhausted stream is a no-op.
	final, err = DiscardAll(Done[string](9))
	require.NoError(t, err)
	assert.Equal(t, 9, final)
}

func TestMap(t *testing.T) {
	elems, final, err := Collect(Map(FromSlice([]int{1, 2, 3}, "end"), func(v int) int { return v * 10 }))
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30}, elems)
	assert.Equal(t, "end", final)
}

func TestMapFinal(t *testing.T) {
	s := MapFinal(FromSlice([]int{1, 2}, 5), func(r int) string {
		if r == 5 {
			return "five"
		}
		return "other"
	})
	elems, final, err := Collect(s)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, elems)
	assert.Equal(t, "five", final)
}

func TestFromChan(t *testing.T) {
	ch := make(chan int, 3)
	ch <- 1
	ch <- 2
	close(ch)

	elems, _, err := Collect(FromChan(ch))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, elems)
}

func TestFromGenerator(t *testing.T) {
	s := FromGenerator(func(emit func(int)) error {
		for i := 0; i < 200; i++ {
			emit(i)
		}
		return nil
	})

	elems, final, err := Collect(s)
	require.NoError(t, err)
	require.Len(t, elems, 200)
	assert.Equal(t, 0, elems[0])
	assert.Equal(t, 199, elems[199])
	assert.NoError(t, final)
}

func TestFromGeneratorFailureBecomesFinal(t *testing.T) {
	boom := errors.New("generator failed")
	s := FromGenerator(func(emit func(string)) error {
		emit("one")
		return boom
	})

	elems, final, err := Collect(s)
	require.NoError(t, err)
	assert.Equal(t, []string{"one"}, elems)
	assert.ErrorIs(t, final, boom)
}

func TestEffectFailurePropagates(t *testing.T) {
	boom := errors.New("effect failed")
	s := Cons(1, New(func() (Step[int, struct{}], error) {
		return Step[int, struct{}]{}, boom
	}))

	elems, _, err := Collect(s)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []int{1}, elems)
}
