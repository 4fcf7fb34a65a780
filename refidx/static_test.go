package refidx_test

import (
	"testing"

	"github.com/katalvlaran/vgunfold/handle"
	"github.com/katalvlaran/vgunfold/refidx"
	"github.com/stretchr/testify/require"
)

func TestStaticOccurrencesAndHandleAt(t *testing.T) {
	w := handle.Walk{
		handle.MustNew(1, false),
		handle.MustNew(2, false),
		handle.MustNew(3, false),
	}
	idx := refidx.NewStatic(map[string]handle.Walk{"ref": w}, map[uint64]string{
		1: "A", 2: "C", 3: "G",
	})

	require.Equal(t, []string{"ref"}, idx.PathNames())
	require.Equal(t, 3, idx.PathLen("ref"))
	require.Equal(t, handle.MustNew(2, false), idx.HandleAt("ref", 1))
	require.Equal(t, []int{1}, idx.Occurrences("ref", 2))

	seq, ok := idx.Sequence(2)
	require.True(t, ok)
	require.Equal(t, "C", seq)

	_, ok = idx.Sequence(99)
	require.False(t, ok)
}

func TestStaticMultipleOccurrences(t *testing.T) {
	w := handle.Walk{
		handle.MustNew(1, false),
		handle.MustNew(2, false),
		handle.MustNew(1, true),
	}
	idx := refidx.NewStatic(map[string]handle.Walk{"p": w}, nil)
	require.Equal(t, []int{0, 2}, idx.Occurrences("p", 1))
}
