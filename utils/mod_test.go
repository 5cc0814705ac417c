package utils

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]string{"a", "b"}, "b"))
	require.Equal(t, -1, FindIndex([]string{"a", "b"}, "c"))
}

func TestFirst(t *testing.T) {
	v, ok := First(slices.Values([]int{4, 5}))
	require.True(t, ok)
	require.Equal(t, 4, v)

	_, ok = First(slices.Values([]int{}))
	require.False(t, ok)
}

func TestFind(t *testing.T) {
	even := func(v int) bool { return v%2 == 0 }

	v, ok := Find(slices.Values([]int{1, 3, 6, 8}), even)
	require.True(t, ok)
	require.Equal(t, 6, v)

	_, ok = Find(slices.Values([]int{1, 3}), even)
	require.False(t, ok)
}

func TestCount(t *testing.T) {
	require.Equal(t, 3, Count(slices.Values([]int{1, 2, 3})))
	require.Zero(t, Count(slices.Values([]int(nil))))
}
