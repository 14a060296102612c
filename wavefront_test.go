package wfa

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewWaveFront(t *testing.T) {
	wf := NewWaveFront(-2, 3)
	require.Equal(t, -2, wf.Lo)
	require.Equal(t, 3, wf.Hi)
	require.Len(t, wf.Offsets, 6)
	for k := wf.Lo; k <= wf.Hi; k++ {
		o, ok := wf.Get(k)
		require.True(t, ok)
		require.Equal(t, int32(0), o.Max())
	}
}

func TestNewWaveFrontPanicsOnBadBounds(t *testing.T) {
	require.Panics(t, func() { NewWaveFront(3, -2) })
}

func TestWaveFrontInBounds(t *testing.T) {
	wf := NewWaveFront(-1, 1)
	require.True(t, wf.InBounds(-1))
	require.True(t, wf.InBounds(0))
	require.True(t, wf.InBounds(1))
	require.False(t, wf.InBounds(-2))
	require.False(t, wf.InBounds(2))
}

func TestWaveFrontKIndex(t *testing.T) {
	wf := NewWaveFront(-3, 3)
	require.Equal(t, 0, wf.KIndex(-3))
	require.Equal(t, 6, wf.KIndex(3))
	require.Panics(t, func() { wf.KIndex(4) })
}

func TestWaveFrontGetOutOfBounds(t *testing.T) {
	wf := NewWaveFront(0, 0)
	_, ok := wf.Get(5)
	require.False(t, ok)
}

func TestWaveFrontGetMutMutates(t *testing.T) {
	wf := NewWaveFront(0, 2)
	o, ok := wf.GetMut(1)
	require.True(t, ok)
	o.Set(0, 42)
	got, _ := wf.Get(1)
	require.Equal(t, int32(42), got.Max())
}
