package wfa

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewWaveFronts(t *testing.T) {
	w := NewWaveFronts(2, -3, 5)
	require.Equal(t, 2, w.AK)
	require.Equal(t, 0, w.MaxScore())
	m := w.GetM(0)
	require.NotNil(t, m)
	require.Equal(t, 0, m.Lo)
	require.Equal(t, 0, m.Hi)
	require.Nil(t, w.GetI(0))
	require.Nil(t, w.GetD(0))
}

func TestWaveFrontsGetAbsent(t *testing.T) {
	w := NewWaveFronts(0, 0, 0)
	require.Nil(t, w.GetM(-1))
	require.Nil(t, w.GetM(10))
}

func TestWaveFrontsAllocate(t *testing.T) {
	w := NewWaveFronts(0, -2, 2)
	set := w.Allocate(1, -1, 1, LayerM|LayerI)
	require.NotNil(t, set.M)
	require.NotNil(t, set.I)
	require.Nil(t, set.D)
	require.Equal(t, 1, w.MaxScore())
}

func TestWaveFrontsAllocatePadsHoles(t *testing.T) {
	w := NewWaveFronts(0, -2, 2)
	w.Allocate(3, -1, 1, LayerM)
	require.Equal(t, 3, w.MaxScore())
	require.Nil(t, w.GetM(1))
	require.Nil(t, w.GetM(2))
	require.NotNil(t, w.GetM(3))
}

func TestWaveFrontsAllocatePanicsOnNonMonotonicScore(t *testing.T) {
	w := NewWaveFronts(0, -2, 2)
	require.Panics(t, func() { w.Allocate(0, -1, 1, LayerM) })
}
