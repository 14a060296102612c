package wfa

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextSkipsWhenNoPredecessors(t *testing.T) {
	w := NewWaveFronts(0, 0, 0)
	ok := Next(w, 5, Penalties{Mismatch: 1, GapOpen: 2, GapExtend: 1}, 0)
	require.False(t, ok)
	require.Equal(t, 0, w.MaxScore())
}

func TestNextMOnlyKernelCopiesSlotwise(t *testing.T) {
	w := NewWaveFronts(0, -5, 5)
	// score 0's M wavefront is seeded with a single offset [0] at k=0.
	ok := Next(w, 1, Penalties{Mismatch: 1, GapOpen: 2, GapExtend: 1}, 0)
	require.True(t, ok)

	m := w.GetM(1)
	require.NotNil(t, m)
	require.Nil(t, w.GetI(1))
	require.Nil(t, w.GetD(1))
	require.Equal(t, -1, m.Lo)
	require.Equal(t, 1, m.Hi)

	got, ok := m.Get(0)
	require.True(t, ok)
	require.Equal(t, []int32{1}, got.Data)

	left, _ := m.Get(-1)
	require.Equal(t, int32(NullOffset), left.Max())
	right, _ := m.Get(1)
	require.Equal(t, int32(NullOffset), right.Max())
}

func TestNextMOnlyKernelPreservesMultiplicity(t *testing.T) {
	// A hand-built M[0] with two alternatives on diagonal 0, mimicking a
	// still-unresolved branch column. Scenario 2 in align_test.go exercises
	// this through a full alignment; this test isolates the kernel itself.
	w := &WaveFronts{Rows: []*WaveFrontSet{{M: NewWaveFront(0, 0)}}, AK: 0, MinK: -5, MaxK: 5}
	w.Rows[0].M.Offsets[0] = FromVec([]int32{3, 5})

	ok := Next(w, 1, Penalties{Mismatch: 1, GapOpen: 2, GapExtend: 1}, 0)
	require.True(t, ok)

	m := w.GetM(1)
	got, ok := m.Get(0)
	require.True(t, ok)
	require.Equal(t, []int32{4, 6}, got.Data)
}

func TestNextMixedKernelCollapsesToScalar(t *testing.T) {
	w := &WaveFronts{Rows: []*WaveFrontSet{{M: NewWaveFront(0, 0)}}, AK: 0, MinK: -5, MaxK: 5}
	w.Rows[0].M.Offsets[0] = FromVec([]int32{3, 5})

	p := Penalties{Mismatch: 1, GapOpen: 1, GapExtend: 1}
	require.True(t, Next(w, 1, p, 0))
	// at score 2, M_gap = M[2-1-1] = M[0] is present, which is enough on
	// its own to allocate I and D even though nothing has extended a gap
	// yet.
	require.True(t, Next(w, 2, p, 0))

	m := w.GetM(2)
	require.NotNil(t, m)
	require.NotNil(t, w.GetI(2))
	require.NotNil(t, w.GetD(2))
	got, ok := m.Get(0)
	require.True(t, ok)
	// the mixed kernel only ever stores a scalar max(), never the
	// two-alternative vector the M-only kernel would have preserved.
	require.Len(t, got.Data, 1)
}
