package wfa

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOffsetFromScalar(t *testing.T) {
	o := FromScalar(3)
	require.Equal(t, []int32{3}, o.Data)
	require.Nil(t, o.Abandoned)
	require.Equal(t, int32(3), o.Max())
	require.Equal(t, int32(3), o.Min())
}

func TestOffsetFromVec(t *testing.T) {
	o := FromVec([]int32{1, 5, 3})
	require.Equal(t, int32(5), o.Max())
	require.Equal(t, int32(1), o.Min())
	require.Len(t, o.Abandoned, 3)
	for _, a := range o.Abandoned {
		require.Zero(t, a)
	}
}

func TestNullOff(t *testing.T) {
	o := NullOff()
	require.Equal(t, []int32{NullOffset}, o.Data)
	require.True(t, o.Max() < 0)
}

func TestOffsetAbandon(t *testing.T) {
	o := FromVec([]int32{0, 0})
	require.False(t, o.IsAbandoned(0))
	o.SetAbandon(0)
	require.True(t, o.IsAbandoned(0))
	require.False(t, o.IsAbandoned(1))
}

func TestOffsetAbandonNoOpWithoutTracking(t *testing.T) {
	o := FromScalar(0)
	o.SetAbandon(0)
	require.False(t, o.IsAbandoned(0))
}

func TestOffsetReshapeGrow(t *testing.T) {
	o := FromScalar(4)
	o.Reshape(3)
	require.Equal(t, []int32{4, 4, 4}, o.Data)
	require.Len(t, o.Abandoned, 3)
}

func TestOffsetReshapeShrinkToOne(t *testing.T) {
	o := FromVec([]int32{1, 2, 3})
	o.SetAbandon(1)
	o.Reshape(1)
	require.Equal(t, []int32{3}, o.Data)
	require.Nil(t, o.Abandoned)
}

func TestOffsetPush(t *testing.T) {
	o := FromVec([]int32{1})
	o.Push(2)
	require.Equal(t, []int32{1, 2}, o.Data)
	require.Len(t, o.Abandoned, 2)
}

func TestOffsetClone(t *testing.T) {
	o := FromVec([]int32{1, 2})
	c := o.Clone()
	c.Data[0] = 99
	require.Equal(t, int32(1), o.Data[0])
}
