package wfa

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlignmentResultStats(t *testing.T) {
	r := NewAlignmentResult(3, []byte("MMXDDMII"))
	require.Equal(t, 8, r.AlignLen)
	require.Equal(t, 3, r.Matches)
	require.Equal(t, 4, r.Gaps)
	require.Equal(t, 2, r.GapRegions)
}

func TestAlignmentResultRLECigar(t *testing.T) {
	r := NewAlignmentResult(5, []byte("MMIII"))
	require.Equal(t, "2M3I", r.RLECigar())
}

func TestAlignmentResultRLECigarEmpty(t *testing.T) {
	r := NewAlignmentResult(0, nil)
	require.Equal(t, "", r.RLECigar())
}

func TestAlignmentResultRender(t *testing.T) {
	r := NewAlignmentResult(1, []byte("MMXMDI"))
	query := []byte("ATCGA")
	text := []byte("ATGGT")

	q, marker, tx := r.Render(query, text)
	require.Equal(t, "ATCGA-", string(q))
	require.Equal(t, "ATGG-T", string(tx))
	require.Len(t, marker, 6)
	require.Equal(t, byte('|'), marker[0])
	require.Equal(t, byte(' '), marker[2])
}
