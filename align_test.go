package wfa

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shenwei356/dgwfa/eds"
)

func scenarioPenalties() Penalties {
	return Penalties{Mismatch: 1, Matches: 0, GapOpen: 2, GapExtend: 1}
}

func countConsumed(cigar []byte) (queryLen, textLen int) {
	for _, op := range cigar {
		switch op {
		case 'M', 'X':
			queryLen++
			textLen++
		case 'D':
			queryLen++
		case 'I':
			textLen++
		}
	}
	return
}

func TestAlignExactMatchThroughBranch(t *testing.T) {
	query := []byte("ATCGAA")
	edt, err := eds.ParseEDT("ATC{TA,GA}A")
	require.NoError(t, err)
	dt := edt.Inelastic()

	config := Config{Penalties: scenarioPenalties()}
	score, cigar, err := Align(dt.Len(), len(query), config,
		DTMatchOracle(query, dt), DTTracebackOracle(query, dt))
	require.NoError(t, err)
	require.Equal(t, 0, score)
	require.Equal(t, "MMMMMM", string(cigar))
}

func TestAlignMismatchAtBranch(t *testing.T) {
	query := []byte("ATCGAA")
	edt, err := eds.ParseEDT("ATC{TA,GC}A")
	require.NoError(t, err)
	dt := edt.Inelastic()

	config := Config{Penalties: scenarioPenalties()}
	score, cigar, err := Align(dt.Len(), len(query), config,
		DTMatchOracle(query, dt), DTTracebackOracle(query, dt))
	require.NoError(t, err)
	require.Equal(t, 1, score)
	require.Equal(t, "MMMMXM", string(cigar))
}

func TestAlignDegenerateRealistic(t *testing.T) {
	query := []byte("TGGGCACTATCCCTTGTACGTTCGGAGTTTCATATTGTGTATCAAATATATTTATTAGCTCTTTTGAGCCTGACGAGCTGGGTAG")
	edt, err := eds.ParseEDT("TAGGC{TGG,ACT}ATCCCTT{TAA,GTA}{AT,CG}TTCTCA{C,G}TTTCCA{TGG,ATT}{C,G}TGAATCAAATGTATTTAT{TCGG,TAGG}CT{A,C}TTTTGAGC{AG,CT}GACTA{GTT,GCT}AGTTAG")
	require.NoError(t, err)
	dt := edt.Inelastic()
	require.Len(t, query, 85)

	config := Config{Penalties: scenarioPenalties()}
	_, cigar, err := Align(dt.Len(), len(query), config,
		DTMatchOracle(query, dt), DTTracebackOracle(query, dt))
	require.NoError(t, err)

	qLen, tLen := countConsumed(cigar)
	require.Equal(t, 85, qLen)
	require.Equal(t, dt.Len(), tLen)
}

func TestAlignPureMismatchBudget(t *testing.T) {
	query := []byte("AAAA")
	text := []byte("TTTT")

	config := Config{Penalties: scenarioPenalties()}
	score, cigar, err := Align(len(text), len(query), config,
		LinearMatchOracle(query, text), LinearTracebackOracle(query, text))
	require.NoError(t, err)
	require.Equal(t, 4, score)
	require.Equal(t, "XXXX", string(cigar))
}

func TestAlignPureInsertionBudget(t *testing.T) {
	query := []byte("AA")
	text := []byte("AAAAA")

	config := Config{Penalties: scenarioPenalties()}
	score, cigar, err := Align(len(text), len(query), config,
		LinearMatchOracle(query, text), LinearTracebackOracle(query, text))
	require.NoError(t, err)
	require.Equal(t, 5, score)

	qLen, tLen := countConsumed(cigar)
	require.Equal(t, 2, qLen)
	require.Equal(t, 5, tLen)

	result := NewAlignmentResult(score, cigar)
	require.Equal(t, "2M3I", result.RLECigar())
}

func TestAlignLargePenaltiesWithinBudget(t *testing.T) {
	query := []byte("A")
	text := []byte("T")

	config := Config{Penalties: Penalties{Mismatch: 100, GapOpen: 100, GapExtend: 100}}
	score, cigar, err := Align(len(text), len(query), config,
		LinearMatchOracle(query, text), LinearTracebackOracle(query, text))
	require.NoError(t, err)
	require.Equal(t, 100, score)
	require.Equal(t, "X", string(cigar))
}

func TestAlignRejectsEmptyInput(t *testing.T) {
	config := Config{Penalties: scenarioPenalties()}
	require.Panics(t, func() {
		Align(0, 1, config, func(v, h *int, o *Offset) bool { return false }, func(q, t [2]int) bool { return false })
	})
}

func TestAlignRejectsAdapt(t *testing.T) {
	config := Config{Adapt: true, Penalties: scenarioPenalties()}
	_, _, err := Align(1, 1, config,
		func(v, h *int, o *Offset) bool { return false },
		func(q, t [2]int) bool { return false })
	require.ErrorIs(t, err, ErrAdaptiveUnsupported)
}
