package wfa

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtendAdvancesOnMatch(t *testing.T) {
	query := []byte("AAAA")
	text := []byte("AAAA")

	m := NewWaveFront(0, 0)
	Extend(m, LinearMatchOracle(query, text), 0, 0)

	o, ok := m.Get(0)
	require.True(t, ok)
	require.Equal(t, int32(4), o.Max())
}

func TestExtendIsIdempotent(t *testing.T) {
	query := []byte("AAAA")
	text := []byte("AAAA")

	m := NewWaveFront(0, 0)
	oracle := LinearMatchOracle(query, text)
	Extend(m, oracle, 0, 0)

	before, _ := m.Get(0)
	Extend(m, oracle, 0, 0)
	after, _ := m.Get(0)
	require.Equal(t, before.Max(), after.Max())
}

func TestExtendStopsOnMismatch(t *testing.T) {
	query := []byte("AAGA")
	text := []byte("AATA")

	m := NewWaveFront(0, 0)
	Extend(m, LinearMatchOracle(query, text), 0, 0)

	o, _ := m.Get(0)
	require.Equal(t, int32(2), o.Max())
}
