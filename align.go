// Copyright © 2024 Wei Shen <shenwei356@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package wfa

// Aligner runs WaveFront alignments against a fixed Config. It can be
// reused across many (T, Q, oracle) triples. Each Align call allocates a
// fresh table; the table of the last call is kept until the next call or
// Reset, and no allocation is shared between alignments.
type Aligner struct {
	Config Config
	table  *WaveFronts
}

// New builds an Aligner for the given Config. It panics if the penalties
// are malformed. Config.Adapt is not checked here; Align rejects it.
func New(config Config) *Aligner {
	if err := config.Penalties.Validate(); err != nil {
		panic(err)
	}
	return &Aligner{Config: config}
}

// Align runs the WaveFront driver: Extend, budget-check, end-check, Next,
// repeated until the central diagonal reaches its target offset, then
// Traceback. T and Q are lengths only; match and traceback close over the
// actual query and text.
func (a *Aligner) Align(T, Q int, match MatchOracle, traceback TracebackOracle) (int, []byte, error) {
	if T == 0 || Q == 0 {
		panic(ErrEmptyCore)
	}
	if a.Config.Adapt {
		return 0, nil, ErrAdaptiveUnsupported
	}

	p := a.Config.Penalties
	aK := T - Q
	aOffset := int32(T)
	maxPossibleScore := max(p.Mismatch*T, p.GapExtend*T+p.GapOpen)

	a.table = NewWaveFronts(aK, -Q, T)
	w := a.table

	score := 0
	for {
		if m := w.GetM(score); m != nil {
			Extend(m, match, score, a.Config.Verbosity)
		}

		if score >= maxPossibleScore {
			return 0, nil, &BudgetExhaustedError{Score: score, MaxScore: maxPossibleScore}
		}

		if endReached(w, score, aOffset) {
			break
		}

		score++
		Next(w, score, p, a.Config.Verbosity)
	}

	cigar, err := Traceback(w, score, p, traceback, a.Config.Verbosity)
	if err != nil {
		return 0, nil, err
	}
	return score, cigar, nil
}

// Reset drops the table from the previous alignment so the Aligner can be
// reused without retaining the prior run's memory.
func (a *Aligner) Reset() {
	a.table = nil
}

// endReached reports whether the M wavefront at score covers a_k and has
// reached a_offset there.
func endReached(w *WaveFronts, score int, aOffset int32) bool {
	m := w.GetM(score)
	if m == nil {
		return false
	}
	o, ok := m.Get(w.AK)
	if !ok {
		return false
	}
	return o.Max() >= aOffset
}

// Align is the package-level convenience entry point for a one-shot
// alignment, matching the external interface's align(T, Q, config,
// match_oracle, traceback_oracle) signature directly.
func Align(T, Q int, config Config, match MatchOracle, traceback TracebackOracle) (int, []byte, error) {
	return New(config).Align(T, Q, match, traceback)
}
