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

import "fmt"

// Layer selects which of the three wavefront layers a Next step allocates.
// It is a bitmask so callers can request {M}, {M,I}, {M,D} or {M,I,D} with
// simple ORs, matching the four kernels of the recurrence.
type Layer uint8

const (
	LayerM Layer = 1 << iota
	LayerI
	LayerD
)

// WaveFrontSet is the {M?, I?, D?} triple at one score. A layer is nil when
// the recurrence that would have produced it had no defined input.
type WaveFrontSet struct {
	M, I, D *WaveFront
}

// WaveFronts is the score-indexed sparse table of WaveFrontSets, plus the
// alignment's global diagonal geometry. Rows is append-only: once written,
// row[s] is never replaced, and holes are represented as nil rather than
// omitted, since scores form a dense small-integer domain.
type WaveFronts struct {
	Rows       []*WaveFrontSet
	AK         int
	MinK, MaxK int
}

// NewWaveFronts builds the table seeded with score 0: a single M wavefront
// spanning only diagonal 0, offset [0], per the driver's initial state.
func NewWaveFronts(aK, minK, maxK int) *WaveFronts {
	return &WaveFronts{
		Rows: []*WaveFrontSet{{M: NewWaveFront(0, 0)}},
		AK:   aK, MinK: minK, MaxK: maxK,
	}
}

// row returns table[s], or nil if s is negative or beyond the written range.
func (w *WaveFronts) row(s int) *WaveFrontSet {
	if s < 0 || s >= len(w.Rows) {
		return nil
	}
	return w.Rows[s]
}

// GetM returns the M wavefront at score s, or nil if absent.
func (w *WaveFronts) GetM(s int) *WaveFront {
	if r := w.row(s); r != nil {
		return r.M
	}
	return nil
}

// GetI returns the I wavefront at score s, or nil if absent.
func (w *WaveFronts) GetI(s int) *WaveFront {
	if r := w.row(s); r != nil {
		return r.I
	}
	return nil
}

// GetD returns the D wavefront at score s, or nil if absent.
func (w *WaveFronts) GetD(s int) *WaveFront {
	if r := w.row(s); r != nil {
		return r.D
	}
	return nil
}

// MaxScore is the highest score written so far.
func (w *WaveFronts) MaxScore() int {
	return len(w.Rows) - 1
}

// Allocate writes a new row at score, padding any intermediate scores with
// absent (nil) rows. It panics if score does not strictly exceed
// MaxScore(), which would indicate the driver stepping scores out of order.
func (w *WaveFronts) Allocate(score, lo, hi int, which Layer) *WaveFrontSet {
	if score <= w.MaxScore() {
		panic(fmt.Sprintf("wfa: Allocate: score %d does not exceed max_score %d", score, w.MaxScore()))
	}
	for len(w.Rows) <= score {
		w.Rows = append(w.Rows, nil)
	}
	set := &WaveFrontSet{}
	if which&LayerM != 0 {
		set.M = NewWaveFront(lo, hi)
	}
	if which&LayerI != 0 {
		set.I = NewWaveFront(lo, hi)
	}
	if which&LayerD != 0 {
		set.D = NewWaveFront(lo, hi)
	}
	w.Rows[score] = set
	return set
}
