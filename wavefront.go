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

import (
	"bytes"
	"fmt"
)

// WaveFront is the set of Offsets over every diagonal k in [Lo, Hi] for one
// layer (M, I or D) at one score. Unlike a single-symbol aligner's flat
// offset array, each diagonal here carries a whole Offset vector, since a
// degenerate text column can expose more than one candidate symbol.
type WaveFront struct {
	Lo, Hi  int
	Offsets []Offset
}

// NewWaveFront allocates a WaveFront spanning [lo, hi], each diagonal
// starting life as a single zero offset. It panics if lo > hi, mirroring
// the precondition on the Rust original this was ported from.
func NewWaveFront(lo, hi int) *WaveFront {
	if lo > hi {
		panic(fmt.Sprintf("wfa: NewWaveFront: lo (%d) > hi (%d)", lo, hi))
	}
	offsets := make([]Offset, hi-lo+1)
	for i := range offsets {
		offsets[i] = FromScalar(0)
	}
	return &WaveFront{Lo: lo, Hi: hi, Offsets: offsets}
}

// KIndex converts a diagonal to a slice index. It panics when k falls
// outside [Lo, Hi]; callers that merely want to test membership should use
// InBounds first.
func (wf *WaveFront) KIndex(k int) int {
	if !wf.InBounds(k) {
		panic(fmt.Sprintf("wfa: KIndex: k=%d outside [%d, %d]", k, wf.Lo, wf.Hi))
	}
	return k - wf.Lo
}

// InBounds reports whether k falls within [Lo, Hi].
func (wf *WaveFront) InBounds(k int) bool {
	return k >= wf.Lo && k <= wf.Hi
}

// Get returns the Offset at diagonal k and whether it exists.
func (wf *WaveFront) Get(k int) (Offset, bool) {
	if !wf.InBounds(k) {
		return Offset{}, false
	}
	return wf.Offsets[k-wf.Lo], true
}

// GetMut returns a pointer to the Offset at diagonal k and whether it
// exists, for in-place mutation by Extend.
func (wf *WaveFront) GetMut(k int) (*Offset, bool) {
	if !wf.InBounds(k) {
		return nil, false
	}
	return &wf.Offsets[k-wf.Lo], true
}

// String renders the k range and every present offset, for debugging at
// high verbosity levels.
func (wf *WaveFront) String() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "k range: [%d, %d].", wf.Lo, wf.Hi)
	for k := wf.Lo; k <= wf.Hi; k++ {
		o := wf.Offsets[k-wf.Lo]
		fmt.Fprintf(&buf, " k(%d):%v", k, o.Data)
	}
	return buf.String()
}
