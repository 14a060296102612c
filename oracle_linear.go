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

// LinearMatchOracle is the non-degenerate match oracle: query and text
// are plain byte sequences, one symbol per column, grounded on teacher's
// own extend loop (wfa.go's byte-for-byte compare) rather than on the
// degenerate-text reshape/abandon machinery DTMatchOracle needs.
func LinearMatchOracle(query, text []byte) MatchOracle {
	return func(v, h *int, offset *Offset) bool {
		if *v < 0 || *h < 0 || *v >= len(query) || *h >= len(text) {
			return false
		}
		if query[*v] != text[*h] {
			return false
		}
		offset.Set(0, offset.Get(0)+1)
		*v++
		*h++
		return true
	}
}

// LinearTracebackOracle is the non-degenerate traceback oracle: a run is
// valid iff query and text agree byte-for-byte over the aligned range.
func LinearTracebackOracle(query, text []byte) TracebackOracle {
	return func(qRange, tRange [2]int) bool {
		if qRange[0] < 0 || tRange[0] < 0 {
			return false
		}
		n := qRange[1] - qRange[0]
		for i := 0; i < n; i++ {
			qi, ti := qRange[0]+i, tRange[0]+i
			if qi < 0 || qi >= len(query) || ti < 0 || ti >= len(text) {
				return false
			}
			if query[qi] != text[ti] {
				return false
			}
		}
		return true
	}
}
