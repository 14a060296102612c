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

import "github.com/shenwei356/dgwfa/eds"

// DTMatchOracle closes over a query and an inelastic degenerate text and
// implements the match-oracle contract of §4.4: it reshapes offset to the
// alternative count of the current column, advances every alternative
// that agrees with the query and has not already mismatched, and marks
// every disagreeing alternative abandoned.
func DTMatchOracle(query []byte, text eds.DT) MatchOracle {
	return func(v, h *int, offset *Offset) bool {
		if *v < 0 || *h < 0 || *v >= len(query) || *h >= text.Len() {
			return false
		}

		alts := text.At(*h)
		offset.Reshape(len(alts))

		found := false
		for i, c := range alts {
			if c == query[*v] {
				if !offset.IsAbandoned(i) {
					offset.Set(i, offset.Get(i)+1)
					found = true
				}
			} else {
				offset.SetAbandon(i)
			}
		}

		if found {
			*v++
			*h++
		}
		return found
	}
}

// DTTracebackOracle closes over the same query and text and implements
// the traceback-oracle contract of §4.7: a run of positions is a valid
// Match run iff every aligned text column has at least one alternative
// equal to the corresponding query byte.
func DTTracebackOracle(query []byte, text eds.DT) TracebackOracle {
	return func(qRange, tRange [2]int) bool {
		if qRange[0] < 0 || tRange[0] < 0 {
			return false
		}
		n := qRange[1] - qRange[0]
		for i := 0; i < n; i++ {
			qi, ti := qRange[0]+i, tRange[0]+i
			if qi < 0 || qi >= len(query) || ti < 0 || ti >= text.Len() {
				return false
			}
			ok := false
			for _, c := range text.At(ti) {
				if c == query[qi] {
					ok = true
					break
				}
			}
			if !ok {
				return false
			}
		}
		return true
	}
}
