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

// Extend walks every diagonal of the M wavefront at score, repeatedly
// invoking match against the oracle until it reports no further match.
// The oracle owns the mutation of v, h and offset; Extend only drives the
// loop and derives the starting (v, h) from the offset already on file.
func Extend(m *WaveFront, match MatchOracle, score int, verbosity uint8) {
	for k := m.Hi; k >= m.Lo; k-- {
		offset, _ := m.GetMut(k)
		v := int(offset.Max()) - k
		h := int(offset.Max())
		for match(&v, &h, offset) {
			if verbosity >= 5 {
				logf(verbosity, 5, "extend score=%d k=%d v=%d h=%d offset=%v", score, k, v, h, offset.Data)
			}
		}
	}
}
