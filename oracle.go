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

// MatchOracle is the capability Extend dispatches on: given the current
// (v, h) cursor and the Offset living at that diagonal, try to advance one
// step. It reports whether at least one alternative matched, and is free
// to mutate offset in place (reshaping it, advancing matched slots,
// marking mismatched ones abandoned). v and h are advanced by the oracle
// itself, exactly once per call, whenever any alternative matched.
//
// Implementations must return false without mutation when h or v falls
// outside its sequence, or either is negative.
type MatchOracle func(v, h *int, offset *Offset) bool

// TracebackOracle validates a run of Matches a traceback step is about to
// emit. It reports true iff every aligned index in the half-open ranges
// [qRange[0], qRange[1]) and [tRange[0], tRange[1]) has at least one text
// alternative equal to the query symbol at that index. Negative
// coordinates must report false.
type TracebackOracle func(qRange, tRange [2]int) bool
