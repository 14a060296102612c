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

// Penalties contains the gap-affine penalties. Matches cost 0 always;
// Matches is kept as a field only so a caller can assert it is 0.
type Penalties struct {
	Mismatch  int
	Matches   int
	GapOpen   int
	GapExtend int
}

// DefaultPenalties is from the WFA paper.
var DefaultPenalties = Penalties{
	Mismatch:  4,
	Matches:   0,
	GapOpen:   6,
	GapExtend: 2,
}

// Validate checks the preconditions §4.8 places on the penalty model:
// nonnegative throughout, mismatch/gap-extend at least 1 (a zero-cost
// mismatch or gap-extend would let the budget formula undercount), and a
// match cost of exactly 0.
func (p Penalties) Validate() error {
	if p.Mismatch < 1 || p.GapExtend < 1 || p.GapOpen < 0 || p.Matches != 0 {
		return ErrInvalidPenalties
	}
	return nil
}

// Config is the set of knobs Align accepts. Adapt is reserved for a future
// heuristic reduction pass and must be false: this core behaves
// non-adaptively throughout. Verbosity gates diagnostic tracing emitted to
// stderr from Next, Extend and Traceback; 0 is silent, 6 is the most
// verbose.
type Config struct {
	Adapt     bool
	Verbosity uint8
	Penalties Penalties
}

// DefaultConfig pairs DefaultPenalties with a silent, non-adaptive run.
var DefaultConfig = Config{
	Adapt:     false,
	Verbosity: 0,
	Penalties: DefaultPenalties,
}
