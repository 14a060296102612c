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

// ErrEmptyCore is the value Align panics with when either the query or the
// text has zero length.
var ErrEmptyCore = fmt.Errorf("wfa: query and text must be non-empty")

// ErrInvalidPenalties is returned when penalties violate the gap-affine
// model's preconditions (negative values, mismatch/gap-extend below 1, or a
// nonzero match cost).
var ErrInvalidPenalties = fmt.Errorf("wfa: mismatch and gap-extend must be >= 1, and no penalty may be negative")

// ErrAdaptiveUnsupported is returned when Config.Adapt is set. Adaptive
// wavefront reduction is a non-goal of this core.
var ErrAdaptiveUnsupported = fmt.Errorf("wfa: adaptive wavefront reduction is not implemented")

// ErrTraceback indicates the traceback loop found no candidate predecessor
// while s > 0 and (v, h) > 0. This means either the oracle is inconsistent
// with the table it produced, or the table is corrupted.
var ErrTraceback = fmt.Errorf("wfa: traceback found no predecessor candidate")

// BudgetExhaustedError is returned by Align when the score reaches
// max_possible_score before the end of the alignment is reached.
type BudgetExhaustedError struct {
	Score    int
	MaxScore int
}

func (e *BudgetExhaustedError) Error() string {
	return fmt.Sprintf("wfa: gave up: score %d reached the budget %d", e.Score, e.MaxScore)
}
