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

// Next computes the {M, I, D} wavefronts at score from the wavefronts at
// scores-x, score-o-e and score-e. It returns false without writing
// anything when none of those four predecessors exist, which tells the
// driver this score can be skipped entirely.
//
// The predecessor wavefronts are fetched from rows of lower scores before
// the new row is allocated; the per-diagonal loop then only reads those
// rows while writing the new one, so the row being built never aliases a
// row being read.
func Next(w *WaveFronts, score int, p Penalties, verbosity uint8) bool {
	mSub := w.GetM(score - p.Mismatch)
	mGap := w.GetM(score - p.GapOpen - p.GapExtend)
	iExt := w.GetI(score - p.GapExtend)
	dExt := w.GetD(score - p.GapExtend)

	if mSub == nil && mGap == nil && iExt == nil && dExt == nil {
		return false
	}

	lo, hi := nextBounds(mSub, mGap, iExt, dExt)

	which := LayerM
	if mGap != nil || iExt != nil {
		which |= LayerI
	}
	if mGap != nil || dExt != nil {
		which |= LayerD
	}

	set := w.Allocate(score, lo, hi, which)

	hasI := which&LayerI != 0
	hasD := which&LayerD != 0

	for k := lo; k <= hi; k++ {
		var iVal, dVal int32
		if hasI {
			iVal = addOne(max32(condScalar(mGap, k-1, hi), condScalar(iExt, k-1, hi)))
			mi, _ := set.I.GetMut(k)
			*mi = FromScalar(iVal)
		}
		if hasD {
			dVal = max32(condScalar(mGap, k+1, hi), condScalar(dExt, k+1, hi))
			md, _ := set.D.GetMut(k)
			*md = FromScalar(dVal)
		}

		mm, _ := set.M.GetMut(k)
		switch {
		case !hasI && !hasD:
			*mm = mOnlyCopy(mSub, k, hi)
		case hasI && !hasD:
			*mm = FromScalar(max32(addOne(condScalar(mSub, k, hi)), iVal))
		case !hasI && hasD:
			*mm = FromScalar(max32(addOne(condScalar(mSub, k, hi)), dVal))
		default:
			*mm = FromScalar(max32(max32(addOne(condScalar(mSub, k, hi)), iVal), dVal))
		}

		if verbosity >= 5 {
			logf(verbosity, 5, "next score=%d k=%d M=%v hasI=%v hasD=%v", score, k, mm.Data, hasI, hasD)
		}
	}

	return true
}

// nextBounds computes hi(s) = 1 + max(hi over present inputs) and
// lo(s) = -1 + min(lo over present inputs).
func nextBounds(wfs ...*WaveFront) (lo, hi int) {
	first := true
	for _, w := range wfs {
		if w == nil {
			continue
		}
		if first {
			lo, hi = w.Lo, w.Hi
			first = false
			continue
		}
		if w.Lo < lo {
			lo = w.Lo
		}
		if w.Hi > hi {
			hi = w.Hi
		}
	}
	return lo - 1, hi + 1
}

// condScalar performs the conditional fetch used throughout the
// recurrence: absent if the wavefront is nil, if k exceeds the new hi(s),
// or if k falls outside the wavefront's own [lo, hi]. Otherwise it returns
// the scalar max() of the offset stored at k.
func condScalar(w *WaveFront, k, hiS int) int32 {
	if w == nil || k > hiS || !w.InBounds(k) {
		return NullOffset
	}
	o, _ := w.Get(k)
	return o.Max()
}

// condFetch is condScalar's vector-preserving counterpart, used only by
// the M-only kernel, which alone must keep per-alternative multiplicity
// rather than collapsing to a scalar.
func condFetch(w *WaveFront, k, hiS int) (Offset, bool) {
	if w == nil || k > hiS || !w.InBounds(k) {
		return Offset{}, false
	}
	o, _ := w.Get(k)
	return o.Clone(), true
}

// mOnlyCopy implements the M-only kernel's slot-wise copy: every
// alternative of M_sub[k] is carried forward one step (+1), except
// NULL_OFFSET slots, which propagate unchanged. This is the one place in
// Next that does not collapse to a scalar max(), preserving the branch
// multiplicity a pure substitution-continuation run needs.
func mOnlyCopy(mSub *WaveFront, k, hiS int) Offset {
	src, ok := condFetch(mSub, k, hiS)
	if !ok {
		return NullOff()
	}
	out := Offset{Data: make([]int32, len(src.Data))}
	for i, v := range src.Data {
		out.Data[i] = addOne(v)
	}
	return out
}

// addOne increments v by one unless it is the NULL_OFFSET sentinel, which
// must propagate unchanged.
func addOne(v int32) int32 {
	if v == NullOffset {
		return NullOffset
	}
	return v + 1
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
