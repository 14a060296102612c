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

// lastOp tracks which kind of edit the traceback loop just emitted, since
// the candidate set for the next step is suppressed based on it: an
// insertion can only have been opened or extended, never preceded by a
// deletion in the same gap, and vice versa.
type lastOp int

const (
	opMatchMismatch lastOp = iota
	opInsertion
	opDeletion
)

// candidate is one of the five predecessor lookups the traceback loop
// compares each step; ok is false when its wavefront or diagonal is
// absent, which excludes it from both the max and the tie-break.
type candidate struct {
	val int32
	ok  bool
}

func lookup(wf *WaveFront, k int) candidate {
	if wf == nil {
		return candidate{}
	}
	o, ok := wf.Get(k)
	if !ok {
		return candidate{}
	}
	return candidate{val: o.Max(), ok: true}
}

// Traceback reconstructs one optimal CIGAR by walking scores backward from
// the reached endpoint at w.AK, re-deriving at each step which predecessor
// the Next recurrence must have chosen.
func Traceback(w *WaveFronts, score int, p Penalties, oracle TracebackOracle, verbosity uint8) ([]byte, error) {
	k := w.AK
	mwf := w.GetM(score)
	if mwf == nil {
		return nil, ErrTraceback
	}
	o, ok := mwf.Get(k)
	if !ok {
		return nil, ErrTraceback
	}

	offset := o.Max()
	s := score
	op := opMatchMismatch
	v := int(offset) - k
	h := int(offset)

	var cigar []byte

	for v > 0 && h > 0 && s > 0 {
		gOpen := s - p.GapOpen - p.GapExtend
		gExt := s - p.GapExtend
		mX := s - p.Mismatch

		var delExt, delOpen, insExt, insOpen, mismatch candidate
		// same inputs as Next: a deletion comes from k+1 at the same
		// offset, an insertion from k-1 and a mismatch from k, both one
		// offset further on.
		if op != opInsertion {
			delExt = lookup(w.GetD(gExt), k+1)
			delOpen = lookup(w.GetM(gOpen), k+1)
		}
		if op != opDeletion {
			insExt = lookup(w.GetI(gExt), k-1)
			insOpen = lookup(w.GetM(gOpen), k-1)
			insExt.val++
			insOpen.val++
		}
		if op == opMatchMismatch {
			mismatch = lookup(w.GetM(mX), k)
			mismatch.val++
		}

		best, found := int32(0), false
		for _, c := range [...]candidate{delExt, delOpen, insExt, insOpen, mismatch} {
			if c.ok && (!found || c.val > best) {
				best, found = c.val, true
			}
		}
		if !found {
			return nil, ErrTraceback
		}

		if op == opMatchMismatch && offset >= best {
			emitMatches(&cigar, &v, &h, &offset, int(offset-best), oracle)
		}

		switch {
		case delExt.ok && delExt.val == best:
			cigar = append(cigar, 'D')
			s, k, op = gExt, k+1, opDeletion
		case delOpen.ok && delOpen.val == best:
			cigar = append(cigar, 'D')
			s, k, op = gOpen, k+1, opMatchMismatch
		case insExt.ok && insExt.val == best:
			cigar = append(cigar, 'I')
			s, k, offset, op = gExt, k-1, offset-1, opInsertion
		case insOpen.ok && insOpen.val == best:
			cigar = append(cigar, 'I')
			s, k, offset, op = gOpen, k-1, offset-1, opMatchMismatch
		case mismatch.ok && mismatch.val == best:
			cigar = append(cigar, 'X')
			s, offset = mX, offset-1
		default:
			return nil, ErrTraceback
		}

		v = int(offset) - k
		h = int(offset)

		if verbosity >= 4 {
			logf(verbosity, 4, "traceback s=%d k=%d v=%d h=%d op=%d", s, k, v, h, op)
		}
	}

	if s == 0 {
		emitMatches(&cigar, &v, &h, &offset, int(offset), oracle)
	} else {
		for ; v > 0; v-- {
			cigar = append(cigar, 'D')
		}
		for ; h > 0; h-- {
			cigar = append(cigar, 'I')
		}
	}

	reverseBytes(cigar)
	return cigar, nil
}

// emitMatches emits n Match/Mismatch operations, consulting the traceback
// oracle once per position and writing X when it rejects a position.
func emitMatches(cigar *[]byte, v, h *int, offset *int32, n int, oracle TracebackOracle) {
	for i := 0; i < n; i++ {
		ok := oracle([2]int{*v - 1, *v}, [2]int{*h - 1, *h})
		if ok {
			*cigar = append(*cigar, 'M')
		} else {
			*cigar = append(*cigar, 'X')
		}
		*offset--
		*v--
		*h--
	}
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
