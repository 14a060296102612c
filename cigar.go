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
	"fmt"
	"strings"
)

// AlignmentResult bundles a raw CIGAR with the score it cost and the
// aggregate stats teacher's wfa_cigar.go computes over its Ops slice:
// these sit outside the core (§1) but are exactly the bookkeeping a
// caller of Align wants without re-walking the CIGAR itself.
type AlignmentResult struct {
	Score int
	CIGAR []byte

	AlignLen   int
	Matches    int
	Gaps       int
	GapRegions int
}

// NewAlignmentResult wraps a (score, cigar) pair from Align and computes
// its statistics eagerly, mirroring teacher's single process() pass over
// its Ops slice.
func NewAlignmentResult(score int, cigar []byte) *AlignmentResult {
	r := &AlignmentResult{Score: score, CIGAR: cigar}
	r.stat()
	return r
}

func (r *AlignmentResult) stat() {
	var inGap bool
	for _, op := range r.CIGAR {
		r.AlignLen++
		switch op {
		case 'M':
			r.Matches++
			inGap = false
		case 'I', 'D':
			r.Gaps++
			if !inGap {
				r.GapRegions++
			}
			inGap = true
		default: // 'X'
			inGap = false
		}
	}
}

// RLECigar run-length encodes the CIGAR, e.g. "MMIII" -> "2M3I". This is
// a pure postprocess over the CIGAR string (spec §6), supplemented from
// original_source's run_length_encode.
func (r *AlignmentResult) RLECigar() string {
	if len(r.CIGAR) == 0 {
		return ""
	}
	var buf strings.Builder
	run := 1
	for i := 1; i <= len(r.CIGAR); i++ {
		if i < len(r.CIGAR) && r.CIGAR[i] == r.CIGAR[i-1] {
			run++
			continue
		}
		fmt.Fprintf(&buf, "%d%c", run, r.CIGAR[i-1])
		run = 1
	}
	return buf.String()
}

// Render builds the three-line alignment view (query / marker / target)
// teacher's AlignmentText produces, supplemented from original_source's
// print_aln. query and text must be the same sequences the oracles closed
// over when Align produced r.CIGAR.
func (r *AlignmentResult) Render(query, text []byte) (q, marker, t []byte) {
	q = make([]byte, 0, len(r.CIGAR))
	marker = make([]byte, 0, len(r.CIGAR))
	t = make([]byte, 0, len(r.CIGAR))

	var qi, ti int
	for _, op := range r.CIGAR {
		switch op {
		case 'M':
			q = append(q, query[qi])
			t = append(t, text[ti])
			marker = append(marker, '|')
			qi++
			ti++
		case 'X':
			q = append(q, query[qi])
			t = append(t, text[ti])
			marker = append(marker, ' ')
			qi++
			ti++
		case 'D':
			q = append(q, query[qi])
			t = append(t, '-')
			marker = append(marker, ' ')
			qi++
		case 'I':
			q = append(q, '-')
			t = append(t, text[ti])
			marker = append(marker, ' ')
			ti++
		}
	}
	return q, marker, t
}
