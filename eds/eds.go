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

// Package eds parses elastic degenerate text in brace notation, e.g.
// "ATC{TA,GA}A", and extracts its inelastic form: one set of candidate
// bytes per text column.
package eds

import (
	"fmt"
	"strings"
)

// segment is either a run of literal bytes (one column each) or a branch
// of equal-length alternatives (one column per position in the alts).
type segment struct {
	literal []byte
	alts    [][]byte
}

// EDT is a parsed elastic degenerate text: a sequence of literal runs and
// branch points.
type EDT struct {
	segments []segment
}

// ParseEDT parses the brace notation used throughout this package's
// tests and the CLI's -edt flag: a literal run of bytes, optionally
// followed by a "{alt,alt,...}" branch, repeated any number of times.
// Every alternative within one branch must have equal length, since only
// an equal-length branch can be decomposed into whole DT columns.
func ParseEDT(s string) (EDT, error) {
	var segs []segment
	i := 0
	for i < len(s) {
		if s[i] != '{' {
			start := i
			for i < len(s) && s[i] != '{' {
				i++
			}
			segs = append(segs, segment{literal: []byte(s[start:i])})
			continue
		}

		end := strings.IndexByte(s[i:], '}')
		if end < 0 {
			return EDT{}, fmt.Errorf("eds: unterminated branch starting at byte %d in %q", i, s)
		}
		end += i

		parts := strings.Split(s[i+1:end], ",")
		alts := make([][]byte, len(parts))
		length := -1
		for k, part := range parts {
			if length == -1 {
				length = len(part)
			} else if len(part) != length {
				return EDT{}, fmt.Errorf("eds: branch %q is not inelastic: alternatives must have equal length", s[i:end+1])
			}
			alts[k] = []byte(part)
		}
		segs = append(segs, segment{alts: alts})
		i = end + 1
	}
	return EDT{segments: segs}, nil
}

// Inelastic materializes the inelastic degenerate text: every literal
// byte becomes a singleton column, and every branch of L-byte
// alternatives becomes L columns, column p holding the p'th byte of each
// alternative.
func (e EDT) Inelastic() DT {
	var cols [][]byte
	for _, seg := range e.segments {
		if seg.literal != nil {
			for _, b := range seg.literal {
				cols = append(cols, []byte{b})
			}
			continue
		}
		width := len(seg.alts[0])
		for p := 0; p < width; p++ {
			col := make([]byte, len(seg.alts))
			for a, alt := range seg.alts {
				col[a] = alt[p]
			}
			cols = append(cols, col)
		}
	}
	return DT{cols: cols}
}

// DT is an inelastic degenerate text: a sequence of columns, each a set
// of candidate bytes.
type DT struct {
	cols [][]byte
}

// NewDT wraps an already-built slice of columns, for callers that did not
// go through ParseEDT (e.g. tests building a DT directly).
func NewDT(cols [][]byte) DT {
	return DT{cols: cols}
}

// Len is the text length T: the number of columns.
func (d DT) Len() int {
	return len(d.cols)
}

// At returns the candidate byte set at column h.
func (d DT) At(h int) []byte {
	return d.cols[h]
}
