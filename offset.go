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

// NullOffset is the sentinel meaning "this slot has no valid predecessor".
// It must sort below every real offset in max/min selection.
const NullOffset = -10

// Offset holds the furthest-reaching h per text alternative at one
// (score, diagonal) cell. Abandoned is nil for a non-degenerate (single
// alternative) cell; when present it runs parallel to Data and a 1 means
// that alternative mismatched once and must not be advanced again until
// the branch set itself changes shape.
type Offset struct {
	Data      []int32
	Abandoned []byte
}

// FromScalar builds a length-1 Offset with no abandonment tracking.
func FromScalar(v int32) Offset {
	return Offset{Data: []int32{v}}
}

// FromVec builds an Offset over every slot of vs, with abandonment present
// and cleared.
func FromVec(vs []int32) Offset {
	data := make([]int32, len(vs))
	copy(data, vs)
	return Offset{Data: data, Abandoned: make([]byte, len(vs))}
}

// NullOff returns the out-of-bounds sentinel Offset.
func NullOff() Offset {
	return Offset{Data: []int32{NullOffset}}
}

// Max returns the maximum of Data. Offset.Data is never empty.
func (o Offset) Max() int32 {
	m := o.Data[0]
	for _, v := range o.Data[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Min returns the minimum of Data.
func (o Offset) Min() int32 {
	m := o.Data[0]
	for _, v := range o.Data[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// Get returns Data[i]; it panics if i is out of range, same as a bare
// slice index would.
func (o Offset) Get(i int) int32 {
	return o.Data[i]
}

// Set writes Data[i] = v; it panics if i is out of range.
func (o *Offset) Set(i int, v int32) {
	o.Data[i] = v
}

// Push appends v to Data, and a 0 to Abandoned when abandonment is tracked.
func (o *Offset) Push(v int32) {
	o.Data = append(o.Data, v)
	if o.Abandoned != nil {
		o.Abandoned = append(o.Abandoned, 0)
	}
}

// Len reports the number of alternative slots.
func (o Offset) Len() int {
	return len(o.Data)
}

// SetAbandon marks slot i as abandoned. It is a no-op when abandonment is
// not tracked (a non-degenerate cell has nothing to abandon).
func (o *Offset) SetAbandon(i int) {
	if o.Abandoned != nil {
		o.Abandoned[i] = 1
	}
}

// IsAbandoned reports whether slot i has been marked abandoned. A cell
// with no abandonment tracking is never abandoned.
func (o Offset) IsAbandoned(i int) bool {
	if o.Abandoned == nil {
		return false
	}
	return o.Abandoned[i] != 0
}

// Reshape grows or shrinks Data to length z, the alternative count of the
// text column now under the cursor. Growth fills new slots with the
// previous max and, if z > 1, resets abandonment to all-zero. Shrinkage
// sets every remaining slot to the previous max; shrinkage to a single
// slot also drops abandonment entirely since there is then nothing left
// to abandon.
func (o *Offset) Reshape(z int) {
	l := len(o.Data)
	if z == l {
		return
	}
	prevMax := o.Max()
	if z > l {
		for len(o.Data) < z {
			o.Data = append(o.Data, prevMax)
		}
		if z > 1 {
			o.Abandoned = make([]byte, z)
		}
		return
	}
	// shrink
	o.Data = o.Data[:z]
	for i := range o.Data {
		o.Data[i] = prevMax
	}
	if z == 1 {
		o.Abandoned = nil
	} else if o.Abandoned != nil {
		o.Abandoned = o.Abandoned[:z]
	}
}

// Clone returns a deep copy, used where the recurrence must read a
// predecessor offset without risking aliasing it into the row being built.
func (o Offset) Clone() Offset {
	c := Offset{Data: append([]int32(nil), o.Data...)}
	if o.Abandoned != nil {
		c.Abandoned = append([]byte(nil), o.Abandoned...)
	}
	return c
}
