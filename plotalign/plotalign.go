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

// Package plotalign renders a CIGAR as a dot-plot over (query, text) index
// space. It replaces the ASCII-art matrix dump teacher's own visualization
// code produces with a real image, using the plotting library the rest of
// this pack's bioinformatics tooling depends on.
package plotalign

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Path walks cigar from (0, 0), accumulating one point per M/X operation
// (a diagonal step) and one per I/D operation (a horizontal or vertical
// step), and saves the resulting path to outPath. The output format is
// inferred from outPath's extension (png, svg, pdf, ...).
func Path(cigar []byte, outPath string) error {
	p := plot.New()
	p.Title.Text = "alignment path"
	p.X.Label.Text = "text (h)"
	p.Y.Label.Text = "query (v)"

	pts := make(plotter.XYs, 0, len(cigar)+1)
	var v, h float64
	pts = append(pts, plotter.XY{X: h, Y: v})
	for _, op := range cigar {
		switch op {
		case 'M', 'X':
			v++
			h++
		case 'D':
			v++
		case 'I':
			h++
		}
		pts = append(pts, plotter.XY{X: h, Y: v})
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("plotalign: %w", err)
	}
	p.Add(line)

	if err := p.Save(12*vg.Centimeter, 12*vg.Centimeter, outPath); err != nil {
		return fmt.Errorf("plotalign: saving %s: %w", outPath, err)
	}
	return nil
}
