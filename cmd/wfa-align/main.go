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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/pkg/profile"

	"github.com/shenwei356/dgwfa"
	"github.com/shenwei356/dgwfa/eds"
	"github.com/shenwei356/dgwfa/plotalign"
)

var version = "0.1.0"

func main() {
	log.SetFlags(0)

	app := filepath.Base(os.Args[0])
	usage := fmt.Sprintf(`
WaveFront alignment against degenerate text, in Golang

 Author: Wei Shen <shenwei356@gmail.com>
   Code: https://github.com/shenwei356/dgwfa
Version: v%s

Usage:
  1. Align two plain sequences from the positional arguments.

        %s [options] <query seq> <target seq>

  2. Align a query against a degenerate text given in brace notation,
     e.g. "ATC{TA,GA}A".

        %s [options] -edt '<degenerate text>' <query seq>

  3. Read the query from a FASTA file instead of the command line.

        %s [options] -fasta query.fa -edt '<degenerate text>'

Options/Flags:
`, version, app, app, app)

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}

	help := flag.Bool("h", false, "print help message")
	fastaFile := flag.String("fasta", "", "read the query sequence from this FASTA file")
	edtArg := flag.String("edt", "", "degenerate text in brace notation, or a path to a file containing it")
	plotPath := flag.String("plot", "", "render the alignment path to this image file (png, svg, pdf, ...)")

	mismatch := flag.Int("x", wfa.DefaultPenalties.Mismatch, "mismatch penalty")
	gapOpen := flag.Int("o", wfa.DefaultPenalties.GapOpen, "gap-open penalty")
	gapExtend := flag.Int("e", wfa.DefaultPenalties.GapExtend, "gap-extend penalty")
	verbosity := flag.Int("v", 0, "diagnostic verbosity, 0-6")

	pprofCPU := flag.Bool("p", false, "cpu pprof. go tool pprof -http=:8080 cpu.pprof")
	pprofMem := flag.Bool("m", false, "mem pprof. go tool pprof -http=:8080 mem.pprof")

	flag.Parse()

	if *help {
		flag.Usage()
		return
	}

	if *pprofCPU {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	} else if *pprofMem {
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	}

	config := wfa.Config{
		Verbosity: uint8(*verbosity),
		Penalties: wfa.Penalties{Mismatch: *mismatch, GapOpen: *gapOpen, GapExtend: *gapExtend},
	}

	query, rest, err := readQuery(*fastaFile)
	checkError(err)

	outfh := bufio.NewWriter(os.Stdout)
	defer outfh.Flush()

	var score int
	var cigar []byte

	if *edtArg != "" {
		edtText, err := readEDTArg(*edtArg)
		checkError(err)
		edt, err := eds.ParseEDT(edtText)
		checkError(err)
		dt := edt.Inelastic()

		score, cigar, err = wfa.Align(dt.Len(), len(query), config,
			wfa.DTMatchOracle(query, dt), wfa.DTTracebackOracle(query, dt))
		checkError(err)
	} else {
		if len(rest) != 1 {
			checkError(fmt.Errorf("give me a target sequence, or use -edt for a degenerate text"))
		}
		target := []byte(rest[0])

		score, cigar, err = wfa.Align(len(target), len(query), config,
			wfa.LinearMatchOracle(query, target), wfa.LinearTracebackOracle(query, target))
		checkError(err)
	}

	result := wfa.NewAlignmentResult(score, cigar)
	fmt.Fprintf(outfh, "cigar   %s\n", string(result.CIGAR))
	fmt.Fprintf(outfh, "rle     %s\n", result.RLECigar())
	fmt.Fprintf(outfh, "score:  %d, length: %d, matches: %d (%.2f%%), gaps: %d, gap regions: %d\n",
		result.Score, result.AlignLen, result.Matches,
		float64(result.Matches)/float64(result.AlignLen)*100,
		result.Gaps, result.GapRegions)

	if *plotPath != "" {
		checkError(plotalign.Path(cigar, *plotPath))
	}
}

// readQuery reads the query sequence either from a FASTA file (first
// record only) or, when fastaFile is empty, from the first positional
// argument. It returns the positional arguments left over once the query
// has been accounted for, so callers don't need to touch flag.Args()
// themselves: when the query came from the command line, that's
// flag.Args()[1:]; when it came from a FASTA file, none were consumed.
func readQuery(fastaFile string) (query []byte, rest []string, err error) {
	if fastaFile == "" {
		if flag.NArg() < 1 {
			return nil, nil, fmt.Errorf("give me a query sequence, or use -fasta")
		}
		return []byte(flag.Arg(0)), flag.Args()[1:], nil
	}

	f, err := os.Open(fastaFile)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", fastaFile, err)
	}
	defer f.Close()

	r := fasta.NewReader(f, linear.NewSeq("", nil, alphabet.DNA))
	sc := seqio.NewScanner(r)
	if !sc.Next() {
		return nil, nil, fmt.Errorf("no sequence found in %s", fastaFile)
	}
	seq := sc.Seq().(*linear.Seq)

	q := make([]byte, len(seq.Seq))
	for i, l := range seq.Seq {
		q[i] = byte(l)
	}
	return q, flag.Args(), nil
}

// readEDTArg treats arg as a path to a file holding the degenerate text;
// if it can't be read as one, arg is taken to be the brace-notation text
// itself.
func readEDTArg(arg string) (string, error) {
	data, err := os.ReadFile(arg)
	if err != nil {
		return arg, nil
	}
	return string(data), nil
}

func checkError(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
