/*
 * setfl.go, part of goeam.
 *
 * Copyright 2024 The goEAM developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package eam

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

//Every float field in a setfl file, header and body alike, uses this verb:
//sign-or-space, 16 fractional digits, scientific notation. Fixed-format
//readers rely on every line having the same column layout.
const setflFloat = "% 20.16e"

//setfl headers carry exactly this many free-form comment lines.
const setflComments = 3

/*SetFL tabulates the given embedded-atom model on grid and writes the
complete Finnis-Sinclair "setfl" table to w.

eams must be non-empty, with unique species labels; the output order of
element blocks is exactly the slice order, and it also fixes the order of the
per-block density tables (one per species in the list, a full NxN set) and of
the triangular pair-table section (pairs (i,j) with 0<=j<=i<N). pairs may be
incomplete: a species pair with no registered potential is tabulated as
identically zero. If two entries normalize to the same species pair, the last
one wins. comments is padded with empty lines, or truncated, to exactly three
lines. An optional explicit cutoff replaces the default NR*DR in the header
but never changes the number of tabulated points.

Every table is evaluated in full before a single byte reaches w, so a
configuration or evaluation error never produces partial output.*/
func SetFL(w io.Writer, grid Grid, eams []*EAM, pairs []*Pair, comments []string, cutoff ...float64) error {
	buf := new(bytes.Buffer)
	if err := setfl(buf, grid, eams, pairs, comments, cutoff...); err != nil {
		return errDecorate(err, "SetFL")
	}
	_, err := w.Write(buf.Bytes())
	return err
}

//SetFLWrite is SetFL writing to the file path. The file is only created once
//the whole table has been assembled in memory, so a failed tabulation leaves
//no file behind (an existing file at path is kept untouched in that case).
func SetFLWrite(path string, grid Grid, eams []*EAM, pairs []*Pair, comments []string, cutoff ...float64) error {
	buf := new(bytes.Buffer)
	if err := setfl(buf, grid, eams, pairs, comments, cutoff...); err != nil {
		return errDecorate(err, "SetFLWrite")
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := out.Write(buf.Bytes()); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

//SetFLWriteGZ is SetFLWrite producing a gzip-compressed file. The table
//layout inside the compressed stream is byte-identical to the plain one.
func SetFLWriteGZ(path string, grid Grid, eams []*EAM, pairs []*Pair, comments []string, cutoff ...float64) error {
	buf := new(bytes.Buffer)
	if err := setfl(buf, grid, eams, pairs, comments, cutoff...); err != nil {
		return errDecorate(err, "SetFLWriteGZ")
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	zw := gzip.NewWriter(out)
	if _, err := zw.Write(buf.Bytes()); err != nil {
		zw.Close()
		out.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

//setfl does the actual work: validate, evaluate everything, then emit.
func setfl(buf *bytes.Buffer, grid Grid, eams []*EAM, pairs []*Pair, comments []string, cutoff ...float64) error {
	if err := validateModel(grid, eams); err != nil {
		return err
	}
	rc := grid.Cutoff()
	if len(cutoff) > 0 && cutoff[0] > 0 {
		rc = cutoff[0]
	}
	rhos := grid.RhoPoints()
	rs := grid.RPoints()
	n := len(eams)

	//last write wins for duplicate normalized keys.
	lookup := make(map[string]*Pair, len(pairs))
	for _, p := range pairs {
		if p == nil || p.V == nil {
			return configError("nil pair potential in pair list")
		}
		lookup[p.Key()] = p
	}

	//Evaluate every table up front. Nothing is formatted until all of them
	//came out finite.
	emb := make([][]float64, n)
	for i, e := range eams {
		tab, err := sampleTable("embedding "+e.Symbol, e.Embed, rhos)
		if err != nil {
			return err
		}
		emb[i] = tab
	}
	dens := make([][][]float64, n)
	for i, e := range eams {
		dens[i] = make([][]float64, n)
		for j, other := range eams {
			f := e.Density[other.Symbol] //presence was checked in validateModel
			tab, err := sampleTable("density "+e.Symbol+"-"+other.Symbol, f, rs)
			if err != nil {
				return err
			}
			dens[i][j] = tab
		}
	}
	//The pair section stores r*V(r), in the lower-triangular order (i,j),
	//0<=j<=i<n, following the element sequence.
	pairTabs := make([][]float64, 0, n*(n+1)/2)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			name := "pair " + eams[i].Symbol + "-" + eams[j].Symbol
			p := lookup[pairKey(eams[i].Symbol, eams[j].Symbol)]
			var f Func
			if p == nil {
				f = func(float64) float64 { return 0 }
			} else {
				f = p.V
			}
			tab, err := sampleTable(name, func(r float64) float64 { return r * f(r) }, rs)
			if err != nil {
				return err
			}
			pairTabs = append(pairTabs, tab)
		}
	}

	//Header
	for _, c := range padComments(comments) {
		fmt.Fprintln(buf, c)
	}
	fmt.Fprintf(buf, "%d", n)
	for _, e := range eams {
		fmt.Fprintf(buf, " %s", e.Symbol)
	}
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "%d "+setflFloat+" %d "+setflFloat+" "+setflFloat+"\n", grid.NRho, grid.DRho, grid.NR, grid.DR, rc)
	//Element blocks
	for i, e := range eams {
		fmt.Fprintf(buf, "%d "+setflFloat+" "+setflFloat+" %s\n", e.Z, e.Mass, e.LatticeConstant, e.Lattice)
		writeTable(buf, emb[i])
		for j := range eams {
			writeTable(buf, dens[i][j])
		}
	}
	//Pair blocks
	for _, tab := range pairTabs {
		writeTable(buf, tab)
	}
	return nil
}

//validateModel checks everything about the caller-supplied model that can be
//checked without evaluating a single function. In particular, the density
//table of every species must have an entry for every species in the list,
//itself included: Finnis-Sinclair blocks store one density table per ordered
//species pair.
func validateModel(grid Grid, eams []*EAM) error {
	if err := grid.Validate(); err != nil {
		return err
	}
	if len(eams) == 0 {
		return configError("empty species list")
	}
	seen := make(map[string]bool, len(eams))
	for _, e := range eams {
		if e == nil {
			return configError("nil embedded-atom potential in species list")
		}
		if e.Symbol == "" {
			return configError("empty species label")
		}
		if seen[e.Symbol] {
			return configError("duplicate species label %s", e.Symbol)
		}
		seen[e.Symbol] = true
		if e.Embed == nil {
			return configError("species %s has no embedding function", e.Symbol)
		}
	}
	for _, e := range eams {
		for _, other := range eams {
			if e.Density[other.Symbol] == nil {
				return configError("species %s has no density function for counterpart %s", e.Symbol, other.Symbol)
			}
		}
	}
	return nil
}

//sampleTable evaluates f at every point and rejects NaNs and infinities.
func sampleTable(name string, f Func, points []float64) ([]float64, error) {
	tab := make([]float64, len(points))
	for i, x := range points {
		v := f(x)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, evalError(name, x, v)
		}
		tab[i] = v
	}
	return tab, nil
}

func writeTable(buf *bytes.Buffer, tab []float64) {
	for _, v := range tab {
		fmt.Fprintf(buf, setflFloat+"\n", v)
	}
}

//padComments normalizes the free-form header text to exactly three lines:
//fewer are padded with empty lines, extra ones are dropped. Embedded or
//trailing newlines would break the fixed line count, so they are stripped.
func padComments(comments []string) []string {
	out := make([]string, setflComments)
	for i := 0; i < setflComments && i < len(comments); i++ {
		out[i] = strings.ReplaceAll(strings.TrimRight(comments[i], "\n"), "\n", " ")
	}
	return out
}
