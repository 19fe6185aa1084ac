/*
 * setfl_test.go, part of goeam.
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
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
)

//a tiny one-species model with hand-computable tables: F(rho)=rho,
//rho(r)=1, V(r)=2.
func singleSpeciesModel(Te *testing.T) (Grid, []*EAM, []*Pair) {
	grid := Grid{NRho: 3, DRho: 1.0, NR: 3, DR: 1.0}
	a, err := NewEAM("A", 1, 1.0,
		func(rho float64) float64 { return rho },
		map[string]Func{"A": func(r float64) float64 { return 1.0 }},
		1.0, "bcc")
	if err != nil {
		Te.Fatal(err)
	}
	p, err := NewPair("A", "A", func(r float64) float64 { return 2.0 })
	if err != nil {
		Te.Fatal(err)
	}
	return grid, []*EAM{a}, []*Pair{p}
}

func parseLine(Te *testing.T, line string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		Te.Fatalf("unparseable value line %q: %v", line, err)
	}
	return v
}

//TestSetFLSingleSpecies checks the whole layout of a minimal file: header,
//element block (embedding then self-density) and the single pair table,
//which stores r*V(r).
func TestSetFLSingleSpecies(Te *testing.T) {
	grid, eams, pairs := singleSpeciesModel(Te)
	var buf bytes.Buffer
	err := SetFL(&buf, grid, eams, pairs, []string{"test potential"})
	if err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	//3 comments + species line + grid line + element header + 3 embedding +
	//3 density + 3 pair lines.
	if len(lines) != 15 {
		Te.Fatalf("got %d lines, want 15", len(lines))
	}
	if lines[0] != "test potential" || lines[1] != "" || lines[2] != "" {
		Te.Errorf("bad comment lines: %q", lines[:3])
	}
	if lines[3] != "1 A" {
		Te.Errorf("species line %q, want \"1 A\"", lines[3])
	}
	gf := strings.Fields(lines[4])
	if len(gf) != 5 || gf[0] != "3" || gf[2] != "3" {
		Te.Errorf("bad grid line %q", lines[4])
	}
	if rc, _ := strconv.ParseFloat(gf[4], 64); rc != 3.0 {
		Te.Errorf("cutoff %v, want default nr*dr=3", rc)
	}
	ef := strings.Fields(lines[5])
	if ef[0] != "1" || ef[3] != "bcc" {
		Te.Errorf("bad element header %q", lines[5])
	}
	for i, want := range []float64{0, 1, 2} { //embedding at rho=0,1,2
		if got := parseLine(Te, lines[6+i]); got != want {
			Te.Errorf("embedding[%d]=%v, want %v", i, got, want)
		}
	}
	for i, want := range []float64{1, 1, 1} { //density
		if got := parseLine(Te, lines[9+i]); got != want {
			Te.Errorf("density[%d]=%v, want %v", i, got, want)
		}
	}
	for i, want := range []float64{0, 2, 4} { //r*V(r) at r=0,1,2
		if got := parseLine(Te, lines[12+i]); got != want {
			Te.Errorf("pair[%d]=%v, want %v", i, got, want)
		}
	}
}

//TestSetFLLineFormat checks that every body line keeps the fixed 20.16e
//column layout the consuming readers rely on.
func TestSetFLLineFormat(Te *testing.T) {
	grid, eams, pairs := singleSpeciesModel(Te)
	var buf bytes.Buffer
	if err := SetFL(&buf, grid, eams, pairs, nil); err != nil {
		Te.Fatal(err)
	}
	valueLine := regexp.MustCompile(`^[ -]\d\.\d{16}e[+-]\d{2,3}$`)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	for i, l := range lines[6:] { //everything after the element header is a value line
		if !valueLine.MatchString(l) {
			Te.Errorf("line %d %q does not match the fixed format", i+6, l)
		}
	}
}

//TestSetFLTriangularOrder builds three species with distinguishable constant
//pair energies and checks that the pair tables come out in the order (A,A),
//(B,A), (B,B), (C,A), (C,B), (C,C), that lookups are order-insensitive, and
//that missing pairs tabulate as zeros.
func TestSetFLTriangularOrder(Te *testing.T) {
	grid := Grid{NRho: 2, DRho: 1.0, NR: 2, DR: 1.0}
	labels := []string{"A", "B", "C"}
	eams := make([]*EAM, 0, 3)
	for _, l := range labels {
		dens := make(map[string]Func)
		for _, o := range labels {
			dens[o] = func(r float64) float64 { return 0 }
		}
		e, err := NewEAM(l, 1, 1.0, func(rho float64) float64 { return 0 }, dens, 1.0, "fcc")
		if err != nil {
			Te.Fatal(err)
		}
		eams = append(eams, e)
	}
	cons := func(v float64) Func { return func(r float64) float64 { return v } }
	//(A,B) given in reversed order on purpose; (C,A) and (C,C) left out.
	pairs := []*Pair{
		{SpeciesA: "A", SpeciesB: "A", V: cons(1)},
		{SpeciesA: "B", SpeciesB: "A", V: cons(2)},
		{SpeciesA: "B", SpeciesB: "B", V: cons(3)},
		{SpeciesA: "B", SpeciesB: "C", V: cons(4)},
	}
	var buf bytes.Buffer
	if err := SetFL(&buf, grid, eams, pairs, nil); err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	//header is 5 lines, each element block is 1+2+3*2 lines, pair section is 6 tables of 2.
	nhead := 5 + 3*(1+2+3*2)
	if len(lines) != nhead+6*2 {
		Te.Fatalf("got %d lines, want %d", len(lines), nhead+6*2)
	}
	//value at r=dr in each pair table is dr*E = E.
	want := []float64{1, 2, 3, 0, 4, 0} //(A,A) (B,A) (B,B) (C,A) (C,B) (C,C)
	for k, w := range want {
		if got := parseLine(Te, lines[nhead+2*k+1]); got != w {
			Te.Errorf("pair table %d: got %v at r=dr, want %v", k, got, w)
		}
	}
}

//TestSetFLDensityTablesPerOrderedPair checks the Finnis-Sinclair convention:
//each element block carries one density table per species in list order, so
//two species give four density tables in total, not three.
func TestSetFLDensityTablesPerOrderedPair(Te *testing.T) {
	grid := Grid{NRho: 1, DRho: 1.0, NR: 1, DR: 1.0}
	cons := func(v float64) Func { return func(float64) float64 { return v } }
	a, _ := NewEAM("A", 1, 1.0, cons(0), map[string]Func{"A": cons(11), "B": cons(12)}, 1.0, "bcc")
	b, _ := NewEAM("B", 2, 2.0, cons(0), map[string]Func{"A": cons(21), "B": cons(22)}, 1.0, "hcp")
	var buf bytes.Buffer
	if err := SetFL(&buf, grid, []*EAM{a, b}, nil, nil); err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	//block A: header at 5, embedding at 6, densities A-A at 7, A-B at 8.
	//block B: header at 9, embedding at 10, densities B-A at 11, B-B at 12.
	for i, want := range map[int]float64{7: 11, 8: 12, 11: 21, 12: 22} {
		if got := parseLine(Te, lines[i]); got != want {
			Te.Errorf("line %d: got %v, want %v", i, got, want)
		}
	}
}

//countWriter counts bytes so tests can assert that nothing at all was
//written on failure.
type countWriter struct{ n int }

func (c *countWriter) Write(p []byte) (int, error) { c.n += len(p); return len(p), nil }

//TestSetFLMissingDensityFailsFast: a species without a density entry for a
//listed counterpart must yield a ConfigError before any output.
func TestSetFLMissingDensityFailsFast(Te *testing.T) {
	grid := Grid{NRho: 2, DRho: 1.0, NR: 2, DR: 1.0}
	cons := func(v float64) Func { return func(float64) float64 { return v } }
	a, _ := NewEAM("A", 1, 1.0, cons(0), map[string]Func{"A": cons(1), "B": cons(1)}, 1.0, "bcc")
	b, _ := NewEAM("B", 2, 2.0, cons(0), map[string]Func{"B": cons(1)}, 1.0, "bcc") //no entry for A
	w := new(countWriter)
	err := SetFL(w, grid, []*EAM{a, b}, nil, nil)
	if err == nil {
		Te.Fatal("expected a configuration error")
	}
	if _, ok := err.(*ConfigError); !ok {
		Te.Errorf("error has type %T, want *ConfigError", err)
	}
	if w.n != 0 {
		Te.Errorf("%d bytes written before the failure", w.n)
	}
}

func TestSetFLEmptySpeciesList(Te *testing.T) {
	w := new(countWriter)
	err := SetFL(w, Grid{NRho: 1, DRho: 1, NR: 1, DR: 1}, nil, nil, nil)
	if err == nil {
		Te.Fatal("expected a configuration error")
	}
	if w.n != 0 {
		Te.Errorf("%d bytes written before the failure", w.n)
	}
}

func TestSetFLBadGrid(Te *testing.T) {
	_, eams, pairs := singleSpeciesModel(Te)
	for _, grid := range []Grid{
		{NRho: 0, DRho: 1, NR: 1, DR: 1},
		{NRho: 1, DRho: 1, NR: 0, DR: 1},
		{NRho: 1, DRho: 0, NR: 1, DR: 1},
		{NRho: 1, DRho: 1, NR: 1, DR: -0.5},
	} {
		if err := SetFL(new(countWriter), grid, eams, pairs, nil); err == nil {
			Te.Errorf("grid %+v accepted, want error", grid)
		}
	}
}

//TestSetFLNonFiniteAborts: a NaN anywhere in the sampled domain aborts the
//run with an EvalError naming the table, and nothing is written.
func TestSetFLNonFiniteAborts(Te *testing.T) {
	grid := Grid{NRho: 2, DRho: 1.0, NR: 3, DR: 1.0}
	cons := func(v float64) Func { return func(float64) float64 { return v } }
	a, _ := NewEAM("A", 1, 1.0, cons(0),
		map[string]Func{"A": func(r float64) float64 { return math.Sqrt(r - 1.5) }}, //NaN below r=1.5
		1.0, "bcc")
	w := new(countWriter)
	err := SetFL(w, grid, []*EAM{a}, nil, nil)
	if err == nil {
		Te.Fatal("expected an evaluation error")
	}
	ee, ok := err.(*EvalError)
	if !ok {
		Te.Fatalf("error has type %T, want *EvalError", err)
	}
	if ee.Table != "density A-A" || ee.At != 0 {
		Te.Errorf("error names table %q at %v, want density A-A at 0", ee.Table, ee.At)
	}
	if w.n != 0 {
		Te.Errorf("%d bytes written before the failure", w.n)
	}
}

//TestSetFLIdempotent: same inputs, byte-identical output.
func TestSetFLIdempotent(Te *testing.T) {
	grid, eams, pairs := singleSpeciesModel(Te)
	var b1, b2 bytes.Buffer
	if err := SetFL(&b1, grid, eams, pairs, []string{"a", "b", "c"}); err != nil {
		Te.Fatal(err)
	}
	if err := SetFL(&b2, grid, eams, pairs, []string{"a", "b", "c"}); err != nil {
		Te.Fatal(err)
	}
	if !bytes.Equal(b1.Bytes(), b2.Bytes()) {
		Te.Error("two runs over identical inputs differ")
	}
}

//TestSetFLComments: extra comment lines are dropped, missing ones padded.
func TestSetFLComments(Te *testing.T) {
	grid, eams, pairs := singleSpeciesModel(Te)
	var buf bytes.Buffer
	if err := SetFL(&buf, grid, eams, pairs, []string{"1", "2", "3", "4"}); err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(buf.String(), "\n")
	if lines[0] != "1" || lines[1] != "2" || lines[2] != "3" || lines[3] != "1 A" {
		Te.Errorf("bad truncation: %q", lines[:4])
	}
	buf.Reset()
	if err := SetFL(&buf, grid, eams, pairs, nil); err != nil {
		Te.Fatal(err)
	}
	lines = strings.Split(buf.String(), "\n")
	if lines[0] != "" || lines[1] != "" || lines[2] != "" {
		Te.Errorf("bad padding: %q", lines[:3])
	}
}

//TestSetFLCutoffOverride: an explicit cutoff lands in the header but the
//table length stays nr.
func TestSetFLCutoffOverride(Te *testing.T) {
	grid, eams, pairs := singleSpeciesModel(Te)
	var buf bytes.Buffer
	if err := SetFL(&buf, grid, eams, pairs, nil, 2.5); err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(buf.String(), "\n")
	gf := strings.Fields(lines[4])
	if rc, _ := strconv.ParseFloat(gf[4], 64); rc != 2.5 {
		Te.Errorf("cutoff %v, want 2.5", rc)
	}
	if len(strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")) != 15 {
		Te.Error("explicit cutoff changed the table length")
	}
}

//TestSetFLDuplicatePairLastWins documents the duplicate-key behavior: when
//two entries normalize to the same species pair, the last registration is
//the one tabulated.
func TestSetFLDuplicatePairLastWins(Te *testing.T) {
	grid, eams, _ := singleSpeciesModel(Te)
	cons := func(v float64) Func { return func(float64) float64 { return v } }
	pairs := []*Pair{
		{SpeciesA: "A", SpeciesB: "A", V: cons(1)},
		{SpeciesA: "A", SpeciesB: "A", V: cons(7)},
	}
	var buf bytes.Buffer
	if err := SetFL(&buf, grid, eams, pairs, nil); err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if got := parseLine(Te, lines[13]); got != 7 { //r=1, r*V=7
		Te.Errorf("pair value %v at r=1, want 7 (last registration)", got)
	}
}

//TestSetFLRoundTrip: re-parsing the printed fields recovers the function
//values to within float64 round-trip accuracy, here for an irrational
//embedding curve.
func TestSetFLRoundTrip(Te *testing.T) {
	grid := Grid{NRho: 50, DRho: 0.31, NR: 1, DR: 1.0}
	cons := func(v float64) Func { return func(float64) float64 { return v } }
	a, _ := NewEAM("A", 1, 1.0,
		func(rho float64) float64 { return math.Sqrt(rho) },
		map[string]Func{"A": cons(0)}, 1.0, "bcc")
	var buf bytes.Buffer
	if err := SetFL(&buf, grid, []*EAM{a}, nil, nil); err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(buf.String(), "\n")
	for i := 0; i < grid.NRho; i++ {
		want := math.Sqrt(float64(i) * grid.DRho)
		got := parseLine(Te, lines[6+i])
		if math.Abs(got-want) > 1e-15*(1+want) {
			Te.Errorf("embedding at rho=%g: got %v, want %v", float64(i)*grid.DRho, got, want)
		}
	}
}

//TestSetFLWriteGZ: the compressed file decompresses to exactly the plain
//stream.
func TestSetFLWriteGZ(Te *testing.T) {
	grid, eams, pairs := singleSpeciesModel(Te)
	var plain bytes.Buffer
	if err := SetFL(&plain, grid, eams, pairs, []string{"gz test"}); err != nil {
		Te.Fatal(err)
	}
	path := filepath.Join(Te.TempDir(), "test.eam.fs.gz")
	if err := SetFLWriteGZ(path, grid, eams, pairs, []string{"gz test"}); err != nil {
		Te.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		Te.Fatal(err)
	}
	defer f.Close()
	zr, err := gzip.NewReader(f)
	if err != nil {
		Te.Fatal(err)
	}
	var out bytes.Buffer
	if _, err := out.ReadFrom(zr); err != nil {
		Te.Fatal(err)
	}
	if !bytes.Equal(plain.Bytes(), out.Bytes()) {
		Te.Error("decompressed stream differs from the plain one")
	}
}

//TestSetFLWriteNoPartialFile: a failing tabulation must not create the
//destination file at all.
func TestSetFLWriteNoPartialFile(Te *testing.T) {
	grid := Grid{NRho: 2, DRho: 1.0, NR: 2, DR: 1.0}
	a, _ := NewEAM("A", 1, 1.0,
		func(rho float64) float64 { return math.Log(rho) }, //-Inf at rho=0
		map[string]Func{"A": func(r float64) float64 { return 0 }}, 1.0, "bcc")
	path := filepath.Join(Te.TempDir(), "bad.eam.fs")
	err := SetFLWrite(path, grid, []*EAM{a}, nil, nil)
	if err == nil {
		Te.Fatal("expected an evaluation error")
	}
	if _, serr := os.Stat(path); !os.IsNotExist(serr) {
		Te.Error("a partial file survived the failure")
	}
}
