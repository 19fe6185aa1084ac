/*
 * tabplot_test.go, part of goeam.
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

package tabplot

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	eam "github.com/molsim/goeam"
)

func TestCurve(Te *testing.T) {
	dir := Te.TempDir()
	name := filepath.Join(dir, "morse.png")
	morse := func(r float64) float64 {
		e := 1 - math.Exp(-1.5*(r-2.0))
		return 0.3 * (e*e - 1)
	}
	err := Curve(morse, 200, 0.03, "Morse", "r (A)", "V (eV)", name)
	if err != nil {
		Te.Fatal(err)
	}
	if fi, err := os.Stat(name); err != nil || fi.Size() == 0 {
		Te.Error("plot file missing or empty")
	}
}

func TestCurveBadArgs(Te *testing.T) {
	if err := Curve(nil, 10, 0.1, "", "", "", "x.png"); err == nil {
		Te.Error("nil function accepted")
	}
	if err := Curve(func(x float64) float64 { return x }, 1, 0.1, "", "", "", "x.png"); err == nil {
		Te.Error("single-point plot accepted")
	}
}

func TestPotentialPlots(Te *testing.T) {
	dir := Te.TempDir()
	grid := eam.Grid{NRho: 50, DRho: 0.1, NR: 60, DR: 0.1}
	e, err := eam.NewEAMElement("Cu",
		func(rho float64) float64 { return -math.Sqrt(rho) },
		map[string]eam.Func{"Cu": func(r float64) float64 { return math.Exp(-r) }},
		3.61, "fcc")
	if err != nil {
		Te.Fatal(err)
	}
	if err := Embedding(e, grid, filepath.Join(dir, "embed.png")); err != nil {
		Te.Error(err)
	}
	if err := Density(e, "Cu", grid, filepath.Join(dir, "dens.png")); err != nil {
		Te.Error(err)
	}
	if err := Density(e, "Ni", grid, filepath.Join(dir, "nope.png")); err == nil {
		Te.Error("missing counterpart accepted")
	}
	p, err := eam.NewPair("Cu", "Cu", func(r float64) float64 { return math.Exp(-r) })
	if err != nil {
		Te.Fatal(err)
	}
	if err := PairEnergy(p, grid, filepath.Join(dir, "pair.png")); err != nil {
		Te.Error(err)
	}
}
