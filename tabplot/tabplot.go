/*
 * tabplot.go, part of goeam.
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

//Package tabplot draws tabulated potential curves, so the shapes going into
//a table file can be eyeballed before feeding them to a simulation engine.
package tabplot

import (
	"fmt"

	eam "github.com/molsim/goeam"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

//Curve samples f at n points spaced by step, starting at zero (the same
//sampling rule the tabulation writer uses) and saves a line plot to filename.
//The image format follows the filename extension, as in gonum/plot.
func Curve(f eam.Func, n int, step float64, title, xlabel, ylabel, filename string) error {
	if f == nil {
		return fmt.Errorf("tabplot: nil function")
	}
	if n < 2 || step <= 0 {
		return fmt.Errorf("tabplot: need at least 2 points and a positive step (n=%d, step=%g)", n, step)
	}
	pts := make(plotter.XYs, n)
	for i := range pts {
		x := float64(i) * step
		pts[i].X = x
		pts[i].Y = f(x)
	}
	p := basicPlot(title, xlabel, ylabel)
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)
	return p.Save(12*vg.Centimeter, 9*vg.Centimeter, filename)
}

//PairEnergy plots the pair-interaction energy of p over the radial grid.
//Note that this is V(r), not the r*V(r) actually stored in table files.
func PairEnergy(p *eam.Pair, grid eam.Grid, filename string) error {
	title := fmt.Sprintf("Pair energy %s-%s", p.SpeciesA, p.SpeciesB)
	return Curve(p.Energy, grid.NR, grid.DR, title, "r (A)", "V (eV)", filename)
}

//Embedding plots the embedding function of e over the density grid.
func Embedding(e *eam.EAM, grid eam.Grid, filename string) error {
	title := fmt.Sprintf("Embedding energy %s", e.Symbol)
	return Curve(e.EmbeddingValue, grid.NRho, grid.DRho, title, "rho", "F (eV)", filename)
}

//Density plots the electron density of e as felt by the counterpart species
//other, over the radial grid.
func Density(e *eam.EAM, other string, grid eam.Grid, filename string) error {
	f, err := densityFunc(e, other)
	if err != nil {
		return err
	}
	title := fmt.Sprintf("Electron density %s-%s", e.Symbol, other)
	return Curve(f, grid.NR, grid.DR, title, "r (A)", "rho", filename)
}

func densityFunc(e *eam.EAM, other string) (eam.Func, error) {
	f, ok := e.Density[other]
	if !ok {
		return nil, fmt.Errorf("tabplot: species %s has no density function for counterpart %s", e.Symbol, other)
	}
	return f, nil
}
