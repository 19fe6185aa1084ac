/*
 * grid.go, part of goeam.
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

import "gonum.org/v1/gonum/floats"

//Grid holds the two independent uniform sampling grids of a tabulation: the
//density grid (NRho points, step DRho) for embedding functions and the radial
//grid (NR points, step DR) for density and pair functions. Sample points are
//i*step for i=0...n-1.
type Grid struct {
	NRho int
	DRho float64
	NR   int
	DR   float64
}

//Validate checks the grid parameters: point counts must be at least 1 and
//steps strictly positive.
func (G Grid) Validate() error {
	if G.NRho < 1 || G.NR < 1 {
		return configError("Grid: point counts must be positive (nrho=%d, nr=%d)", G.NRho, G.NR)
	}
	if G.DRho <= 0 || G.DR <= 0 {
		return configError("Grid: steps must be positive (drho=%g, dr=%g)", G.DRho, G.DR)
	}
	return nil
}

//Cutoff returns the default cutoff radius, NR*DR. An explicit cutoff given to
//the writer overrides this value in the file header but never changes the
//number of tabulated points.
func (G Grid) Cutoff() float64 {
	return float64(G.NR) * G.DR
}

//RhoPoints returns the density sample points i*DRho, i=0...NRho-1.
func (G Grid) RhoPoints() []float64 {
	return gridPoints(G.NRho, G.DRho)
}

//RPoints returns the radial sample points i*DR, i=0...NR-1.
func (G Grid) RPoints() []float64 {
	return gridPoints(G.NR, G.DR)
}

//The points must be exactly i*step (the file format is reconstructed by the
//reader from the header steps), so we scale an index ramp instead of spanning
//the interval, which could be off in the last ulp.
func gridPoints(n int, step float64) []float64 {
	pts := make([]float64, n)
	for i := range pts {
		pts[i] = float64(i)
	}
	floats.Scale(step, pts)
	return pts
}
