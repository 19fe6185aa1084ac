/*
 * doc.go, part of goeam.
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

/*Package eam turns closed-form interatomic potentials for metals and alloys
into tabulated files that molecular-dynamics engines can read.

The package works with the embedded-atom method (EAM) and its
Finnis-Sinclair variant: each chemical species carries an embedding
function F(rho) and one electron-density function rho(r) per counterpart
species, and each unordered pair of species may carry a pair-interaction
energy V(r). All of those are plain Go functions of one float64, so any
closed-form parameterization from the literature (or a home-made one) can
be plugged in directly, composed from the helpers in this package, or
taken ready-made from the alloy subpackage.


	**goEAM capabilities**

    Represents pair potentials and embedded-atom potentials wrapping
	arbitrary scalar functions, with helpers to compose them (sums,
	scalings, radial truncation and Finnis-Sinclair cubic-knot splines).

    Derives forces from energies by central finite differences (for
	testing and sanity checks; the tabulated format itself stores r*V(r),
	not forces).

    Samples every registered function on uniform density and radial
	grids and writes the standard "setfl" Finnis-Sinclair table layout,
	with one density table per ordered species pair and the triangular
	set of pair tables, in the fixed 20.16 scientific-notation columns
	that fixed-format readers expect.

    Writes to any io.Writer, to a file, or to a gzip-compressed file.
	Nothing is emitted until every value has been evaluated, so a failed
	run never leaves a truncated table behind.

    Ships atomic numbers and masses for the common EAM metals, so
	callers only provide what is actually model-specific.

The cmd/goeam command is a small batch front end over this package, and
the tabplot subpackage renders tabulated curves for visual inspection.*/
package eam
