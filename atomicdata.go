/*
 * atomicdata.go, part of goeam.
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

//A map for assigning mass to elements.
//Note that just the metals commonly treated with EAM/Finnis-Sinclair
//potentials are present, plus a few light elements that show up in
//interstitial-alloy models.
var symbolMass = map[string]float64{
	"H":  1.008,
	"C":  12.011,
	"N":  14.007,
	"Mg": 24.305,
	"Al": 26.982,
	"Si": 28.085,
	"Ti": 47.867,
	"V":  50.942,
	"Cr": 51.996,
	"Mn": 54.938,
	"Fe": 55.845,
	"Co": 58.933,
	"Ni": 58.693,
	"Cu": 63.546,
	"Zn": 65.38,
	"Zr": 91.224,
	"Nb": 92.906,
	"Mo": 95.95,
	"Rh": 102.906,
	"Pd": 106.42,
	"Ag": 107.868,
	"Ta": 180.948,
	"W":  183.84,
	"Ir": 192.217,
	"Pt": 195.084,
	"Au": 196.967,
	"Pb": 207.2,
}

//A map for assigning atomic numbers to elements. Same coverage as symbolMass.
var symbolZ = map[string]int{
	"H":  1,
	"C":  6,
	"N":  7,
	"Mg": 12,
	"Al": 13,
	"Si": 14,
	"Ti": 22,
	"V":  23,
	"Cr": 24,
	"Mn": 25,
	"Fe": 26,
	"Co": 27,
	"Ni": 28,
	"Cu": 29,
	"Zn": 30,
	"Zr": 40,
	"Nb": 41,
	"Mo": 42,
	"Rh": 45,
	"Pd": 46,
	"Ag": 47,
	"Ta": 73,
	"W":  74,
	"Ir": 77,
	"Pt": 78,
	"Au": 79,
	"Pb": 82,
}

//Element returns the atomic number and mass for the given element symbol, or
//a configuration error if the symbol is not in the built-in tables. Species
//outside the tables can still be used by filling EAM.Z and EAM.Mass by hand.
func Element(symbol string) (int, float64, error) {
	z, ok := symbolZ[symbol]
	if !ok {
		return 0, 0, configError("Element: no atomic data for symbol %q", symbol)
	}
	return z, symbolMass[symbol], nil
}
