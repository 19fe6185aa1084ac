/*
 * eampot.go, part of goeam.
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

//EAM describes one chemical species of an embedded-atom (or Finnis-Sinclair)
//model: its identity, its embedding function and one electron-density
//function per counterpart species, plus the equilibrium lattice metadata the
//tabulated format stores for reference. Values are built once and never
//mutated afterwards.
type EAM struct {
	Symbol          string          //species label, unique within a model
	Z               int             //atomic number
	Mass            float64         //atomic mass, in amu
	Embed           Func            //embedding energy F(rho)
	Density         map[string]Func //electron density rho(r), keyed by counterpart species label (including Symbol itself)
	LatticeConstant float64         //equilibrium lattice constant, in Angstrom
	Lattice         string          //free-form lattice tag, e.g. "fcc", "bcc", "hcp"
}

//NewEAM builds the embedded-atom record for one species. The density map
//must eventually contain one entry per species in the model, including symbol
//itself; that can only be checked once the full species list is known, so it
//happens in the writer, before any output. What can be checked here is:
//non-empty label, non-nil embedding function, and no nil density functions.
func NewEAM(symbol string, z int, mass float64, embed Func, density map[string]Func, latconst float64, lattice string) (*EAM, error) {
	if symbol == "" {
		return nil, configError("NewEAM: empty species label")
	}
	if embed == nil {
		return nil, configError("NewEAM: nil embedding function for %s", symbol)
	}
	if density == nil {
		return nil, configError("NewEAM: nil density-function table for %s", symbol)
	}
	for other, f := range density {
		if f == nil {
			return nil, configError("NewEAM: nil density function for %s-%s", symbol, other)
		}
	}
	return &EAM{
		Symbol:          symbol,
		Z:               z,
		Mass:            mass,
		Embed:           embed,
		Density:         density,
		LatticeConstant: latconst,
		Lattice:         lattice,
	}, nil
}

//NewEAMElement is NewEAM with the atomic number and mass filled in from the
//built-in table for the given element symbol.
func NewEAMElement(symbol string, embed Func, density map[string]Func, latconst float64, lattice string) (*EAM, error) {
	z, mass, err := Element(symbol)
	if err != nil {
		return nil, errDecorate(err, "NewEAMElement")
	}
	return NewEAM(symbol, z, mass, embed, density, latconst, lattice)
}

//EmbeddingValue evaluates the embedding energy at density rho. It is a plain
//pass-through; the function handles its own domain, including rho=0.
func (E *EAM) EmbeddingValue(rho float64) float64 {
	return E.Embed(rho)
}

//ElectronDensity evaluates the electron-density contribution of this species
//as felt by a neighbor of species other, at separation r. A missing entry in
//the density table is a configuration error.
func (E *EAM) ElectronDensity(r float64, other string) (float64, error) {
	f, ok := E.Density[other]
	if !ok {
		return 0, configError("ElectronDensity: species %s has no density function for counterpart %s", E.Symbol, other)
	}
	return f(r), nil
}
