/*
 * suttonchen.go, part of goeam.
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

package alloy

import (
	"math"

	eam "github.com/molsim/goeam"
)

//The Sutton-Chen long-range Finnis-Sinclair form for fcc metals:
//
//	V(r)    = epsilon*(a/r)^n
//	rho(r)  = (a/r)^m
//	F(rho)  = -epsilon*c*sqrt(rho)
//
//Cross interactions follow the usual mixing rules (Rafii-Tabar and Sutton):
//geometric mean for epsilon, arithmetic means for a, n and m.
type scParams struct {
	n       float64
	m       float64
	epsilon float64 //eV
	c       float64 //dimensionless
	a       float64 //Angstrom; also the fcc lattice constant
}

//Parameters from Sutton and Chen, Philos. Mag. Lett. 61, 139 (1990).
var suttonChen = map[string]scParams{
	"Ni": {n: 9, m: 6, epsilon: 1.5707e-2, c: 39.432, a: 3.52},
	"Cu": {n: 9, m: 6, epsilon: 1.2382e-2, c: 39.432, a: 3.61},
	"Rh": {n: 12, m: 6, epsilon: 4.9371e-3, c: 144.41, a: 3.80},
	"Pd": {n: 12, m: 7, epsilon: 4.1790e-3, c: 108.27, a: 3.89},
	"Ag": {n: 12, m: 6, epsilon: 2.5415e-3, c: 144.41, a: 4.09},
	"Ir": {n: 14, m: 6, epsilon: 2.4489e-3, c: 334.94, a: 3.84},
	"Pt": {n: 10, m: 8, epsilon: 1.9833e-2, c: 34.408, a: 3.92},
	"Au": {n: 10, m: 8, epsilon: 1.2793e-2, c: 34.408, a: 4.08},
	"Al": {n: 7, m: 6, epsilon: 3.3147e-2, c: 16.399, a: 4.05},
	"Pb": {n: 10, m: 7, epsilon: 5.5765e-3, c: 45.778, a: 4.95},
}

//The inverse-power shapes diverge at r=0, but tabulation grids start exactly
//there and the writer rejects infinities, so r is clamped to a tiny inner
//radius. The resulting values are astronomically large yet finite, which is
//what tabulated EAM files conventionally carry near the origin.
const scRMin = 1e-6

func scPower(a, p float64) eam.Func {
	return func(r float64) float64 {
		if r < scRMin {
			r = scRMin
		}
		return math.Pow(a/r, p)
	}
}

//SuttonChen builds the Sutton-Chen potential set for the given species (all
//must be in the published table). It is registered as "sutton-chen".
func SuttonChen(species []string, rc float64) ([]*eam.EAM, []*eam.Pair, error) {
	if len(species) == 0 {
		return nil, nil, alloyError("empty species list")
	}
	prms := make([]scParams, len(species))
	for i, s := range species {
		p, ok := suttonChen[s]
		if !ok {
			return nil, nil, alloyError("no Sutton-Chen parameters for %s", s)
		}
		prms[i] = p
	}
	trunc := func(f eam.Func) eam.Func {
		if rc > 0 {
			return eam.Truncated(rc, f)
		}
		return f
	}
	eams := make([]*eam.EAM, 0, len(species))
	for i, s := range species {
		pi := prms[i]
		embed := func(rho float64) float64 { return -pi.epsilon * pi.c * math.Sqrt(rho) }
		//one density shape per counterpart, with mixed a and m: the density
		//of s as felt by a neighbor of species o.
		dens := make(map[string]eam.Func, len(species))
		for j, o := range species {
			pj := prms[j]
			dens[o] = trunc(scPower((pi.a+pj.a)/2, (pi.m+pj.m)/2))
		}
		e, err := eam.NewEAMElement(s, embed, dens, pi.a, "fcc")
		if err != nil {
			return nil, nil, err
		}
		eams = append(eams, e)
	}
	pairs := make([]*eam.Pair, 0, len(species)*(len(species)+1)/2)
	for i, si := range species {
		for j := 0; j <= i; j++ {
			pi, pj := prms[i], prms[j]
			eps := math.Sqrt(pi.epsilon * pj.epsilon)
			v := eam.Scale(eps, scPower((pi.a+pj.a)/2, (pi.n+pj.n)/2))
			p, err := eam.NewPair(si, species[j], trunc(v))
			if err != nil {
				return nil, nil, err
			}
			pairs = append(pairs, p)
		}
	}
	return eams, pairs, nil
}

func init() {
	Register("sutton-chen", SuttonChen)
}
