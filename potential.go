/*
 * potential.go, part of goeam.
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
	"sort"

	"gonum.org/v1/gonum/diff/fd"
)

//Func is a scalar potential shape: an energy or electron-density curve as a
//function of one variable (a separation r, in Angstrom, or a density rho).
//Functions are assumed cheap and pure; they are evaluated once per grid point
//with no caching. They must return a finite value everywhere in the sampled
//domain, including exactly zero, so shapes with fractional powers or 1/r terms
//have to guard their own singularities.
type Func func(x float64) float64

//Sum returns the pointwise sum of the given shapes. It is the main way of
//assembling literature potentials that are given as sums of primitive terms.
func Sum(fns ...Func) Func {
	return func(x float64) float64 {
		var tot float64
		for _, f := range fns {
			tot += f(x)
		}
		return tot
	}
}

//Scale returns f multiplied by the constant k.
func Scale(k float64, f Func) Func {
	return func(x float64) float64 { return k * f(x) }
}

//Truncated returns f for x<=rc and zero beyond. No smoothing is applied;
//shapes that need a continuous cutoff should build it into f itself.
func Truncated(rc float64, f Func) Func {
	return func(x float64) float64 {
		if x > rc {
			return 0
		}
		return f(x)
	}
}

//CubicKnots returns the piecewise-cubic spline sum(k) a[k]*(r[k]-x)^3 for
//x<r[k], the standard building block of Finnis-Sinclair-style knot-table
//potentials (e.g. the Mendelev iron family). The coefficient and knot slices
//must have the same length. The returned shape is zero past the largest knot.
func CubicKnots(a, r []float64) Func {
	if len(a) != len(r) {
		panic("CubicKnots: coefficient and knot slices differ in length") //a programming error, not a runtime condition.
	}
	return func(x float64) float64 {
		var tot float64
		for i, rk := range r {
			if x < rk {
				d := rk - x
				tot += a[i] * d * d * d
			}
		}
		return tot
	}
}

//DefaultForceStep is the finite-difference step used by Force when the caller
//passes a non-positive one.
const DefaultForceStep = 1e-6

//Force evaluates minus the central-difference derivative of f at r, i.e.
//-(f(r+h/2)-f(r-h/2))/h. It is meant for testing and sanity checks; the
//tabulated file format stores r*V(r), not forces, so the writer never calls it.
func Force(f Func, r, h float64) float64 {
	if h <= 0 {
		h = DefaultForceStep
	}
	return -fd.Derivative(func(x float64) float64 { return f(x) }, r, &fd.Settings{
		Formula: fd.Central,
		Step:    h / 2,
	})
}

//Pair is a two-body interaction between an unordered pair of species. The
//pair (A,B) and the pair (B,A) are the same interaction; lookups normalize
//the key by sorting the two labels.
type Pair struct {
	SpeciesA string
	SpeciesB string
	V        Func
}

//NewPair returns a pair potential between species a and b with energy shape v.
func NewPair(a, b string, v Func) (*Pair, error) {
	if a == "" || b == "" {
		return nil, configError("NewPair: empty species label in pair (%q,%q)", a, b)
	}
	if v == nil {
		return nil, configError("NewPair: nil energy function for pair (%s,%s)", a, b)
	}
	return &Pair{SpeciesA: a, SpeciesB: b, V: v}, nil
}

//Energy evaluates the pair-interaction energy at separation r.
func (P *Pair) Energy(r float64) float64 {
	return P.V(r)
}

//Force is the central-difference force at separation r with step h
//(DefaultForceStep if h<=0). See the package-level Force.
func (P *Pair) Force(r, h float64) float64 {
	return Force(P.V, r, h)
}

//Key returns the normalized lookup key for the pair, with the two species
//labels sorted so (A,B) and (B,A) collide.
func (P *Pair) Key() string {
	return pairKey(P.SpeciesA, P.SpeciesB)
}

func pairKey(a, b string) string {
	s := []string{a, b}
	sort.Strings(s)
	return s[0] + " " + s[1]
}
