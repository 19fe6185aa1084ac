/*
 * alloy.go, part of goeam.
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

//Package alloy carries ready-made closed-form potential parameterizations
//from the literature, expressed through the goeam potential model. The
//analytical coefficients here are pure domain data; the tabulation machinery
//lives in the parent package.
package alloy

import (
	"fmt"
	"sort"

	eam "github.com/molsim/goeam"
)

//Builder constructs the complete potential set, one embedded-atom record per
//requested species plus the pair potentials for every unordered species pair,
//for a given parameterization family. Radial functions are truncated at rc;
//rc<=0 leaves them untruncated.
type Builder func(species []string, rc float64) ([]*eam.EAM, []*eam.Pair, error)

//builders holds all available parameterizations.
var builders = map[string]Builder{}

//Register makes a parameterization available under the given name.
//Registering the same name twice keeps the last one.
func Register(name string, b Builder) {
	builders[name] = b
}

//Models returns the names of all registered parameterizations, sorted.
func Models() []string {
	names := make([]string, 0, len(builders))
	for n := range builders {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

//New builds the potential set for the named parameterization.
func New(name string, species []string, rc float64) ([]*eam.EAM, []*eam.Pair, error) {
	b, ok := builders[name]
	if !ok {
		return nil, nil, alloyError("model %q is not available (have %v)", name, Models())
	}
	return b(species, rc)
}

//Errors

//Error is the structure for alloy-package errors. It fulfills eam.Error, so
//these errors can be decorated on their way up just like the ones from the
//parent package.
type Error struct {
	message string
	deco    []string
}

func (err *Error) Error() string {
	return fmt.Sprintf("goEAM/alloy: %s", err.message)
}

//Decorate adds the dec string to the decoration slice of strings of the error,
//and returns the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

func alloyError(format string, a ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, a...)}
}
