/*
 * errors.go, part of goeam.
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

import "fmt"

//Error is the interface for errors that all packages in this library implement. The Decorate
//method allows to add and retrieve info from the error, without changing its type or wrapping
//it around something else. The decoration slice should contain the functions in the calling
//stack, plus, for each function, any relevant information, or nothing.
type Error interface {
	Error() string
	Decorate(string) []string //if passed an empty string, just returns the current decoration.
}

//ConfigError reports a caller contract violation: an empty species list, a
//density-function table with a missing counterpart, a bad grid, and so on.
//It is always produced before any table output is written.
type ConfigError struct {
	message string
	deco    []string
}

func (err *ConfigError) Error() string {
	return fmt.Sprintf("goEAM: configuration error: %s", err.message)
}

//Decorate adds the dec string to the decoration slice of strings of the error,
//and returns the resulting slice.
func (err *ConfigError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

func configError(format string, a ...interface{}) *ConfigError {
	return &ConfigError{message: fmt.Sprintf(format, a...)}
}

//EvalError reports that a potential function produced a non-finite value
//(NaN or an infinity) somewhere in the sampled domain. Table names the
//offending table ("embedding Cu", "density Cu-Ni", "pair Al-Cu") and At
//gives the abscissa (an r or a rho, depending on the table) at which the
//function misbehaved.
type EvalError struct {
	Table   string
	At      float64
	message string
	deco    []string
}

func (err *EvalError) Error() string {
	return fmt.Sprintf("goEAM: %s table, at %g: %s", err.Table, err.At, err.message)
}

//Decorate adds the dec string to the decoration slice of strings of the error,
//and returns the resulting slice.
func (err *EvalError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

func evalError(table string, at, value float64) *EvalError {
	return &EvalError{Table: table, At: at, message: fmt.Sprintf("function returned a non-finite value (%v)", value)}
}

//errDecorate asserts that err implements eam.Error and decorates it with the
//caller's name before returning it. A non-eam.Error error is returned unchanged.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}
