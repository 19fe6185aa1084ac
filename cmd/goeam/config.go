/*
 * config.go, part of goeam.
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

package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

//Default grid: 5000 points per table, density up to 100 and separations up
//to 6 Angstrom, the usual ballpark for setfl files.
const (
	DefaultNRho = 5000
	DefaultDRho = 2.0e-2
	DefaultNR   = 5000
	DefaultDR   = 1.2e-3
)

//Config is a tabulation run file. Flags override whatever is loaded here.
type Config struct {
	Model    string   `yaml:"model"`
	Species  []string `yaml:"species"`
	NRho     int      `yaml:"nrho"`
	DRho     float64  `yaml:"drho"`
	NR       int      `yaml:"nr"`
	DR       float64  `yaml:"dr"`
	Cutoff   float64  `yaml:"cutoff"` //0 means the grid default nr*dr
	Comments []string `yaml:"comments"`
	Out      string   `yaml:"out"`
	Gzip     bool     `yaml:"gzip"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:   "sutton-chen",
		Species: []string{"Cu"},
		NRho:    DefaultNRho,
		DRho:    DefaultDRho,
		NR:      DefaultNR,
		DR:      DefaultDR,
		Out:     "out.eam.fs",
	}
}

//LoadConfig reads a YAML run file on top of the defaults, so partial files
//only need the keys they change.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

//SaveConfig writes cfg as YAML, mostly to generate a starting run file.
func SaveConfig(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
