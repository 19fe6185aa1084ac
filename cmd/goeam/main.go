/*
 * main.go, part of goeam.
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

//goeam is a batch front end over the eam tabulation library: pick a
//registered alloy parameterization and a species list, set the grids, and
//write a setfl table (plain or gzip-compressed), optionally rendering the
//curves as images.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	eam "github.com/molsim/goeam"
	"github.com/molsim/goeam/alloy"
	"github.com/molsim/goeam/tabplot"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configFile string
	model      string
	species    []string
	nrho       int
	drho       float64
	nr         int
	dr         float64
	cutoff     float64
	out        string
	gzipOut    bool
	comments   []string
	plotDir    string
)

var logger *zap.Logger

func main() {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	rootCmd := &cobra.Command{
		Use:   "goeam",
		Short: "tabulate EAM/Finnis-Sinclair potentials into setfl files",
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML run file (flags override it)")

	writeCmd := &cobra.Command{
		Use:   "write",
		Short: "tabulate a model and write the table file",
		RunE:  runWrite,
	}
	addModelFlags(writeCmd)
	writeCmd.Flags().StringVar(&out, "out", "", "output path")
	writeCmd.Flags().BoolVar(&gzipOut, "gzip", false, "gzip-compress the output")
	writeCmd.Flags().StringSliceVar(&comments, "comment", nil, "header comment line (up to 3)")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "render the model's curves as PNG images",
		RunE:  runPlot,
	}
	addModelFlags(plotCmd)
	plotCmd.Flags().StringVar(&plotDir, "dir", ".", "directory for the images")

	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "list the available parameterizations",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(strings.Join(alloy.Models(), "\n"))
		},
	}

	initCmd := &cobra.Command{
		Use:   "init [file]",
		Short: "write a starting run file with the defaults",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return SaveConfig(args[0], DefaultConfig())
		},
	}

	rootCmd.AddCommand(writeCmd, plotCmd, modelsCmd, initCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addModelFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&model, "model", "", "parameterization name (see `goeam models`)")
	cmd.Flags().StringSliceVar(&species, "species", nil, "species list, in output order")
	cmd.Flags().IntVar(&nrho, "nrho", 0, "density grid points")
	cmd.Flags().Float64Var(&drho, "drho", 0, "density grid step")
	cmd.Flags().IntVar(&nr, "nr", 0, "radial grid points")
	cmd.Flags().Float64Var(&dr, "dr", 0, "radial grid step, in Angstrom")
	cmd.Flags().Float64Var(&cutoff, "cutoff", 0, "cutoff radius (default nr*dr)")
}

//effectiveConfig layers the run file (if any) over the defaults and the
//changed flags over both.
func effectiveConfig(cmd *cobra.Command) (*Config, error) {
	cfg := DefaultConfig()
	if configFile != "" {
		var err error
		cfg, err = LoadConfig(configFile)
		if err != nil {
			return nil, err
		}
	}
	fl := cmd.Flags()
	if fl.Changed("model") {
		cfg.Model = model
	}
	if fl.Changed("species") {
		cfg.Species = species
	}
	if fl.Changed("nrho") {
		cfg.NRho = nrho
	}
	if fl.Changed("drho") {
		cfg.DRho = drho
	}
	if fl.Changed("nr") {
		cfg.NR = nr
	}
	if fl.Changed("dr") {
		cfg.DR = dr
	}
	if fl.Changed("cutoff") {
		cfg.Cutoff = cutoff
	}
	if fl.Changed("out") {
		cfg.Out = out
	}
	if fl.Changed("gzip") {
		cfg.Gzip = gzipOut
	}
	if fl.Changed("comment") {
		cfg.Comments = comments
	}
	return cfg, nil
}

func buildModel(cfg *Config) (eam.Grid, []*eam.EAM, []*eam.Pair, error) {
	grid := eam.Grid{NRho: cfg.NRho, DRho: cfg.DRho, NR: cfg.NR, DR: cfg.DR}
	rc := cfg.Cutoff
	if rc <= 0 {
		rc = grid.Cutoff()
	}
	eams, pairs, err := alloy.New(cfg.Model, cfg.Species, rc)
	if err != nil {
		return grid, nil, nil, err
	}
	return grid, eams, pairs, nil
}

func runWrite(cmd *cobra.Command, args []string) error {
	cfg, err := effectiveConfig(cmd)
	if err != nil {
		return err
	}
	grid, eams, pairs, err := buildModel(cfg)
	if err != nil {
		return err
	}
	comments := cfg.Comments
	if len(comments) == 0 {
		comments = []string{fmt.Sprintf("%s potential for %s, tabulated by goeam", cfg.Model, strings.Join(cfg.Species, "-"))}
	}
	write := eam.SetFLWrite
	if cfg.Gzip {
		write = eam.SetFLWriteGZ
	}
	if err := write(cfg.Out, grid, eams, pairs, comments, cfg.Cutoff); err != nil {
		return err
	}
	logger.Info("wrote table",
		zap.String("path", cfg.Out),
		zap.String("model", cfg.Model),
		zap.Strings("species", cfg.Species),
		zap.Int("nrho", grid.NRho),
		zap.Int("nr", grid.NR),
		zap.Bool("gzip", cfg.Gzip),
	)
	return nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, err := effectiveConfig(cmd)
	if err != nil {
		return err
	}
	grid, eams, pairs, err := buildModel(cfg)
	if err != nil {
		return err
	}
	for _, e := range eams {
		name := filepath.Join(plotDir, "embed_"+e.Symbol+".png")
		if err := tabplot.Embedding(e, grid, name); err != nil {
			return err
		}
		for _, o := range eams {
			name := filepath.Join(plotDir, "dens_"+e.Symbol+"-"+o.Symbol+".png")
			if err := tabplot.Density(e, o.Symbol, grid, name); err != nil {
				return err
			}
		}
	}
	for _, p := range pairs {
		name := filepath.Join(plotDir, "pair_"+p.SpeciesA+"-"+p.SpeciesB+".png")
		if err := tabplot.PairEnergy(p, grid, name); err != nil {
			return err
		}
	}
	logger.Info("rendered plots", zap.String("dir", plotDir), zap.Int("species", len(eams)), zap.Int("pairs", len(pairs)))
	return nil
}
