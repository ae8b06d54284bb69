/*
 * main.go, part of hubbardv.
 *
 * Copyright 2024 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

// Command hubbardv assigns pre-computed inter-site Hubbard V values to the 8 nearest
// ligands of each metal atom in a Quantum Espresso structure file.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	hubbard "github.com/rmera/hubbardv"
	"github.com/rmera/hubbardv/assign"
	"github.com/spf13/cobra"
)

// options holds the flag values, which are applied over the configuration
// only when given explicitly.
type options struct {
	config  string
	input   string
	fe2     string
	fe3     string
	output  string
	logfile string
	ligand  string
	plot    string
	quiet   bool
	trace   bool
}

func newRootCmd() (*cobra.Command, *options) {
	o := new(options)
	def := assign.DefaultConfig()
	cmd := &cobra.Command{
		Use:           "hubbardv",
		Short:         "Assign Hubbard V values to the nearest metal-ligand pairs of a crystal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Long: `hubbardv reads a Quantum Espresso structure (CELL_PARAMETERS and ATOMIC_POSITIONS
in crystal coordinates), finds the 8 nearest ligands of each Fe2 and Fe3 atom under
periodic boundary conditions, and pairs the ith closest ligand with the ith value of
the class' value table. The pairs are written as HUBBARD card lines to the output
file, and, with their distances, to the log file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.configure(cmd)
			if err != nil {
				return err
			}
			if o.quiet {
				log.SetOutput(io.Discard)
			}
			err = assign.Run(cfg)
			if err != nil && o.trace {
				if t := hubbard.Trail(err); t != "" {
					fmt.Fprintln(os.Stderr, "trace:", t)
				}
			}
			return err
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.config, "config", "", "TOML configuration file. Flags given explicitly override its values")
	f.StringVarP(&o.input, "input_file", "i", def.Input, "Quantum Espresso structure file")
	f.StringVar(&o.fe2, "fe2_file", def.Classes[0].Table, "V values for the Fe2 atoms")
	f.StringVar(&o.fe3, "fe3_file", def.Classes[1].Table, "V values for the Fe3 atoms")
	f.StringVarP(&o.output, "output_file", "o", def.Output, "output file for the V values")
	f.StringVar(&o.logfile, "log_file", def.Log, "log file with the distances of each pair")
	f.StringVar(&o.ligand, "ligand", def.Ligand, "symbol of the ligand atoms")
	f.StringVar(&o.plot, "plot", "", "if given, plot a histogram of the selected distances to this file (png, svg, pdf)")
	f.BoolVarP(&o.quiet, "quiet", "q", false, "don't print progress information")
	f.BoolVar(&o.trace, "trace", false, "on failure, print the chain of functions where the error was produced")
	return cmd, o
}

// configure builds the configuration from the defaults or the configuration
// file, and the flags given.
func (o *options) configure(cmd *cobra.Command) (*assign.Config, error) {
	cfg := assign.DefaultConfig()
	if o.config != "" {
		var err error
		cfg, err = assign.LoadConfig(o.config)
		if err != nil {
			return nil, err
		}
	}
	changed := cmd.Flags().Changed
	set := func(flag string, dst *string, val string) {
		if changed(flag) {
			*dst = val
		}
	}
	set("input_file", &cfg.Input, o.input)
	set("output_file", &cfg.Output, o.output)
	set("log_file", &cfg.Log, o.logfile)
	set("ligand", &cfg.Ligand, o.ligand)
	set("plot", &cfg.Plot, o.plot)
	tables := []struct{ flag, symbol, file string }{
		{"fe2_file", "Fe2", o.fe2},
		{"fe3_file", "Fe3", o.fe3},
	}
	for _, t := range tables {
		if !changed(t.flag) {
			continue
		}
		c := classBySymbol(cfg, t.symbol)
		if c == nil {
			return nil, fmt.Errorf("--%s given, but the configuration has no %s class", t.flag, t.symbol)
		}
		c.Table = t.file
	}
	return cfg, nil
}

// classBySymbol returns the class of cfg with the given symbol, or nil.
func classBySymbol(cfg *assign.Config, symbol string) *assign.Class {
	for i := range cfg.Classes {
		if cfg.Classes[i].Symbol == symbol {
			return &cfg.Classes[i]
		}
	}
	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("hubbardv: ")
	cmd, _ := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "hubbardv:", err)
		os.Exit(1)
	}
}
