/*
 * config.go, part of hubbardv.
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

package assign

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
	hubbard "github.com/rmera/hubbardv"
)

// Class is a class of metal atoms: their symbol in the structure file and the
// file with their V values.
type Class struct {
	Symbol string `toml:"symbol"`
	Table  string `toml:"table"`
}

// Config contains all the parameters of a run. It can be built with
// DefaultConfig and modified, or read from a TOML file with LoadConfig.
type Config struct {
	Input   string  `toml:"input_file"`
	Output  string  `toml:"output_file"`
	Log     string  `toml:"log_file"`
	Ligand  string  `toml:"ligand"`
	Plot    string  `toml:"plot_file"` //optional histogram of the selected distances.
	Classes []Class `toml:"class"`
}

// DefaultConfig returns a Config with the default file names, the
// Fe2 and Fe3 classes and O as the ligand.
func DefaultConfig() *Config {
	return &Config{
		Input:  "conf.qe",
		Output: "V.txt",
		Log:    "log.txt",
		Ligand: "O",
		Classes: []Class{
			{Symbol: "Fe2", Table: "Fe2_V.txt"},
			{Symbol: "Fe3", Table: "Fe3_V.txt"},
		},
	}
}

// LoadConfig reads a TOML configuration file. Parameters absent from
// the file keep their default values. If the file has at least one
// [[class]] table, the classes in the file replace the default ones.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &hubbard.FileAccessError{File: path, Op: "open", Err: err}
	}
	defer f.Close()
	var read Config
	if err := toml.NewDecoder(f).Decode(&read); err != nil {
		return nil, &hubbard.ParseError{Msg: err.Error(), File: path}
	}
	cfg := DefaultConfig()
	merge(&cfg.Input, read.Input)
	merge(&cfg.Output, read.Output)
	merge(&cfg.Log, read.Log)
	merge(&cfg.Ligand, read.Ligand)
	merge(&cfg.Plot, read.Plot)
	if len(read.Classes) > 0 {
		cfg.Classes = read.Classes
	}
	return cfg, nil
}

func merge(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

// Validate checks that all the needed parameters are set.
func (C *Config) Validate() error {
	missing := func(what string) error {
		return fmt.Errorf("invalid configuration: no %s given", what)
	}
	switch {
	case C.Input == "":
		return missing("input file")
	case C.Output == "":
		return missing("output file")
	case C.Log == "":
		return missing("log file")
	case C.Ligand == "":
		return missing("ligand symbol")
	case len(C.Classes) == 0:
		return missing("metal class")
	}
	seen := make(map[string]bool)
	for i, c := range C.Classes {
		if c.Symbol == "" || c.Table == "" {
			return fmt.Errorf("invalid configuration: class %d needs both a symbol and a table", i+1)
		}
		if c.Symbol == C.Ligand {
			return fmt.Errorf("invalid configuration: class %s is also the ligand", c.Symbol)
		}
		if seen[c.Symbol] {
			return fmt.Errorf("invalid configuration: class %s given twice", c.Symbol)
		}
		seen[c.Symbol] = true
	}
	if C.Output == C.Log {
		return fmt.Errorf("invalid configuration: output and log are the same file %s", C.Output)
	}
	return nil
}
