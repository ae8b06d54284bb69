/*
 * run.go, part of hubbardv.
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
	"log"
	"os"
	"path/filepath"

	hubbard "github.com/rmera/hubbardv"
	"github.com/rmera/hubbardv/distplot"
	"github.com/rmera/hubbardv/neighbors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Run reads the structure and the value tables given in cfg, assigns the V
// values of each class to the nearest ligands of each of its atoms and writes
// the V and log files. The classes are processed in the order given, and the
// atoms of each class in the order they appear in the structure.
// Any error aborts the run. The outputs are only replaced once all the
// records have been written, so a failed run leaves no partial output.
func Run(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	S, err := hubbard.QERead(cfg.Input)
	if err != nil {
		return fmt.Errorf("reading structure: %w", hubbard.ErrDecorate(err, "Run"))
	}
	log.Printf("Read %d atoms (%s) from %s", S.Len(), S.Composition(), cfg.Input)
	vout, err := createAtomic(cfg.Output)
	if err != nil {
		return hubbard.ErrDecorate(err, "Run")
	}
	defer vout.abort()
	lout, err := createAtomic(cfg.Log)
	if err != nil {
		return hubbard.ErrDecorate(err, "Run")
	}
	defer lout.abort()
	W := NewWriter(vout.f, lout.f)
	if err = W.WriteHeader(); err != nil {
		return &hubbard.FileAccessError{File: cfg.Log, Op: "write", Err: err}
	}
	dists, err := assignAll(S, cfg, W)
	if err != nil {
		return err
	}
	if err = W.Flush(); err != nil {
		return &hubbard.FileAccessError{File: cfg.Output + ", " + cfg.Log, Op: "write", Err: err}
	}
	if err = vout.commit(); err != nil {
		return hubbard.ErrDecorate(err, "Run")
	}
	if err = lout.commit(); err != nil {
		return hubbard.ErrDecorate(err, "Run")
	}
	log.Printf("Wrote %d V values to %s and %s", W.Written(), cfg.Output, cfg.Log)
	if cfg.Plot != "" {
		symbols := make([]string, len(cfg.Classes))
		for i, c := range cfg.Classes {
			symbols[i] = c.Symbol
		}
		title := fmt.Sprintf("Metal-%s distances, %s", cfg.Ligand, filepath.Base(cfg.Input))
		if err = distplot.Histogram(dists, symbols, title, cfg.Plot); err != nil {
			return err
		}
	}
	return nil
}

// assignAll processes each class in turn, writing the records for each metal atom
// once all of them have been obtained. It returns the selected distances for each class.
func assignAll(S *hubbard.Structure, cfg *Config, W *Writer) (map[string][]float64, error) {
	ligs, err := S.Subset(S.Select(cfg.Ligand))
	if err != nil {
		return nil, hubbard.ErrDecorate(err, "assignAll")
	}
	safe := S.Cell.SafeRadius()
	dists := make(map[string][]float64)
	for _, class := range cfg.Classes {
		table, err := ReadTable(class.Table)
		if err != nil {
			return nil, fmt.Errorf("class %s: %w", class.Symbol, hubbard.ErrDecorate(err, "assignAll"))
		}
		refs := S.Select(class.Symbol)
		if len(refs) == 0 {
			log.Printf("No %s atoms in %s", class.Symbol, cfg.Input)
			continue
		}
		for _, i := range refs {
			ref := S.Atom(i).ID
			list, err := neighbors.Nearest(S.Coord(i), ligs, S.Cell, neighbors.Coordination)
			if err != nil {
				return nil, fmt.Errorf("%s atom %d: %w", class.Symbol, ref, hubbard.ErrDecorate(err, "assignAll"))
			}
			recs, err := Assign(class.Symbol, cfg.Ligand, ref, table, list)
			if err != nil {
				return nil, fmt.Errorf("%s atom %d: %w", class.Symbol, ref, hubbard.ErrDecorate(err, "assignAll"))
			}
			if err := W.WriteRecords(recs); err != nil {
				return nil, &hubbard.FileAccessError{File: cfg.Output + ", " + cfg.Log, Op: "write", Err: err}
			}
			dists[class.Symbol] = append(dists[class.Symbol], list.Distances()...)
		}
		d := dists[class.Symbol]
		mean, std := stat.MeanStdDev(d, nil)
		dmax := floats.Max(d)
		log.Printf("%s: %d atoms, %s distance %.3f +/- %.3f A (max %.3f)", class.Symbol, len(refs), cfg.Ligand, mean, std, dmax)
		if dmax > safe {
			log.Printf("Warning: %s-%s distances up to %.3f A, but only those under %.3f A are guaranteed to be minimum-image distances in this cell", class.Symbol, cfg.Ligand, dmax, safe)
		}
	}
	return dists, nil
}

// atomicFile is written in a temporary file in the same directory as the
// final one, and renamed to the final name only on commit.
type atomicFile struct {
	f     *os.File
	final string
	done  bool
}

func createAtomic(name string) (*atomicFile, error) {
	f, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+".*.tmp")
	if err != nil {
		return nil, &hubbard.FileAccessError{File: name, Op: "create", Err: err}
	}
	return &atomicFile{f: f, final: name}, nil
}

func (A *atomicFile) commit() error {
	tmp := A.f.Name()
	A.done = true
	if err := A.f.Close(); err != nil {
		os.Remove(tmp)
		return &hubbard.FileAccessError{File: A.final, Op: "write", Err: err}
	}
	if err := os.Chmod(tmp, 0644); err != nil {
		os.Remove(tmp)
		return &hubbard.FileAccessError{File: A.final, Op: "write", Err: err}
	}
	if err := os.Rename(tmp, A.final); err != nil {
		os.Remove(tmp)
		return &hubbard.FileAccessError{File: A.final, Op: "write", Err: err}
	}
	return nil
}

// abort removes the temporary file, unless it has already been committed.
func (A *atomicFile) abort() {
	if A.done {
		return
	}
	A.done = true
	A.f.Close()
	os.Remove(A.f.Name())
}
