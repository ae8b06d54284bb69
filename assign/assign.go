/*
 * assign.go, part of hubbardv.
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

// Package assign pairs the ligands around each metal atom with the V values
// of the metal's class, and writes the results.
package assign

import (
	"bufio"
	"fmt"
	"io"

	hubbard "github.com/rmera/hubbardv"
	"github.com/rmera/hubbardv/neighbors"
)

// LogHeader is the first line of the log file.
const LogHeader = "\tFe_i\tO_i\td (A)\tV (eV)"

// Record is one metal-ligand pair with its V value.
type Record struct {
	Class    string //the symbol of the metal atom, e.g. Fe2
	Ligand   string //the symbol of the ligand, e.g. O
	Ref      int    //ID of the metal atom
	LigandID int
	Distance float64
	Value    float64
}

// VLine returns the record in the format of a Quantum Espresso HUBBARD card.
func (R Record) VLine() string {
	return fmt.Sprintf("V %s-3d %s-2p %d %d %.2f", R.Class, R.Ligand, R.Ref, R.LigandID, R.Value)
}

// LogLine returns the record as a line of the log file.
func (R Record) LogLine() string {
	return fmt.Sprintf("%s\t%d\t%d\t%.3f\t%.2f", R.Class, R.Ref, R.LigandID, R.Distance, R.Value)
}

// Assign pairs the ith neighbor in list with the ith value in table, for the metal
// atom with ID ref. table must have exactly neighbors.Coordination values, otherwise
// a *hubbard.ValueTableLengthError is returned. A list with a different number of
// neighbors gives a *hubbard.InsufficientCandidatesError.
func Assign(class, ligand string, ref int, table Table, list neighbors.List) ([]Record, error) {
	if len(table) != neighbors.Coordination {
		return nil, &hubbard.ValueTableLengthError{Found: len(table), Wanted: neighbors.Coordination}
	}
	if len(list) != len(table) {
		return nil, &hubbard.InsufficientCandidatesError{Found: len(list), Wanted: len(table)}
	}
	recs := make([]Record, len(list))
	for i, n := range list {
		recs[i] = Record{
			Class:    class,
			Ligand:   ligand,
			Ref:      ref,
			LigandID: n.ID,
			Distance: n.Distance,
			Value:    table[i],
		}
	}
	return recs, nil
}

// Writer writes records to the V (assignment) and log outputs.
type Writer struct {
	v   *bufio.Writer
	log *bufio.Writer
	n   int
}

// NewWriter returns a Writer to the given outputs.
func NewWriter(v, log io.Writer) *Writer {
	return &Writer{v: bufio.NewWriter(v), log: bufio.NewWriter(log)}
}

// WriteHeader writes the header of the log.
func (W *Writer) WriteHeader() error {
	_, err := fmt.Fprintln(W.log, LogHeader)
	return err
}

// WriteRecords writes each record to both outputs.
func (W *Writer) WriteRecords(recs []Record) error {
	for _, r := range recs {
		if _, err := fmt.Fprintln(W.v, r.VLine()); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(W.log, r.LogLine()); err != nil {
			return err
		}
		W.n++
	}
	return nil
}

// Written returns the number of records written so far.
func (W *Writer) Written() int {
	return W.n
}

// Flush flushes both outputs.
func (W *Writer) Flush() error {
	if err := W.v.Flush(); err != nil {
		return err
	}
	return W.log.Flush()
}
