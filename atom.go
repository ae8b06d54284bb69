/*
 * atom.go, part of hubbardv.
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

package hubbard

import (
	"fmt"
	"sort"

	"github.com/rmera/hubbardv/pbc"
	v3 "github.com/rmera/hubbardv/v3"
)

// Atom contains the information read for each atom, except for the coordinates,
// which are kept in a matrix in the Structure.
type Atom struct {
	Symbol string //the label in the structure file, e.g. Fe2, Fe3 or O
	ID     int    //1-based position of the atom in the file
}

// Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	r := *A
	return &r
}

// Structure is a periodic set of atoms: the atoms themselves, their
// cartesian coordinates (row i for the atom i) and the crystal cell.
// A Structure is not modified after being read.
type Structure struct {
	Name   string //the file it was read from, if any
	Atoms  []*Atom
	Coords *v3.Matrix
	Cell   *pbc.Cell
}

// Len returns the number of atoms in the structure.
func (S *Structure) Len() int {
	return len(S.Atoms)
}

// Atom returns the Atom corresponding to the index i
// of the Atom slice. Panics if out of range.
func (S *Structure) Atom(i int) *Atom {
	if i >= S.Len() {
		panic("Structure: Requested Atom out of bounds")
	}
	return S.Atoms[i]
}

// Coord returns a view of the coordinates of the ith atom.
func (S *Structure) Coord(i int) *v3.Matrix {
	return S.Coords.VecView(i)
}

// Select returns the indexes (0-based) of the atoms with the given
// symbol, in ascending order.
func (S *Structure) Select(symbol string) []int {
	var ret []int
	for i, v := range S.Atoms {
		if v.Symbol == symbol {
			ret = append(ret, i)
		}
	}
	return ret
}

// Subset returns a new Structure with copies of the atoms with the given
// indexes, and their coordinates, in the same order. The cell is shared.
// An empty index list gives a structure without atoms or coordinates.
func (S *Structure) Subset(indexes []int) (*Structure, error) {
	R := &Structure{Name: S.Name, Cell: S.Cell, Atoms: make([]*Atom, 0, len(indexes))}
	if len(indexes) == 0 {
		return R, nil
	}
	R.Coords = v3.Zeros(len(indexes))
	if err := R.Coords.SomeVecsSafe(S.Coords, indexes); err != nil {
		return nil, ErrDecorate(err, "Subset")
	}
	for _, v := range indexes {
		R.Atoms = append(R.Atoms, S.Atoms[v].Copy())
	}
	return R, nil
}

// Composition returns the number of atoms of each symbol in the structure,
// as a string sorted by symbol, e.g. "Fe2:4 Fe3:4 O:16".
func (S *Structure) Composition() string {
	counts := make(map[string]int)
	for _, v := range S.Atoms {
		counts[v.Symbol]++
	}
	symbols := make([]string, 0, len(counts))
	for k := range counts {
		symbols = append(symbols, k)
	}
	sort.Strings(symbols)
	ret := ""
	for i, v := range symbols {
		if i > 0 {
			ret += " "
		}
		ret += fmt.Sprintf("%s:%d", v, counts[v])
	}
	return ret
}
