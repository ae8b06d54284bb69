/*
 * neighbors.go, part of hubbardv.
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

// Package neighbors ranks ligand atoms around a reference atom by their
// distance under periodic boundary conditions.
package neighbors

import (
	"fmt"
	"sort"
	"strings"

	hubbard "github.com/rmera/hubbardv"
	"github.com/rmera/hubbardv/pbc"
	v3 "github.com/rmera/hubbardv/v3"
)

// Coordination is the number of ligands assigned to each metal atom.
const Coordination = 8

// Neighbor is a ligand atom, identified by its ID, and its distance to the reference atom.
type Neighbor struct {
	ID       int
	Distance float64
}

// List is a list of neighbors. It implements sort.Interface, sorting by distance.
type List []Neighbor

func (L List) Len() int {
	return len(L)
}

func (L List) Less(i, j int) bool {
	return L[i].Distance < L[j].Distance
}

func (L List) Swap(i, j int) {
	L[i], L[j] = L[j], L[i]
}

// Distances returns the distances of the neighbors in the list, in order.
func (L List) Distances() []float64 {
	ret := make([]float64, len(L))
	for i, v := range L {
		ret[i] = v.Distance
	}
	return ret
}

func (L List) String() string {
	s := make([]string, len(L))
	for i, v := range L {
		s[i] = fmt.Sprintf("%d:%.3f", v.ID, v.Distance)
	}
	return strings.Join(s, " ")
}

// Nearest returns the count atoms of cands closest to ref, sorted by increasing periodic
// distance. Candidates at the same distance keep the order they have in cands.
// If there are fewer than count candidates, a *hubbard.InsufficientCandidatesError is returned.
func Nearest(ref *v3.Matrix, cands hubbard.Coorder, cell *pbc.Cell, count int) (List, error) {
	n := cands.Len()
	if n < count {
		return nil, &hubbard.InsufficientCandidatesError{Found: n, Wanted: count}
	}
	list := make(List, n)
	for i := 0; i < n; i++ {
		list[i] = Neighbor{ID: cands.Atom(i).ID, Distance: cell.Distance(ref, cands.Coord(i))}
	}
	sort.Stable(list)
	return list[:count:count], nil
}
