/*
 * cell.go, part of hubbardv.
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

// Package pbc handles crystal cells and distances under periodic boundary conditions.
package pbc

import (
	"fmt"
	"math"

	v3 "github.com/rmera/hubbardv/v3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const appzero float64 = 0.000000000001

// nimages is the number of cell images considered in a distance search:
// the cell itself and its 26 neighbors.
const nimages = 27

// Cell is a crystal cell. The rows of the lattice matrix are the 3
// cell vectors, in Angstrom.
type Cell struct {
	lattice *v3.Matrix
	shifts  *v3.Matrix //the translation vectors to the 27 images, (i,j,k)·lattice
}

// NewCell returns a Cell from the 9 elements of the lattice matrix,
// given row by row. It returns an error if the lattice is degenerate.
func NewCell(data []float64) (*Cell, error) {
	if len(data) != 9 {
		return nil, &Error{fmt.Sprintf("A cell needs 9 elements, got %d", len(data)), []string{"NewCell"}}
	}
	d := make([]float64, 9)
	copy(d, data)
	L, err := v3.NewMatrix(d)
	if err != nil {
		return nil, &Error{err.Error(), []string{"v3.NewMatrix", "NewCell"}}
	}
	for i := 0; i < 3; i++ {
		if L.VecView(i).IsZero() {
			return nil, &Error{fmt.Sprintf("Cell vector %d has zero length", i+1), []string{"NewCell"}}
		}
	}
	if math.Abs(L.Det()) <= appzero {
		return nil, &Error{"Degenerate cell: the lattice vectors are linearly dependent", []string{"NewCell"}}
	}
	C := &Cell{lattice: L}
	C.setShifts()
	return C, nil
}

// setShifts obtains the translation to each of the images as the
// product of the integer shift matrix and the lattice.
func (C *Cell) setShifts() {
	ints := make([]float64, 0, 3*nimages)
	for _, i := range []float64{-1, 0, 1} {
		for _, j := range []float64{-1, 0, 1} {
			for _, k := range []float64{-1, 0, 1} {
				ints = append(ints, i, j, k)
			}
		}
	}
	S := mat.NewDense(nimages, 3, ints)
	C.shifts = v3.Zeros(nimages)
	C.shifts.Mul(S, C.lattice)
}

// Vector returns a copy of the ith cell vector.
func (C *Cell) Vector(i int) []float64 {
	return C.lattice.Vec(nil, i)
}

// Det returns the determinant of the lattice matrix.
func (C *Cell) Det() float64 {
	return C.lattice.Det()
}

// Volume returns the volume of the cell, in A^3.
func (C *Cell) Volume() float64 {
	return math.Abs(C.Det())
}

// Frac2Cart returns the cartesian coordinates corresponding to the fractional
// (crystal) coordinates in frac, as the product frac·lattice.
func (C *Cell) Frac2Cart(frac *v3.Matrix) *v3.Matrix {
	cart := v3.Zeros(frac.NVecs())
	cart.Mul(frac, C.lattice)
	return cart
}

// Distance returns the minimum distance between a and the images of b
// obtained by translating it to the 26 cells surrounding the original
// one (plus the original cell). a and b are the first vectors of each matrix.
// Note that the value is the true minimum-image distance only if no
// shorter path exists through a farther shell of cells, see SafeRadius.
func (C *Cell) Distance(a, b *v3.Matrix) float64 {
	d := v3.Zeros(1)
	d.SubVec(a.VecView(0), b.VecView(0))
	images := v3.Zeros(nimages)
	images.AddVec(C.shifts, d)
	best := math.Inf(1)
	for i := 0; i < nimages; i++ {
		r := images.RawRowView(i)
		if sq := r[0]*r[0] + r[1]*r[1] + r[2]*r[2]; sq < best {
			best = sq
		}
	}
	return math.Sqrt(best)
}

// SafeRadius returns half of the smallest perpendicular width of the cell.
// Distances shorter than this are guaranteed to be minimum-image distances
// for points inside the cell. Larger ones may not be.
func (C *Cell) SafeRadius() float64 {
	vol := C.Volume()
	a, b, c := C.Vector(0), C.Vector(1), C.Vector(2)
	faces := []float64{
		floats.Norm(cross(b, c), 2),
		floats.Norm(cross(c, a), 2),
		floats.Norm(cross(a, b), 2),
	}
	return vol / floats.Max(faces) / 2
}

func (C *Cell) String() string {
	return fmt.Sprintf("Cell (volume %.3f A^3):\n%s", C.Volume(), C.lattice)
}

func cross(a, b []float64) []float64 {
	return []float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

//Errors

// Error is the error type for the pbc package.
type Error struct {
	message string
	deco    []string
}

func (err *Error) Error() string {
	return fmt.Sprintf("pbc: %s", err.message)
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}
