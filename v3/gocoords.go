/*
 * gocoords.go, part of hubbardv.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package v3

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

// Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

//METHODS

// NVecs returns the number of vecs in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

// Vec copies the ith vector of F into dst, which is allocated if nil,
// and returns it.
func (F *Matrix) Vec(dst []float64, i int) []float64 {
	if i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	return mat.Row(dst, i, F.Dense)
}

// AddVec adds the vector vec to each vector of A, putting the result on the received.
// A and F can be the same matrix.
func (F *Matrix) AddVec(A, vec *Matrix) {
	ar, ac := A.Dims()
	rr, rc := vec.Dims()
	fr, fc := F.Dims()
	if ac != rc || rr != 1 || ac != fc || ar != fr {
		panic(ErrShape)
	}
	v := vec.Vec(nil, 0)
	row := make([]float64, 3)
	for i := 0; i < ar; i++ {
		A.Vec(row, i)
		floats.Add(row, v)
		F.SetRow(i, row)
	}
}

// SubVec subtracts the vector vec from each vector of the matrix A, putting
// the result on the receiver. Panics if matrices are mismatched.
func (F *Matrix) SubVec(A, vec *Matrix) {
	ar, ac := A.Dims()
	rr, rc := vec.Dims()
	fr, fc := F.Dims()
	if ac != rc || rr != 1 || ac != fc || ar != fr {
		panic(ErrShape)
	}
	v := vec.Vec(nil, 0)
	row := make([]float64, 3)
	for i := 0; i < ar; i++ {
		A.Vec(row, i)
		floats.Sub(row, v)
		F.SetRow(i, row)
	}
}

// SomeVecs puts in the receiver the vectors of A with index in clist,
// in the same order as clist.
func (F *Matrix) SomeVecs(A *Matrix, clist []int) {
	ar, ac := A.Dims()
	fr, fc := F.Dims()
	if ac != fc || fr != len(clist) {
		panic(ErrShape)
	}
	row := make([]float64, 3)
	for key, val := range clist {
		if val >= ar || val < 0 {
			panic(ErrIndexOutOfRange)
		}
		A.Vec(row, val)
		F.SetRow(key, row)
	}
}

// SomeVecsSafe is SomeVecs, but returns an error instead of panicking.
func (F *Matrix) SomeVecsSafe(A *Matrix, clist []int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			switch e := r.(type) {
			case PanicMsg:
				err = &Error{string(e), []string{"SomeVecsSafe"}}
			case mat.Error:
				err = &Error{fmt.Sprintf("hubbardv/v3: Error in a gonum function: %s", e), []string{"SomeVecsSafe"}}
			default:
				panic(r)
			}
		}
	}()
	F.SomeVecs(A, clist)
	return
}

// String returns a neat string representation of a Matrix
func (F *Matrix) String() string {
	r, _ := F.Dims()
	v := make([]string, 0, r)
	row := make([]float64, 3)
	for i := 0; i < r; i++ {
		F.Vec(row, i)
		v = append(v, fmt.Sprintf("%9.4f %9.4f %9.4f", row[0], row[1], row[2]))
	}
	return "[" + strings.Join(v, "\n ") + "]"
}

// IsZero returns true if the norm of the first vector of F is zero
// within floating point tolerance.
func (F *Matrix) IsZero() bool {
	return floats.Norm(F.RawRowView(0), 2) <= appzero
}
