/*
 * gonum.go, part of hubbardv.
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

//gonum.go contains what is needed to wrap the gonum mat types.
//All the *Vec functions operate on row vectors, i.e. the cartesian coordinates of
//one point.

package v3

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a set of vectors in 3D space.
// Within the package it is understood that a "vector" is a row vector, i.e. the
// cartesian coordinates of a point in 3D space. The name of some functions in
// the library reflect this.
type Matrix struct {
	*mat.Dense
}

// NewMatrix generates and returns a Matrix with 3 columns from data.
// The data slice is used as the backing storage, not copied.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	if l == 0 || l%cols != 0 {
		return nil, &Error{fmt.Sprintf("Input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}}
	}
	r := mat.NewDense(l/cols, cols, data)
	return &Matrix{r}, nil
}

// VecView returns a view of the ith vector of the matrix. Changes in the
// view are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

// Mul wraps mat.Dense.Mul to take care of the case when one of the
// arguments is a Matrix, so gonum sees the underlying Dense.
func (F *Matrix) Mul(A, B mat.Matrix) {
	if a, ok := A.(*Matrix); ok {
		A = a.Dense
	}
	if b, ok := B.(*Matrix); ok {
		B = b.Dense
	}
	F.Dense.Mul(A, B)
}

// Det returns the determinant of a 3x3 Matrix. Panics if the matrix is not 3x3.
func (F *Matrix) Det() float64 {
	r, c := F.Dims()
	if r != 3 || c != 3 {
		panic(ErrDeterminant)
	}
	return F.At(0, 0)*(F.At(1, 1)*F.At(2, 2)-F.At(2, 1)*F.At(1, 2)) -
		F.At(1, 0)*(F.At(0, 1)*F.At(2, 2)-F.At(2, 1)*F.At(0, 2)) +
		F.At(2, 0)*(F.At(0, 1)*F.At(1, 2)-F.At(1, 1)*F.At(0, 2))
}

//Errors

// Error is the error type for the v3 package. It mirrors hubbard.Error
// without importing it, to avoid a circular import.
type Error struct {
	message string
	deco    []string
}

// Error returns a string with an error message.
func (err *Error) Error() string {
	return err.message
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// PanicMsg is a message used for panics, even though it does satisfy the error interface.
// for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix    = PanicMsg("hubbardv/v3: A Matrix should have 3 columns")
	ErrDeterminant     = PanicMsg("hubbardv/v3: Determinants are only available for 3x3 matrices")
	ErrShape           = PanicMsg("hubbardv/v3: Dimension mismatch")
	ErrIndexOutOfRange = PanicMsg("hubbardv/v3: index out of range")
)
