/*
 * v3_test.go, part of hubbardv.
 *
 * Copyright 2013 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// Returns an identity matrix spanning span cols and rows
func gnEye(span int) *mat.Dense {
	A := mat.NewDense(span, span, nil)
	for i := 0; i < span; i++ {
		A.Set(i, i, 1.0)
	}
	return A
}

func TestNewMatrix(Te *testing.T) {
	if _, err := NewMatrix([]float64{1, 2, 3, 4}); err == nil {
		Te.Error("NewMatrix accepted a slice not divisible by 3")
	}
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 2 {
		Te.Errorf("expected 2 vecs, got %d", A.NVecs())
	}
}

func TestMulIdentity(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Fatal(err)
	}
	T := Zeros(3)
	T.Mul(A, gnEye(3))
	if !mat.Equal(T, A) {
		Te.Errorf("A*I != A\n%v\n%v", T, A)
	}
	fmt.Println(T)
}

func TestViews(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Fatal(err)
	}
	View := A.VecView(1)
	View.Set(0, 0, 100)
	if A.At(1, 0) != 100 {
		Te.Errorf("change in view not seen in the parent matrix")
	}
	B := Zeros(3)
	if err := B.SomeVecsSafe(A, []int{1, 3, 5}); err != nil {
		Te.Fatal(err)
	}
	if B.At(0, 0) != 100 || B.At(2, 2) != 18 {
		Te.Errorf("wrong SomeVecs result\n%v", B)
	}
	err = B.SomeVecsSafe(A, []int{1, 3, 50})
	e, ok := err.(*Error)
	if !ok {
		Te.Fatalf("SomeVecsSafe: expected a *Error for an out of range index, got %v", err)
	}
	e.Decorate("TestViews")
	if deco := e.Decorate(""); len(deco) != 2 || deco[1] != "TestViews" {
		Te.Errorf("decoration lost: %v", deco)
	}
}

func TestAddSubVec(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	Row, _ := NewMatrix([]float64{10, 20, 30})
	A.AddVec(A, Row)
	if A.At(1, 2) != 36 {
		Te.Errorf("AddVec failed\n%v", A)
	}
	A.SubVec(A, Row)
	if A.At(1, 2) != 6 || A.At(0, 0) != 1 {
		Te.Errorf("SubVec failed\n%v", A)
	}
	d := Zeros(1)
	d.SubVec(A.VecView(0), A.VecView(0))
	if !d.IsZero() {
		Te.Errorf("a vector minus itself is not zero")
	}
}

func TestDet(Te *testing.T) {
	A, _ := NewMatrix([]float64{2, 0, 0, 0, 3, 0, 0, 0, 4})
	if math.Abs(A.Det()-24) > appzero {
		Te.Errorf("expected determinant 24, got %f", A.Det())
	}
	B, _ := NewMatrix([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	if math.Abs(B.Det()) > 1e-9 {
		Te.Errorf("expected singular matrix, got det %f", B.Det())
	}
}
