package neighbors

import (
	"errors"
	"fmt"
	"math"
	"testing"

	hubbard "github.com/rmera/hubbardv"
	"github.com/rmera/hubbardv/pbc"
	v3 "github.com/rmera/hubbardv/v3"
)

func cubic(Te *testing.T, a float64) *pbc.Cell {
	C, err := pbc.NewCell([]float64{a, 0, 0, 0, a, 0, 0, 0, a})
	if err != nil {
		Te.Fatal(err)
	}
	return C
}

// ligands returns a structure with one O atom per vector in coords, with the given IDs.
func ligands(Te *testing.T, coords []float64, ids []int) *hubbard.Structure {
	m, err := v3.NewMatrix(coords)
	if err != nil {
		Te.Fatal(err)
	}
	S := &hubbard.Structure{Coords: m}
	for _, id := range ids {
		S.Atoms = append(S.Atoms, &hubbard.Atom{Symbol: "O", ID: id})
	}
	return S
}

func TestNearestSample(Te *testing.T) {
	S, err := hubbard.QERead("../test/conf.qe")
	if err != nil {
		Te.Fatal(err)
	}
	O, err := S.Subset(S.Select("O"))
	if err != nil {
		Te.Fatal(err)
	}
	list, err := Nearest(S.Coord(S.Select("Fe2")[0]), O, S.Cell, Coordination)
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println(list)
	wantIDs := []int{5, 2, 3, 4, 9, 6, 7, 8}
	for i, v := range list {
		if v.ID != wantIDs[i] {
			Te.Errorf("rank %d: expected ligand %d, got %d", i, wantIDs[i], v.ID)
		}
		if want := 0.5 * float64(i+1); math.Abs(v.Distance-want) > 1e-9 {
			Te.Errorf("rank %d: expected distance %f, got %f", i, want, v.Distance)
		}
	}
}

func TestNearestCountAndOrder(Te *testing.T) {
	C := cubic(Te, 7)
	data := []float64{}
	ids := []int{}
	for i := 0; i < 12; i++ {
		f := float64(i)
		data = append(data, 0.57*f, 1.3*f, 0.21*f*f)
		ids = append(ids, 100+i)
	}
	ref, _ := v3.NewMatrix([]float64{3, 3, 3})
	list, err := Nearest(ref, ligands(Te, data, ids), C, Coordination)
	if err != nil {
		Te.Fatal(err)
	}
	if len(list) != Coordination {
		Te.Fatalf("expected %d neighbors, got %d", Coordination, len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i].Distance < list[i-1].Distance {
			Te.Errorf("list not sorted at %d: %v", i, list)
		}
	}
}

func TestNearestTies(Te *testing.T) {
	C := cubic(Te, 10)
	//all the candidates are 1 A away from the reference, so the order must be the input one.
	cands := []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
		9, 0, 0,
		0, 9, 0,
		0, 0, 9,
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
	ids := []int{9, 3, 7, 1, 8, 2, 6, 4, 5}
	ref := v3.Zeros(1)
	list, err := Nearest(ref, ligands(Te, cands, ids), C, Coordination)
	if err != nil {
		Te.Fatal(err)
	}
	for i, v := range list {
		if v.ID != ids[i] {
			Te.Errorf("tie order not preserved: expected %v, got %v", ids[:Coordination], list)
			break
		}
	}
}

func TestNearestInsufficient(Te *testing.T) {
	C := cubic(Te, 10)
	cands := ligands(Te, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, []int{2, 3, 4})
	_, err := Nearest(v3.Zeros(1), cands, C, Coordination)
	var ierr *hubbard.InsufficientCandidatesError
	if !errors.As(err, &ierr) {
		Te.Fatalf("expected an InsufficientCandidatesError, got %v", err)
	}
	if ierr.Found != 3 || ierr.Wanted != Coordination {
		Te.Errorf("wrong error fields: %+v", ierr)
	}
	_, err = Nearest(v3.Zeros(1), &hubbard.Structure{}, C, Coordination)
	if !errors.As(err, &ierr) || ierr.Found != 0 {
		Te.Errorf("expected an InsufficientCandidatesError with no candidates, got %v", err)
	}
}
