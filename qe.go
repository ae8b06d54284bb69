/*
 * qe.go, part of hubbardv.
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
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/rmera/hubbardv/pbc"
	v3 "github.com/rmera/hubbardv/v3"
)

// Bohr2A is the number of Angstroms in one bohr.
const Bohr2A = 0.529177210903

const (
	cellCard      = "CELL_PARAMETERS"
	positionsCard = "ATOMIC_POSITIONS"
)

// the units accepted for each card, and the factor to Angstrom for the cell.
var cellUnits = map[string]float64{
	"angstrom": 1.0,
	"bohr":     Bohr2A,
}

var natRe = regexp.MustCompile(`(?i)(?:^|[\s,])nat\s*=\s*(\d+)`)

// QERead reads the cell and the atoms from the Quantum Espresso file filename.
// The cell must be given in angstrom or bohr, and the positions in crystal
// coordinates. The cartesian coordinates of the atoms are obtained with the cell.
func QERead(filename string) (*Structure, error) {
	r, err := OpenInput(filename)
	if err != nil {
		return nil, ErrDecorate(err, "QERead")
	}
	defer r.Close()
	S, err := QEReadFrom(r, filename)
	if err != nil {
		return nil, ErrDecorate(err, "QERead")
	}
	return S, nil
}

// QEReadFrom is like QERead, but reads from r. name is only used to
// identify the input in errors.
func QEReadFrom(r io.Reader, name string) (*Structure, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, &FileAccessError{File: name, Op: "read", Err: err, deco: []string{"QEReadFrom"}}
	}
	cstart, factor, err := findCard(lines, cellCard, cellUnits, name)
	if err != nil {
		return nil, ErrDecorate(err, "QEReadFrom")
	}
	cell, err := readCell(lines, cstart+1, factor, name)
	if err != nil {
		return nil, ErrDecorate(err, "QEReadFrom")
	}
	pstart, _, err := findCard(lines, positionsCard, map[string]float64{"crystal": 1}, name)
	if err != nil {
		return nil, ErrDecorate(err, "QEReadFrom")
	}
	nat, err := readNat(lines, name)
	if err != nil {
		return nil, ErrDecorate(err, "QEReadFrom")
	}
	atoms, frac, err := readPositions(lines, pstart+1, nat, name)
	if err != nil {
		return nil, ErrDecorate(err, "QEReadFrom")
	}
	S := &Structure{
		Name:   name,
		Atoms:  atoms,
		Coords: cell.Frac2Cart(frac),
		Cell:   cell,
	}
	return S, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	return lines, s.Err()
}

// findCard returns the index of the first line opening the card with a unit
// present in units, and the value for that unit. The unit can be written
// bare, in parentheses or in braces, as Quantum Espresso allows.
func findCard(lines []string, card string, units map[string]float64, name string) (int, float64, error) {
	unsupported := ""
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 || fields[0] != card {
			continue
		}
		if len(fields) == 2 {
			unit := strings.ToLower(strings.Trim(fields[1], "(){}"))
			if v, ok := units[unit]; ok {
				return i, v, nil
			}
		}
		if unsupported == "" {
			unsupported = strings.TrimSpace(line)
		}
	}
	if unsupported != "" {
		return -1, 0, &ParseError{Msg: fmt.Sprintf("unsupported %s card: %q", card, unsupported), File: name, deco: []string{"findCard"}}
	}
	return -1, 0, &ParseError{Msg: fmt.Sprintf("no %s card found", card), File: name, deco: []string{"findCard"}}
}

// readCell reads the 3 cell vectors starting at the line start, scaling them by factor.
func readCell(lines []string, start int, factor float64, name string) (*pbc.Cell, error) {
	data := make([]float64, 0, 9)
	for i := start; i < start+3; i++ {
		if i >= len(lines) {
			return nil, &ParseError{Msg: "file ends before the 3 cell vectors", File: name, Line: i + 1, deco: []string{"readCell"}}
		}
		fields := strings.Fields(lines[i])
		if len(fields) != 3 {
			return nil, &ParseError{Msg: fmt.Sprintf("a cell vector needs 3 numbers, got %d fields", len(fields)), File: name, Line: i + 1, deco: []string{"readCell"}}
		}
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, &ParseError{Msg: fmt.Sprintf("invalid cell vector component %q", f), File: name, Line: i + 1, deco: []string{"strconv.ParseFloat", "readCell"}}
			}
			data = append(data, v*factor)
		}
	}
	cell, err := pbc.NewCell(data)
	if err != nil {
		return nil, &ParseError{Msg: err.Error(), File: name, Line: start + 1, deco: carryTrail(err, "readCell")}
	}
	return cell, nil
}

// readNat returns the number of atoms declared in the &SYSTEM namelist, or
// -1 if there is no such declaration.
func readNat(lines []string, name string) (int, error) {
	insystem := false
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(strings.ToLower(trimmed), "&system") {
			insystem = true
			continue
		}
		if !insystem {
			continue
		}
		if trimmed == "/" {
			break
		}
		m := natRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		nat, err := strconv.Atoi(m[1])
		if err != nil || nat <= 0 {
			return -1, &ParseError{Msg: fmt.Sprintf("invalid nat %q", m[1]), File: name, Line: i + 1, deco: []string{"readNat"}}
		}
		return nat, nil
	}
	return -1, nil
}

// readPositions reads the atoms in crystal coordinates starting from the line start.
// If nat is positive, exactly nat atoms are read, and a shorter block is an error.
// Otherwise, the block ends with the first line with fewer than 4 fields
// (symbol and 3 coordinates) or with the end of the file.
func readPositions(lines []string, start, nat int, name string) ([]*Atom, *v3.Matrix, error) {
	var atoms []*Atom
	var data []float64
	for i := start; nat < 0 || len(atoms) < nat; i++ {
		var fields []string
		if i < len(lines) {
			fields = strings.Fields(lines[i])
		}
		if len(fields) < 4 {
			if nat > 0 {
				return nil, nil, &ParseError{Msg: fmt.Sprintf("%s block ends after %d atoms, but nat = %d", positionsCard, len(atoms), nat), File: name, Line: i + 1, deco: []string{"readPositions"}}
			}
			break
		}
		for _, f := range fields[1:4] {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, nil, &ParseError{Msg: fmt.Sprintf("invalid coordinate %q for atom %d", f, len(atoms)+1), File: name, Line: i + 1, deco: []string{"strconv.ParseFloat", "readPositions"}}
			}
			data = append(data, v)
		}
		atoms = append(atoms, &Atom{Symbol: fields[0], ID: len(atoms) + 1})
	}
	if len(atoms) == 0 {
		return nil, nil, &ParseError{Msg: fmt.Sprintf("empty %s block", positionsCard), File: name, Line: start, deco: []string{"readPositions"}}
	}
	frac, err := v3.NewMatrix(data)
	if err != nil {
		return nil, nil, &ParseError{Msg: err.Error(), File: name, deco: carryTrail(err, "readPositions")}
	}
	return atoms, frac, nil
}
