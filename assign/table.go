/*
 * table.go, part of hubbardv.
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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	hubbard "github.com/rmera/hubbardv"
	"github.com/rmera/hubbardv/neighbors"
)

// Table is the ordered list of V values for a class of metal atoms.
// The ith value goes to the ith closest ligand.
type Table []float64

// ReadTable reads a value table from filename. The value is the last field of
// each line, and only the first neighbors.Coordination non-blank lines are used.
// If fewer values are found, a *hubbard.ValueTableLengthError is returned.
func ReadTable(filename string) (Table, error) {
	r, err := hubbard.OpenInput(filename)
	if err != nil {
		return nil, hubbard.ErrDecorate(err, "ReadTable")
	}
	defer r.Close()
	t, err := ReadTableFrom(r, filename)
	if err != nil {
		return nil, hubbard.ErrDecorate(err, "ReadTable")
	}
	return t, nil
}

// ReadTableFrom is like ReadTable, but reads from r. name identifies
// the table in errors.
func ReadTableFrom(r io.Reader, name string) (Table, error) {
	t := make(Table, 0, neighbors.Coordination)
	s := bufio.NewScanner(r)
	line := 0
	for len(t) < neighbors.Coordination && s.Scan() {
		line++
		fields := strings.Fields(s.Text())
		if len(fields) == 0 {
			continue
		}
		last := fields[len(fields)-1]
		v, err := strconv.ParseFloat(last, 64)
		if err != nil {
			return nil, &hubbard.ParseError{Msg: fmt.Sprintf("invalid V value %q", last), File: name, Line: line}
		}
		t = append(t, v)
	}
	if err := s.Err(); err != nil {
		return nil, &hubbard.FileAccessError{File: name, Op: "read", Err: err}
	}
	if len(t) < neighbors.Coordination {
		return nil, &hubbard.ValueTableLengthError{File: name, Found: len(t), Wanted: neighbors.Coordination}
	}
	return t, nil
}
