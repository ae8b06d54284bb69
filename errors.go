/*
 * errors.go, part of hubbardv.
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
	"errors"
	"fmt"
	"strings"
)

// ParseError is returned when a structure or value table file is malformed.
type ParseError struct {
	Msg  string
	File string
	Line int //1-based, 0 if the error is not related to a given line.
	deco []string
}

func (err *ParseError) Error() string {
	if err.Line > 0 {
		return fmt.Sprintf("parse error in %s, line %d: %s", err.File, err.Line, err.Msg)
	}
	return fmt.Sprintf("parse error in %s: %s", err.File, err.Msg)
}

// Decorate adds dec to the decoration slice of the error and returns the slice.
func (err *ParseError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// InsufficientCandidatesError is returned when there are fewer ligand
// candidates than the number of neighbors requested.
type InsufficientCandidatesError struct {
	Found  int
	Wanted int
	deco   []string
}

func (err *InsufficientCandidatesError) Error() string {
	return fmt.Sprintf("%d ligand candidates available, %d needed", err.Found, err.Wanted)
}

// Decorate adds dec to the decoration slice of the error and returns the slice.
func (err *InsufficientCandidatesError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// ValueTableLengthError is returned when a value table does not
// supply exactly the number of values needed.
type ValueTableLengthError struct {
	File   string //can be empty if the table was not read from a file.
	Found  int
	Wanted int
	deco   []string
}

func (err *ValueTableLengthError) Error() string {
	if err.File == "" {
		return fmt.Sprintf("value table has %d values, %d needed", err.Found, err.Wanted)
	}
	return fmt.Sprintf("value table %s has %d usable values, %d needed", err.File, err.Found, err.Wanted)
}

// Decorate adds dec to the decoration slice of the error and returns the slice.
func (err *ValueTableLengthError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// FileAccessError is returned when an input file can't be read or an output
// file can't be written.
type FileAccessError struct {
	File string
	Op   string //"open", "read", "create", "write"...
	Err  error
	deco []string
}

func (err *FileAccessError) Error() string {
	return fmt.Sprintf("can't %s %s: %v", err.Op, err.File, err.Err)
}

func (err *FileAccessError) Unwrap() error { return err.Err }

// Decorate adds dec to the decoration slice of the error and returns the slice.
func (err *FileAccessError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Trail returns the chain of functions recorded by the decorations of the first
// error in err's chain implementing Error, innermost first, or an empty string.
func Trail(err error) string {
	var e Error
	if !errors.As(err, &e) {
		return ""
	}
	return strings.Join(e.Decorate(""), " <- ")
}

// carryTrail returns the decorations of err, if it implements Error,
// followed by callers.
func carryTrail(err error, callers ...string) []string {
	var deco []string
	var e Error
	if errors.As(err, &e) {
		deco = append(deco, e.Decorate("")...)
	}
	return append(deco, callers...)
}
