/*
 * files.go, part of hubbardv.
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
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// readCloser closes the decompressor and then the file under it.
type readCloser struct {
	io.Reader
	close func() error
}

func (r readCloser) Close() error {
	return r.close()
}

// OpenInput opens the file filename for reading. Files ending in .zst or .zstd
// are decompressed with z-standard, and those ending in .gz, with gzip.
// Failures are returned as *FileAccessError.
func OpenInput(filename string) (io.ReadCloser, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, &FileAccessError{File: filename, Op: "open", Err: err, deco: []string{"OpenInput"}}
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".zst", ".zstd":
		z, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, &FileAccessError{File: filename, Op: "decompress", Err: err, deco: []string{"zstd.NewReader", "OpenInput"}}
		}
		return readCloser{z, func() error { z.Close(); return f.Close() }}, nil
	case ".gz":
		z, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, &FileAccessError{File: filename, Op: "decompress", Err: err, deco: []string{"gzip.NewReader", "OpenInput"}}
		}
		return readCloser{z, func() error { z.Close(); return f.Close() }}, nil
	default:
		return f, nil
	}
}
