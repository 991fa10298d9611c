// seehuhn.de/go/sff - a library for reading SFF fax files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"

	"seehuhn.de/go/sff"
)

var xzMagic = []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}

// readInput returns the contents of the named file, decompressing xz
// compressed files.
func readInput(fname string) ([]byte, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	if !bytes.HasPrefix(data, xzMagic) && !strings.HasSuffix(fname, ".xz") {
		return data, nil
	}

	r, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	data, err = io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return data, nil
}

// loadDocument reads and decodes an SFF file.
func loadDocument(fname string, workers int, logger *slog.Logger) (*sff.Document, error) {
	data, err := readInput(fname)
	if err != nil {
		return nil, err
	}

	opt := &sff.ReaderOptions{
		Workers: workers,
		Logger:  logger.With("file", fname),
	}
	doc, err := sff.Read(data, opt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	if !doc.Header.HasValidID() {
		logger.Warn("unexpected file identifier", "file", fname, "id", fmt.Sprintf("%08x", doc.Header.ID))
	}
	return doc, nil
}

// baseName returns the file name without directory and without the .xz
// and .sff extensions.
func baseName(fname string) string {
	base := filepath.Base(fname)
	base = strings.TrimSuffix(base, ".xz")
	ext := filepath.Ext(base)
	if strings.EqualFold(ext, ".sff") {
		base = base[:len(base)-len(ext)]
	}
	return base
}
