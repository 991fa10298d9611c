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

package sff

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrTruncated indicates that a header or a record extends beyond the
	// end of the file.
	ErrTruncated = errors.New("unexpected end of file")

	// ErrUnsupportedLineLength indicates a page with a line length other
	// than 1728, 2048 or 2432 pixels.
	ErrUnsupportedLineLength = errors.New("unsupported line length")

	// ErrUnsupportedRecord indicates a record of type 255 followed by user
	// information.  This is reserved for future extensions.
	ErrUnsupportedRecord = errors.New("unsupported page record")

	// ErrEmptyRecord indicates an escaped record length of 0.
	ErrEmptyRecord = errors.New("empty page record")
)

// MalformedFileError indicates that the SFF file could not be parsed.
type MalformedFileError struct {
	Pos int64
	Err error
}

func (err *MalformedFileError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	tail := ""
	if err.Pos > 0 {
		tail = " (at byte " + strconv.FormatInt(err.Pos, 10) + ")"
	}
	return "not a valid SFF file" + middle + tail
}

func (err *MalformedFileError) Unwrap() error {
	return err.Err
}

// LineError reports a scanline which could not be decoded.  The line is
// treated as blank and decoding continues with the next line.
type LineError struct {
	Page int // 0-based page index
	Line int // 0-based scanline index
	Err  error
}

func (err *LineError) Error() string {
	return fmt.Sprintf("page %d, line %d: %v", err.Page+1, err.Line, err.Err)
}

func (err *LineError) Unwrap() error {
	return err.Err
}

// ConsistencyWarning reports a page whose page header declares a different
// number of scanlines than the page data contains.  The number of
// scanlines found in the page data is used.
type ConsistencyWarning struct {
	Page     int // 0-based page index
	Declared int
	Computed int
}

func (err *ConsistencyWarning) Error() string {
	return fmt.Sprintf("page %d: header page length %d, determined page length %d",
		err.Page+1, err.Declared, err.Computed)
}
