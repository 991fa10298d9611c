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

// recordType describes how a page record is interpreted.
type recordType uint8

const (
	// recordData is a scanline of MH coded data.
	recordData recordType = iota

	// recordSkip stands for a number of blank scanlines.
	recordSkip

	// recordEndOfPage marks the end of the page data.
	recordEndOfPage
)

const (
	maxShortRecord = 216
	maxSkipRecord  = 253
	endOfPage      = 254
	extRecord      = 255
)

// readRecordHeader reads the length code of the next page record.  For
// recordData the returned count is the number of data bytes which follow,
// for recordSkip it is the number of blank scanlines.
//
//	0         escape: a 16 bit little-endian length follows
//	1..216    a scanline with 1..216 bytes of MH data follows
//	217..253  n-216 blank scanlines
//	254       end of page, start of the next page header
//	255, 0    illegal line coding, read as one blank scanline
//	255, n    n bytes of user information (unsupported)
func readRecordHeader(c *cursor) (recordType, int, error) {
	start := c.Pos()
	code, err := c.ReadUInt8()
	if err != nil {
		return 0, 0, err
	}

	switch {
	case code == 0:
		n, err := c.ReadUInt16()
		if err != nil {
			return 0, 0, err
		}
		if n == 0 {
			return 0, 0, &MalformedFileError{Pos: int64(start), Err: ErrEmptyRecord}
		}
		return recordData, int(n), nil
	case code <= maxShortRecord:
		return recordData, int(code), nil
	case code <= maxSkipRecord:
		return recordSkip, int(code) - maxShortRecord, nil
	case code == endOfPage:
		return recordEndOfPage, 0, nil
	default: // extRecord
		next, err := c.ReadUInt8()
		if err != nil {
			return 0, 0, err
		}
		if next != 0 {
			return 0, 0, &MalformedFileError{Pos: int64(start), Err: ErrUnsupportedRecord}
		}
		return recordSkip, 1, nil
	}
}
