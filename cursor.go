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

import "encoding/binary"

// cursor reads from an in-memory SFF file.  The position only moves
// forward, except when an end-of-page marker is pushed back.
type cursor struct {
	data []byte
	pos  int
	eof  bool
}

func newCursor(data []byte) *cursor {
	c := &cursor{data: data}
	c.SeekPos(0)
	return c
}

// Pos returns the current reading position.
func (c *cursor) Pos() int {
	return c.pos
}

// SeekPos changes the reading position.  Positions at or beyond the end of
// the data set the end-of-file flag.
func (c *cursor) SeekPos(pos int) {
	pos = max(pos, 0)
	if pos >= len(c.data) {
		c.pos = len(c.data)
		c.eof = true
		return
	}
	c.pos = pos
	c.eof = false
}

// EOF reports whether the end of the data has been reached.
func (c *cursor) EOF() bool {
	return c.eof
}

// Remaining returns the number of unread bytes.
func (c *cursor) Remaining() int {
	return len(c.data) - c.pos
}

// ReadBytes reads n bytes, starting at the current position.  The returned
// slice points into the underlying data.
func (c *cursor) ReadBytes(n int) ([]byte, error) {
	if n < 0 || n > c.Remaining() {
		return nil, c.error(ErrTruncated)
	}
	res := c.data[c.pos : c.pos+n]
	c.SeekPos(c.pos + n)
	return res, nil
}

// ReadUInt8 reads a single byte.
func (c *cursor) ReadUInt8() (uint8, error) {
	buf, err := c.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ReadUInt16 reads a little-endian 16 bit value.
func (c *cursor) ReadUInt16() (uint16, error) {
	buf, err := c.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf), nil
}

func (c *cursor) error(err error) *MalformedFileError {
	return &MalformedFileError{Pos: int64(c.pos), Err: err}
}
