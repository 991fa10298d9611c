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
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/sff/internal/sfftest"
)

func TestReadPageHeader(t *testing.T) {
	file := &sfftest.Doc{
		Pages: []sfftest.Page{{
			ResolutionVertical: 1,
			LineLength:         2048,
			PageLength:         1100,
			Additional:         []byte{9, 8},
		}},
	}
	data := file.Bytes()
	c := newCursor(data)
	c.SeekPos(20)

	h, err := readPageHeader(c)
	if err != nil {
		t.Fatal(err)
	}
	want := &PageHeader{
		PageHeaderID:       254,
		PageHeaderLen:      18,
		ResolutionVertical: 1,
		LineLength:         2048,
		PageLength:         1100,
		Additional:         []byte{9, 8},
	}
	if diff := cmp.Diff(want, h); diff != "" {
		t.Errorf("wrong header (-want +got):\n%s", diff)
	}
	if c.Pos() != 20+18+2 {
		t.Errorf("wrong position %d", c.Pos())
	}

	dpi, ok := h.HorizontalDPI()
	if !ok || dpi != 203 {
		t.Errorf("wrong horizontal resolution %d", dpi)
	}
	lpi, ok := h.VerticalLPI()
	if !ok || lpi != 196 {
		t.Errorf("wrong vertical resolution %d", lpi)
	}

	h.ResolutionVertical = 2
	if _, ok := h.VerticalLPI(); ok {
		t.Errorf("unknown resolution accepted")
	}
}

func TestInvalidHeaderLength(t *testing.T) {
	data := (&sfftest.Doc{Pages: []sfftest.Page{{LineLength: 1728}}}).Bytes()
	data[21] = 10

	_, err := Read(data, nil)
	var formatErr *MalformedFileError
	if !errors.As(err, &formatErr) || formatErr.Pos != 21 {
		t.Errorf("expected error at byte 21, got %v", err)
	}
}

func TestInvalidFirstPageOffset(t *testing.T) {
	data := (&sfftest.Doc{}).Bytes()
	data[10] = 12

	_, err := Read(data, nil)
	if !errors.Is(err, errFirstPageOffset) {
		t.Errorf("expected %v, got %v", errFirstPageOffset, err)
	}
}

func TestCursor(t *testing.T) {
	c := newCursor([]byte{1, 2, 3})
	if c.EOF() || c.Remaining() != 3 {
		t.Fatalf("wrong initial state")
	}
	v, err := c.ReadUInt16()
	if err != nil || v != 0x0201 {
		t.Errorf("got %04x, %v", v, err)
	}
	if _, err := c.ReadBytes(2); !errors.Is(err, ErrTruncated) {
		t.Errorf("expected truncation, got %v", err)
	}
	b, err := c.ReadUInt8()
	if err != nil || b != 3 || !c.EOF() {
		t.Errorf("got %d, %v, eof=%t", b, err, c.EOF())
	}
	c.SeekPos(-5)
	if c.Pos() != 0 || c.EOF() {
		t.Errorf("wrong position %d after seek", c.Pos())
	}
}
