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
	"bytes"
	"encoding/binary"
	"errors"
)

// Magic is the identifier at the start of every SFF file ("Sfff").
const Magic = 0x66666653

const (
	documentHeaderSize = 20
	pageHeaderSize     = 18

	// The header length stored in a page header does not count the
	// PageHeaderID and PageHeaderLen fields.
	pageHeaderLenOffset = 2
)

// DocumentHeader is the header at the start of an SFF file.
type DocumentHeader struct {
	ID              uint32
	Version         uint8
	Reserved        uint8
	UserInformation uint16

	// PageCount is the number of pages in the document.  Some writers
	// leave this as 0.
	PageCount uint16

	OffsetFirstPageHeader uint16
	OffsetLastPageHeader  uint32
	OffsetDocumentEnd     uint32

	// Additional holds user-specific data between the document header and
	// the first page header, or nil if there is none.
	Additional []byte
}

// HasValidID reports whether the document starts with the SFF identifier.
func (h *DocumentHeader) HasValidID() bool {
	return h.ID == Magic
}

type binaryDocumentHeader struct {
	ID                    uint32
	Version               uint8
	Reserved              uint8
	UserInformation       uint16
	PageCount             uint16
	OffsetFirstPageHeader uint16
	OffsetLastPageHeader  uint32
	OffsetDocumentEnd     uint32
}

var errFirstPageOffset = errors.New("invalid offset of first page header")

// readDocumentHeader reads the document header and moves the cursor to the
// first page header.
func readDocumentHeader(c *cursor) (*DocumentHeader, error) {
	raw, err := c.ReadBytes(documentHeaderSize)
	if err != nil {
		return nil, err
	}
	enc := &binaryDocumentHeader{}
	err = binary.Read(bytes.NewReader(raw), binary.LittleEndian, enc)
	if err != nil {
		return nil, c.error(err)
	}

	h := &DocumentHeader{
		ID:                    enc.ID,
		Version:               enc.Version,
		Reserved:              enc.Reserved,
		UserInformation:       enc.UserInformation,
		PageCount:             enc.PageCount,
		OffsetFirstPageHeader: enc.OffsetFirstPageHeader,
		OffsetLastPageHeader:  enc.OffsetLastPageHeader,
		OffsetDocumentEnd:     enc.OffsetDocumentEnd,
	}

	first := int(enc.OffsetFirstPageHeader)
	if first < documentHeaderSize {
		return nil, &MalformedFileError{Pos: 10, Err: errFirstPageOffset}
	}
	if extra := first - documentHeaderSize; extra > 0 {
		additional, err := c.ReadBytes(extra)
		if err != nil {
			return nil, err
		}
		h.Additional = bytes.Clone(additional)
	}
	c.SeekPos(first)

	return h, nil
}

// PageHeader is the header at the start of every page of an SFF file.
type PageHeader struct {
	PageHeaderID uint8

	// PageHeaderLen is the header length as stored in the file.  This
	// excludes the PageHeaderID and PageHeaderLen fields, so the fixed
	// part of the header has PageHeaderLen 16.
	PageHeaderLen uint8

	ResolutionVertical   uint8
	ResolutionHorizontal uint8
	Coding               uint8
	Reserved             uint8

	// LineLength is the width of the page in pixels.
	LineLength uint16

	// PageLength is the number of scanlines, as declared by the writer.
	// This may be 0 or may disagree with the page data.
	PageLength uint16

	OffsetPreviousPage uint32
	OffsetNextPage     uint32

	// Additional holds user-specific data between the page header and the
	// page data, or nil if there is none.
	Additional []byte
}

// HorizontalDPI returns the horizontal resolution in dots per inch.
func (h *PageHeader) HorizontalDPI() (int, bool) {
	switch h.ResolutionHorizontal {
	case 0:
		return 203, true
	default:
		return 0, false
	}
}

// VerticalLPI returns the vertical resolution in lines per inch.
func (h *PageHeader) VerticalLPI() (int, bool) {
	switch h.ResolutionVertical {
	case 0:
		return 98, true
	case 1:
		return 196, true
	default:
		return 0, false
	}
}

type binaryPageHeader struct {
	PageHeaderID         uint8
	PageHeaderLen        uint8
	ResolutionVertical   uint8
	ResolutionHorizontal uint8
	Coding               uint8
	Reserved             uint8
	LineLength           uint16
	PageLength           uint16
	OffsetPreviousPage   uint32
	OffsetNextPage       uint32
}

var errPageHeaderLen = errors.New("invalid page header length")

// readPageHeader reads a page header and moves the cursor to the start of
// the page data.  If the cursor is at an end-of-document marker, nil is
// returned.
func readPageHeader(c *cursor) (*PageHeader, error) {
	start := c.Pos()
	if c.Remaining() >= 2 && c.data[start+1] == 0 {
		// A page header of length 0 marks the end of the document.
		c.SeekPos(start + 2)
		return nil, nil
	}

	raw, err := c.ReadBytes(pageHeaderSize)
	if err != nil {
		return nil, err
	}
	enc := &binaryPageHeader{}
	err = binary.Read(bytes.NewReader(raw), binary.LittleEndian, enc)
	if err != nil {
		return nil, c.error(err)
	}

	h := &PageHeader{
		PageHeaderID:         enc.PageHeaderID,
		PageHeaderLen:        enc.PageHeaderLen,
		ResolutionVertical:   enc.ResolutionVertical,
		ResolutionHorizontal: enc.ResolutionHorizontal,
		Coding:               enc.Coding,
		Reserved:             enc.Reserved,
		LineLength:           enc.LineLength,
		PageLength:           enc.PageLength,
		OffsetPreviousPage:   enc.OffsetPreviousPage,
		OffsetNextPage:       enc.OffsetNextPage,
	}

	total := int(enc.PageHeaderLen) + pageHeaderLenOffset
	if total < pageHeaderSize {
		return nil, &MalformedFileError{Pos: int64(start + 1), Err: errPageHeaderLen}
	}
	if extra := total - pageHeaderSize; extra > 0 {
		additional, err := c.ReadBytes(extra)
		if err != nil {
			return nil, err
		}
		h.Additional = bytes.Clone(additional)
	}
	c.SeekPos(start + total)

	return h, nil
}
