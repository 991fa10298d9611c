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

package mh

// BlankLine returns the canonical encoding of an all-white scanline of the
// given width, as written by SFF producers: one white makeup code for the
// full width, a white terminating code for a run of length 0, and zero
// fill bits.  The widths 1728, 2048 and 2432 are supported.
//
// The returned slice must not be modified.
func BlankLine(columns int) ([]byte, bool) {
	switch columns {
	case 1728:
		return blank1728, true
	case 2048:
		return blank2048, true
	case 2432:
		return blank2432, true
	default:
		return nil, false
	}
}

var (
	blank1728 = []byte{0xB2, 0x59, 0x01}
	blank2048 = []byte{0x80, 0xCC, 0x0A}
	blank2432 = []byte{0x80, 0xCB, 0x0A}
)
