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

package mh_test

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/sff/internal/sfftest"
	"seehuhn.de/go/sff/mh"
)

func TestDecodeLineSimple(t *testing.T) {
	// white 10 (00111), black 5 (0011), stored LSB first
	record := []byte{0x9C, 0x01}

	runs, err := mh.NewDecoder(1728).DecodeLine(record)
	if err != nil {
		t.Fatal(err)
	}
	want := []mh.Run{{X: 10, Length: 5}}
	if diff := cmp.Diff(want, runs); diff != "" {
		t.Errorf("wrong runs (-want +got):\n%s", diff)
	}
}

func TestDecodeBlankLine(t *testing.T) {
	for _, width := range []int{1728, 2048, 2432} {
		blank, ok := mh.BlankLine(width)
		if !ok {
			t.Fatalf("no blank line for width %d", width)
		}
		runs, err := mh.NewDecoder(width).DecodeLine(blank)
		if err != nil {
			t.Errorf("width %d: %v", width, err)
		}
		if len(runs) != 0 {
			t.Errorf("width %d: unexpected runs %v", width, runs)
		}
	}

	if _, ok := mh.BlankLine(1000); ok {
		t.Error("unexpected blank line for width 1000")
	}
}

func TestBlankLineEncoding(t *testing.T) {
	for _, width := range []int{1728, 2048, 2432} {
		blank, _ := mh.BlankLine(width)
		encoded := sfftest.EncodeLine(nil, width)
		if diff := cmp.Diff(blank, encoded); diff != "" {
			t.Errorf("width %d (-want +got):\n%s", width, diff)
		}
	}
}

func TestExtendedCodes(t *testing.T) {
	record := sfftest.EncodeLine([]mh.Run{{X: 2000, Length: 10}}, 2048)

	dec := &mh.Decoder{Columns: 2048}
	runs, err := dec.DecodeLine(record)
	var decodeErr *mh.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if !decodeErr.White || decodeErr.Pos != 0 {
		t.Errorf("wrong error details: %v", decodeErr)
	}
	if runs == nil || len(runs) != 0 {
		t.Errorf("expected empty list of runs, got %#v", runs)
	}

	runs, err = mh.NewDecoder(2048).DecodeLine(record)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]mh.Run{{X: 2000, Length: 10}}, runs); diff != "" {
		t.Errorf("wrong runs (-want +got):\n%s", diff)
	}
}

func TestDecodeErrorRecovery(t *testing.T) {
	dec := mh.NewDecoder(1728)

	// white 2, followed by an EOL code which is not valid inside a line
	bad := sfftest.EncodeWords("0111", sfftest.EOL, "0111")
	runs, err := dec.DecodeLine(bad)
	var decodeErr *mh.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if decodeErr.Pos != 4 || decodeErr.White {
		t.Errorf("wrong error details: %v", decodeErr)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %v", runs)
	}

	// the next line must start in white again
	runs, err = dec.DecodeLine([]byte{0x9C, 0x01})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]mh.Run{{X: 10, Length: 5}}, runs); diff != "" {
		t.Errorf("wrong runs (-want +got):\n%s", diff)
	}
}

func TestMakeupCodes(t *testing.T) {
	want := []mh.Run{
		{X: 0, Length: 64},
		{X: 100, Length: 69},
		{X: 1000, Length: 700},
	}
	record := sfftest.EncodeLine(want, 1728)
	runs, err := mh.NewDecoder(1728).DecodeLine(record)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, runs); diff != "" {
		t.Errorf("wrong runs (-want +got):\n%s", diff)
	}
}

func TestRunHandling(t *testing.T) {
	testCases := []struct {
		name  string
		words []string
		want  []mh.Run
	}{
		{
			name:  "zero length black run",
			words: []string{"1100", "0000110111", "1000"}, // W5 B0 W3
			want:  []mh.Run{},
		},
		{
			name:  "adjacent black runs",
			words: []string{"0111", "10", "00110101", "011"}, // W2 B3 W0 B4
			want:  []mh.Run{{X: 2, Length: 7}},
		},
		{
			name:  "black makeup",
			words: []string{"00110101", "0000001111", "0011"}, // W0 B64 B5
			want:  []mh.Run{{X: 0, Length: 69}},
		},
		{
			name:  "empty",
			words: nil,
			want:  []mh.Run{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			runs, err := mh.NewDecoder(1728).DecodeLine(sfftest.EncodeWords(tc.words...))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, runs); diff != "" {
				t.Errorf("wrong runs (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClipping(t *testing.T) {
	record := sfftest.EncodeLine([]mh.Run{{X: 15, Length: 10}, {X: 40, Length: 2}}, 50)
	dec := &mh.Decoder{Columns: 20}
	runs, err := dec.DecodeLine(record)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]mh.Run{{X: 15, Length: 5}}, runs); diff != "" {
		t.Errorf("wrong runs (-want +got):\n%s", diff)
	}
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, width := range []int{1728, 2048, 2432} {
		dec := mh.NewDecoder(width)
		for range 200 {
			line := randomLine(rng, width)
			record := sfftest.EncodeLine(line, width)
			runs, err := dec.DecodeLine(record)
			if err != nil {
				t.Fatalf("width %d: %v", width, err)
			}
			if diff := cmp.Diff(line, runs); diff != "" {
				t.Fatalf("width %d (-want +got):\n%s", width, diff)
			}
		}
	}
}

func randomLine(rng *rand.Rand, width int) []mh.Run {
	line := []mh.Run{}
	maxRun := 2 + rng.IntN(width/2)
	x := rng.IntN(maxRun)
	for x < width {
		length := 1 + rng.IntN(maxRun)
		length = min(length, width-x)
		line = append(line, mh.Run{X: x, Length: length})
		x += length + 1 + rng.IntN(maxRun)
	}
	return line
}

func FuzzDecodeLine(f *testing.F) {
	f.Add([]byte{0x9C, 0x01})
	f.Add([]byte{0xB2, 0x59, 0x01})
	f.Add(sfftest.EncodeLine([]mh.Run{{X: 5, Length: 100}}, 1728))
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, record []byte) {
		dec := mh.NewDecoder(1728)
		runs, err := dec.DecodeLine(record)
		if err != nil {
			if len(runs) != 0 {
				t.Fatalf("runs returned together with error: %v", runs)
			}
			return
		}
		end := 0
		for _, run := range runs {
			if run.Length <= 0 || run.X < end || run.End() > 1728 {
				t.Fatalf("invalid run list %v", runs)
			}
			end = run.End() + 1
		}
	})
}
