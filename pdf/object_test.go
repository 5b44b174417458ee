// seehuhn.de/go/prepress - composing print-ready PDF files
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
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

package pdf

import (
	"bytes"
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in  Object
		out string
	}{
		{nil, "null"},
		{Bool(true), "true"},
		{Integer(-12), "-12"},
		{Real(1), "1."},
		{Real(0.5), "0.5"},
		{Number(2), "2"},
		{Number(0.5), "0.5"},
		{Number(1.0 / 3), "0.3333"},
		{Number(-0.00001), "0"},
		{Name("Font"), "/Font"},
		{Name("A B"), "/A#20B"},
		{Name("a#b"), "/a#23b"},
		{String("a"), "(a)"},
		{String("a (test version)"), "(a (test version))"},
		{String("a (test version"), "(a \\(test version)"},
		{String(""), "()"},
		{String("\000"), "<00>"},
		{Array{Integer(1), nil, Integer(3)}, "[1 null 3]"},
		{Dict{"B": Integer(2), "A": Integer(1), "C": nil}, "<<\n/A 1\n/B 2\n>>"},
		{Reference(7), "7 0 R"},
		{&Rectangle{0, 0, 612, 792}, "[0 0 612 792]"},
	}
	for _, test := range cases {
		got := Format(test.in)
		if got != test.out {
			t.Errorf("Format(%v): expected %q but got %q", test.in, test.out, got)
		}
	}
}

func TestTextString(t *testing.T) {
	cases := []struct {
		in  string
		out []byte
	}{
		{"", []byte{}},
		{"hello", []byte("hello")},
		{"ä", []byte{0xFE, 0xFF, 0x00, 0xE4}},
		{"中", []byte{0xFE, 0xFF, 0x4E, 0x2D}},
	}
	for _, test := range cases {
		got := []byte(TextString(test.in))
		if !bytes.Equal(got, test.out) {
			t.Errorf("TextString(%q): expected %x, got %x", test.in, test.out, got)
		}
	}
}

func TestDate(t *testing.T) {
	PST := time.FixedZone("PST", -8*60*60)
	got := Date(time.Date(1998, 12, 23, 19, 52, 0, 0, PST))
	want := "D:19981223195200-08'00"
	if string(got) != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestStreamLength(t *testing.T) {
	stm := &Stream{
		Dict: Dict{"Length": Integer(999)},
		Data: []byte("0 0 m"),
	}
	got := Format(stm)
	want := "<<\n/Length 5\n>>\nstream\n0 0 m\nendstream"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestCheckPositive(t *testing.T) {
	if err := CheckPositive("test", "width", 1); err != nil {
		t.Error(err)
	}
	for _, x := range []float64{0, -1} {
		err := CheckPositive("test", "width", x)
		if _, ok := err.(*GeometryError); !ok {
			t.Errorf("CheckPositive(%g): expected GeometryError, got %v", x, err)
		}
	}
}

func TestStateErrorf(t *testing.T) {
	err := StateErrorf("Finalize", "%d pages", 0)
	stateErr, ok := err.(*StateError)
	if !ok {
		t.Fatalf("expected StateError, got %T", err)
	}
	if stateErr.Op != "Finalize" || stateErr.Msg != "0 pages" {
		t.Errorf("unexpected error fields %+v", stateErr)
	}
	if got := err.Error(); got != "Finalize: 0 pages" {
		t.Errorf("unexpected message %q", got)
	}
}
