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

package text

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/prepress/pdf"
)

func TestWrap(t *testing.T) {
	cases := []struct {
		in   string
		n    int
		want []string
	}{
		{"", 3, []string{""}},
		{"abc", 3, []string{"abc"}},
		{"abcdef", 3, []string{"abc", "def"}},
		{"abcdefg", 3, []string{"abc", "def", "g"}},
		{"ab\ncd", 5, []string{"ab", "cd"}},
		{"ab\n\ncd", 5, []string{"ab", "", "cd"}},
		{"ab\n", 5, []string{"ab", ""}},
		{"ab\r\ncd", 5, []string{"ab\r", "cd"}},
		{"äöüß", 2, []string{"äö", "üß"}},
		{"日本語のテキスト", 3, []string{"日本語", "のテキ", "スト"}},
	}
	for _, test := range cases {
		got, err := Wrap(test.in, test.n)
		if err != nil {
			t.Errorf("Wrap(%q, %d): %v", test.in, test.n, err)
			continue
		}
		if d := cmp.Diff(test.want, got); d != "" {
			t.Errorf("Wrap(%q, %d) mismatch (-want +got):\n%s", test.in, test.n, d)
		}
	}
}

func TestWrapRoundTrip(t *testing.T) {
	line := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 7)
	for n := 1; n <= 50; n++ {
		chunks, err := Wrap(line, n)
		if err != nil {
			t.Fatal(err)
		}
		if strings.Join(chunks, "") != line {
			t.Errorf("n=%d: chunks do not reproduce the line", n)
		}
		for i, c := range chunks {
			l := utf8.RuneCountInString(c)
			if l > n || l == 0 || l < n && i < len(chunks)-1 {
				t.Errorf("n=%d: chunk %d has length %d", n, i, l)
			}
		}
	}
}

func TestWrapInvalid(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := Wrap("abc", n)
		var geomErr *pdf.GeometryError
		if !errors.As(err, &geomErr) {
			t.Errorf("Wrap(_, %d): expected GeometryError, got %v", n, err)
		}
	}
}
