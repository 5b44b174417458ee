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


package buildinfo

import (
	"runtime/debug"
	"testing"
)

func TestFormat(t *testing.T) {
	const path = "seehuhn.de/go/prepress"
	cases := []struct {
		version  string
		settings []debug.BuildSetting
		want     string
	}{
		{"v0.3.0", nil, "prepress (seehuhn.de/go/prepress v0.3.0)"},
		{"(devel)", nil, "prepress"},
		{"", nil, "prepress"},
		{
			"(devel)",
			[]debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789abcdef"}},
			"prepress (seehuhn.de/go/prepress 01234567)",
		},
		{
			"(devel)",
			[]debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc"},
				{Key: "vcs.modified", Value: "true"},
			},
			"prepress (seehuhn.de/go/prepress abc+dirty)",
		},
	}
	for _, test := range cases {
		info := &debug.BuildInfo{
			Main:     debug.Module{Path: path, Version: test.version},
			Settings: test.settings,
		}
		got := format("prepress", info)
		if got != test.want {
			t.Errorf("%q: expected %q, got %q", test.version, test.want, got)
		}
	}
}
