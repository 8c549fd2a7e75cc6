// seehuhn.de/go/fntsplit - split and recombine bitmap font atlases
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

package atlas

import (
	"testing"
)

func TestFileName(t *testing.T) {
	cases := []struct {
		letter, name string
	}{
		{"<", "lt"},
		{">", "gt"},
		{":", "colon"},
		{`"`, "dq"},
		{"/", "fs"},
		{`\`, "bs"},
		{"|", "pipe"},
		{"?", "qm"},
		{"*", "star"},
		{"A", "A"},
		{"a", "a"},
		{"0", "0"},
		{" ", " "},
		{".", "."},
		{"é", "é"},
		{"☃", "☃"},
		{"lt", "lt"},
	}
	for _, c := range cases {
		if got := FileName(c.letter); got != c.name {
			t.Errorf("FileName(%q) = %q, expected %q", c.letter, got, c.name)
		}
	}
}

func TestFileNameIdempotent(t *testing.T) {
	for _, r := range reserved {
		once := FileName(r.char)
		twice := FileName(once)
		if once != twice {
			t.Errorf("FileName(FileName(%q)) = %q != %q", r.char, twice, once)
		}
	}
}

func TestFileNameDistinct(t *testing.T) {
	seen := make(map[string]string)
	for _, r := range reserved {
		name := FileName(r.char)
		if other, ok := seen[name]; ok {
			t.Errorf("%q and %q both map to %q", r.char, other, name)
		}
		seen[name] = r.char
	}
	if len(seen) != 9 {
		t.Errorf("expected 9 reserved characters, got %d", len(seen))
	}
}
