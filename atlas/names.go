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
	"strings"
)

// reserved lists the characters which cannot be used in file names on at
// least one common platform, together with their replacement.
var reserved = [...]struct {
	char string
	name string
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
}

var nameReplacer *strings.Replacer

func init() {
	var oldnew []string
	for _, r := range reserved {
		oldnew = append(oldnew, r.char, r.name)
	}
	nameReplacer = strings.NewReplacer(oldnew...)
}

// FileName returns the base name (without extension) of the image file
// which holds the glyph for the given letter.
//
// Characters which are reserved in file names are replaced by short ASCII
// mnemonics, for example "<" becomes "lt" and "?" becomes "qm".  All other
// characters are used unchanged.  Split and Combine both use this function,
// so that the images written by Split are found again by Combine.
func FileName(letter string) string {
	return nameReplacer.Replace(letter)
}
