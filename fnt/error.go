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

package fnt

import (
	"strconv"
)

// GrammarError indicates that the input does not conform to the FNT grammar.
type GrammarError struct {
	// Line is the 1-based line number where the problem was detected,
	// or 0 if the input ended prematurely.
	Line int

	// Section is the keyword of the line being parsed ("info", "common",
	// "page", "chars" or "char").
	Section string

	// Field is the name of the offending key=value pair.  This is empty
	// if the problem concerns the line as a whole.
	Field string

	Reason string
}

func (err *GrammarError) Error() string {
	msg := "fnt: "
	if err.Line > 0 {
		msg += "line " + strconv.Itoa(err.Line) + ": "
	}
	if err.Section != "" {
		msg += err.Section + ": "
	}
	if err.Field != "" {
		msg += err.Field + ": "
	}
	return msg + err.Reason
}
