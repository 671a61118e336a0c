/*
   CasDeck - MSX cassette tape workbench
   Copyright (c) 2022, Alexander Vollschwitz

   This file is part of CasDeck.

   CasDeck is free software: you can redistribute it and/or modify
   it under the terms of the GNU General Public License as published by
   the Free Software Foundation, either version 3 of the License, or
   (at your option) any later version.

   CasDeck is distributed in the hope that it will be useful,
   but WITHOUT ANY WARRANTY; without even the implied warranty of
   MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
   GNU General Public License for more details.

   You should have received a copy of the GNU General Public License
   along with CasDeck. If not, see <http://www.gnu.org/licenses/>.
*/

package cassette

import (
	"strings"
)

// Kind denotes the type of a file stored on tape. BIN files hold binary
// code/data loaded with BLOAD, BASIC files a tokenized BASIC program loaded
// with CLOAD, ASCII files plain text loaded with LOAD. CUSTOM covers blocks
// written by programs that drive the cassette port directly.
type Kind int

const (
	BIN Kind = iota
	BASIC
	ASCII
	CUSTOM
	UNKNOWN
)

//
func GetKind(typ string) Kind {

	switch strings.ToLower(strings.TrimSpace(typ)) {

	case "bin":
		return BIN

	case "basic":
		return BASIC

	case "ascii":
		return ASCII

	case "custom":
		return CUSTOM

	default:
		return UNKNOWN
	}
}

//
func (k Kind) String() string {

	switch k {

	case BIN:
		return "bin"

	case BASIC:
		return "basic"

	case ASCII:
		return "ascii"

	case CUSTOM:
		return "custom"

	default:
		return "<unknown>"
	}
}

// Extension returns the file name extension used when a file of this kind is
// extracted from a tape. CUSTOM files carry no extension, they are numbered
// by the caller instead.
func (k Kind) Extension() string {

	switch k {

	case BIN:
		return "bin"

	case BASIC:
		return "bas"

	case ASCII:
		return "asc"

	default:
		return ""
	}
}
