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

package format

import (
	"fmt"
	"io"

	"github.com/xelalexv/casdeck/pkg/cassette/tape"
)

// Reader interface for reading in a tape
type Reader interface {
	// when setting strict, a tape with malformed files is rejected
	Read(in io.Reader, strict bool) (*tape.Tape, error)
}

// Writer interface for writing out a tape
type Writer interface {
	Write(t *tape.Tape, out io.Writer) error
}

// ReaderWriter interface for reading/writing a tape
type ReaderWriter interface {
	Reader
	Writer
}

//
func NewFormat(typ string) (ReaderWriter, error) {

	switch typ {

	case "cas":
		return NewCAS(), nil

	default:
		return nil, fmt.Errorf("unsupported tape format: %s", typ)
	}
}
