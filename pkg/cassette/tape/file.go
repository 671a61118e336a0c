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

package tape

import (
	"strings"

	"github.com/xelalexv/casdeck/pkg/cassette"
)

// File is a logical file reconstructed from one or more consecutive tape
// blocks. Its payload slices alias the tape's block storage, so a file must
// not be used beyond the life time of the tape it came from.
type File struct {
	kind   cassette.Kind
	name   string
	begin  int
	end    int
	start  int
	data   []byte
	chunks [][]byte
}

//
func (f *File) Kind() cassette.Kind {
	return f.kind
}

// Name returns the name from the file's header block, empty for custom
// files.
func (f *File) Name() string {
	return f.name
}

// FileName returns the name under which this file gets extracted,
// `{name}.{extension}`. A blank name turns into `noname`. Custom files have
// no file name, callers number those instead.
func (f *File) FileName() string {

	ext := f.kind.Extension()
	if ext == "" {
		return ""
	}

	name := f.name
	if strings.TrimSpace(name) == "" {
		name = "noname"
	}

	return name + "." + ext
}

// Begin returns the load begin address of a bin file, zero for other kinds.
func (f *File) Begin() int {
	return f.begin
}

// End returns the load end address of a bin file, zero for other kinds.
func (f *File) End() int {
	return f.end
}

// Start returns the execution start address of a bin file, zero for other
// kinds.
func (f *File) Start() int {
	return f.start
}

// Data returns the file payload of a bin, basic, or custom file: the body
// of its data block, for bin files including the six leading address bytes.
// Ascii payload is chunked, see Chunks.
func (f *File) Data() []byte {
	return f.data
}

// Chunks returns the payload chunks of an ascii file, nil for other kinds.
func (f *File) Chunks() [][]byte {
	return f.chunks
}

// Payload returns the file content as a single buffer. For ascii files this
// concatenates the chunks into a fresh buffer, for all other kinds it is the
// same as Data.
func (f *File) Payload() []byte {

	if f.kind != cassette.ASCII {
		return f.data
	}

	var buf []byte
	for _, c := range f.chunks {
		buf = append(buf, c...)
	}
	return buf
}

// Size is the payload length in bytes.
func (f *File) Size() int {

	if f.kind == cassette.ASCII {
		size := 0
		for _, c := range f.chunks {
			size += len(c)
		}
		return size
	}

	return len(f.data)
}
