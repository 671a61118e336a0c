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
	"bytes"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/xelalexv/casdeck/pkg/cassette"
	"github.com/xelalexv/casdeck/pkg/cassette/block"
)

// DanglingHeaderError reports a bin or basic header as the last block of a
// tape, with no data block following it. Emitting an empty file instead
// would hide the data loss.
type DanglingHeaderError struct {
	Index int
	Kind  cassette.Kind
}

//
func (e *DanglingHeaderError) Error() string {
	return fmt.Sprintf(
		"dangling %v header: block %d announces a file, but no data block follows",
		e.Kind, e.Index)
}

// Files walks the blocks of a tape, grouping them into files. It is a
// forward only, single pass cursor: Next advances to the next file, which
// File then returns up until the following call to Next. Once Next came
// back false, Err tells whether the walk reached the end of the tape or
// stopped at a malformed file. Files already produced stay valid either
// way. Another pass needs a fresh cursor from Tape.Files.
//
// Every block belongs to exactly one file: bin and basic files consume
// their header plus one data block, ascii files their header plus every
// following block up to and including the first one containing the EOF
// sentinel, and any other block comes out as a one-block custom file.
type Files struct {
	tape *Tape
	ix   int
	file *File
	err  error
}

//
func (f *Files) Next() bool {

	f.file = nil
	if f.err != nil {
		return false
	}

	blocks := f.tape.blocks
	if f.ix >= len(blocks) {
		return false
	}

	b := blocks[f.ix]

	switch {

	case b.IsBinHeader():
		data, err := f.dataBlock(b)
		if err != nil {
			f.err = err
			return false
		}
		f.file = &File{
			kind:  cassette.BIN,
			name:  b.Name(),
			begin: data.GetInt("begin"),
			end:   data.GetInt("end"),
			start: data.GetInt("start"),
			data:  data.Body(),
		}
		f.ix += 2

	case b.IsBasicHeader():
		data, err := f.dataBlock(b)
		if err != nil {
			f.err = err
			return false
		}
		f.file = &File{
			kind: cassette.BASIC,
			name: b.Name(),
			data: data.Body(),
		}
		f.ix += 2

	case b.IsAsciiHeader():
		f.file = &File{
			kind:   cassette.ASCII,
			name:   b.Name(),
			chunks: f.chunks(),
		}

	default:
		f.file = &File{kind: cassette.CUSTOM, data: b.Body()}
		f.ix++
	}

	log.Tracef("file %v %q, cursor now at block %d",
		f.file.Kind(), f.file.Name(), f.ix)

	return true
}

// File returns the file the last call to Next advanced to.
func (f *Files) File() *File {
	return f.file
}

//
func (f *Files) Err() error {
	return f.err
}

// dataBlock fetches the data block following the header at the cursor.
func (f *Files) dataBlock(header *block.Block) (*block.Block, error) {
	if f.ix+1 >= len(f.tape.blocks) {
		return nil, &DanglingHeaderError{Index: f.ix, Kind: header.Kind()}
	}
	return f.tape.blocks[f.ix+1], nil
}

// chunks consumes blocks as ascii chunks, up to and including the first one
// containing the EOF sentinel. A tape that ends before any sentinel shows
// up just closes the file. That leniency keeps tapes readable that were cut
// short during capture, at the price of masking the truncation.
func (f *Files) chunks() [][]byte {

	var chunks [][]byte

	for f.ix++; f.ix < len(f.tape.blocks); f.ix++ {
		body := f.tape.blocks[f.ix].Body()
		chunks = append(chunks, body)
		if bytes.IndexByte(body, EOF) != -1 {
			f.ix++
			break
		}
	}

	return chunks
}
