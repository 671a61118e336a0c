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
	"io"
	"io/ioutil"

	log "github.com/sirupsen/logrus"

	"github.com/xelalexv/casdeck/pkg/cassette"
	"github.com/xelalexv/casdeck/pkg/cassette/block"
)

const (
	// block bodies are zero padded to a multiple of this on append
	alignment = 8
	// ascii file payload is stored in chunks of this size
	ChunkLength = 256
	// end of text sentinel, carried in the last chunk of an ascii file
	EOF = 0x1a
)

// Tape holds the ordered block sequence of a cassette tape. Blocks are only
// ever added through the typed append methods, never reordered or removed.
// A tape is meant for single owner sequential use; when shared, e.g. in a
// deck slot, the owner has to serialize access.
type Tape struct {
	name     string
	blocks   []*block.Block
	modified bool
}

//
func New() *Tape {
	return &Tape{}
}

// Load creates a tape from raw tape data. Splitting never fails; data
// holding no marker at all yields an empty tape.
func Load(data []byte) *Tape {
	t := &Tape{blocks: block.Split(data)}
	log.Debugf("loaded tape with %d blocks from %d bytes", len(t.blocks),
		len(data))
	return t
}

// Read creates a tape from raw tape data consumed from in, which is read to
// its end before parsing starts.
func Read(in io.Reader) (*Tape, error) {
	data, err := ioutil.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("cannot read tape data: %v", err)
	}
	return Load(data), nil
}

//
func (t *Tape) Name() string {
	return t.name
}

//
func (t *Tape) SetName(n string) {
	t.name = n
}

//
func (t *Tape) IsModified() bool {
	return t.modified
}

//
func (t *Tape) SetModified(m bool) {
	t.modified = m
}

// Blocks returns the blocks of this tape, in tape order.
func (t *Tape) Blocks() []*block.Block {
	return t.blocks
}

// Files starts a fresh pass over the files on this tape. Each call returns
// a new cursor positioned ahead of the first file.
func (t *Tape) Files() *Files {
	return &Files{tape: t}
}

// Append adds a file of the given kind to this tape. The name is ignored
// for CUSTOM files.
func (t *Tape) Append(
	kind cassette.Kind, name [block.NameLength]byte, data []byte) error {

	switch kind {

	case cassette.BIN:
		t.AppendBin(name, data)

	case cassette.BASIC:
		t.AppendBasic(name, data)

	case cassette.ASCII:
		t.AppendAscii(name, data)

	case cassette.CUSTOM:
		t.AppendCustom(data)

	default:
		return fmt.Errorf("cannot append file of kind '%v'", kind)
	}

	return nil
}

// AppendBin adds a binary file: a header block followed by one data block.
// data is the complete data block body, i.e. the three little endian load
// addresses followed by the code bytes.
func (t *Tape) AppendBin(name [block.NameLength]byte, data []byte) {
	t.appendWithHeader(cassette.BIN, name, data)
}

// AppendBasic adds a tokenized BASIC file: a header block followed by one
// data block holding the program bytes verbatim.
func (t *Tape) AppendBasic(name [block.NameLength]byte, data []byte) {
	t.appendWithHeader(cassette.BASIC, name, data)
}

// AppendAscii adds a text file: a header block followed by data chunks of
// 256 bytes each. The final chunk is right padded with EOF bytes; a text
// length that is an exact multiple of the chunk size gets an extra all-EOF
// chunk. Either way every ascii file ends with at least one sentinel, and
// all its chunks are exactly 256 bytes long.
func (t *Tape) AppendAscii(name [block.NameLength]byte, data []byte) {

	h, _ := block.NewHeader(cassette.ASCII, name)
	t.appendBlock(h)

	for from := 0; from < len(data); from += ChunkLength {
		to := from + ChunkLength
		if to > len(data) {
			to = len(data)
		}
		chunk := block.NewBlock(data[from:to])
		chunk.Pad(ChunkLength, EOF)
		t.push(chunk)
	}

	if len(data)%ChunkLength == 0 {
		t.push(block.NewBlock(bytes.Repeat([]byte{EOF}, ChunkLength)))
	}
}

// AppendCustom adds a single block without header, holding the given bytes.
func (t *Tape) AppendCustom(data []byte) {
	t.appendBlock(block.NewBlock(data))
}

//
func (t *Tape) appendWithHeader(
	kind cassette.Kind, name [block.NameLength]byte, data []byte) {
	h, _ := block.NewHeader(kind, name)
	t.appendBlock(h)
	t.appendBlock(block.NewBlock(data))
}

//
func (t *Tape) appendBlock(b *block.Block) {
	b.Pad(alignment, 0x00)
	t.push(b)
}

//
func (t *Tape) push(b *block.Block) {
	t.blocks = append(t.blocks, b)
	t.modified = true
}

// WriteTo serializes the tape by concatenating the raw bytes of all blocks,
// markers included, in tape order. Implements io.WriterTo.
func (t *Tape) WriteTo(w io.Writer) (int64, error) {

	var total int64

	for ix, b := range t.blocks {
		n, err := w.Write(b.Data())
		total += int64(n)
		if err != nil {
			return total, fmt.Errorf("cannot write block %d: %v", ix, err)
		}
	}

	return total, nil
}

// Bytes returns the serialized tape in a single buffer.
func (t *Tape) Bytes() []byte {
	var buf bytes.Buffer
	t.WriteTo(&buf)
	return buf.Bytes()
}

// List writes a table of the files on this tape to w, one line per file.
// Listing stops at the first malformed file, with the lines up to that
// point already written.
func (t *Tape) List(w io.Writer) error {

	files := t.Files()

	for files.Next() {

		f := files.File()

		switch f.Kind() {

		case cassette.BIN:
			fmt.Fprintf(w, "bin    | %-6s | %5d bytes | [0x%x,0x%x]:0x%x\n",
				f.Name(), f.Size(), f.Begin(), f.End(), f.Start())

		case cassette.BASIC:
			fmt.Fprintf(w, "basic  | %-6s | %5d bytes |\n", f.Name(), f.Size())

		case cassette.ASCII:
			fmt.Fprintf(w, "ascii  | %-6s | %5d bytes |\n", f.Name(), f.Size())

		default:
			fmt.Fprintf(w, "custom |        | %5d bytes |\n", f.Size())
		}
	}

	return files.Err()
}

//
func (t *Tape) Emit(w io.Writer) {
	for ix, b := range t.blocks {
		io.WriteString(w, fmt.Sprintf("\nblock %d", ix))
		b.Emit(w)
	}
}
