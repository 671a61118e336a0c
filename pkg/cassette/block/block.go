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

package block

import (
	"encoding/hex"
	"fmt"
	"io"
)

// Field locations within the raw block data, marker included. Headers carry
// the kind pattern and the file name, data blocks of a bin file carry the
// three load addresses. Which keys apply to a given block follows from its
// classification, the index itself is shared.
var blockIndex = map[string][2]int{
	"pattern": {MarkerLength, PatternLength},
	"name":    {MarkerLength + PatternLength, NameLength},
	"begin":   {MarkerLength, 2},
	"end":     {MarkerLength + 2, 2},
	"start":   {MarkerLength + 4, 2},
}

// NewBlock creates a block from the given body bytes, prepending the marker.
// The body is copied, so the block does not alias the caller's buffer.
func NewBlock(body []byte) *Block {
	data := make([]byte, MarkerLength+len(body))
	CopyMarker(data)
	copy(data[MarkerLength:], body)
	return &Block{data: data}
}

//
type Block struct {
	data []byte
}

// Data returns the raw block bytes, marker included.
func (b *Block) Data() []byte {
	return b.data
}

// Body returns the block bytes after the marker.
func (b *Block) Body() []byte {
	return b.data[MarkerLength:]
}

//
func (b *Block) GetSlice(key string) []byte {
	if ix, ok := blockIndex[key]; ok {
		start := ix[0]
		end := start + ix[1]
		if 0 <= start && end <= len(b.data) {
			return b.data[start:end]
		}
	}
	return []byte{}
}

// GetInt reads a field as little endian unsigned 16 bit integer. Fields that
// are absent or truncated read as zero.
func (b *Block) GetInt(key string) int {
	bytes := b.GetSlice(key)
	if len(bytes) != 2 {
		return 0
	}
	return int(bytes[0]) | (int(bytes[1]) << 8)
}

//
func (b *Block) GetString(key string) string {
	return string(b.GetSlice(key))
}

// Pad appends pad bytes until the body length is a multiple of align.
func (b *Block) Pad(align int, pad byte) {
	for (len(b.data)-MarkerLength)%align != 0 {
		b.data = append(b.data, pad)
	}
}

//
func (b *Block) Emit(w io.Writer) {

	if b.IsHeader() {
		io.WriteString(w, fmt.Sprintf(
			"\nHEADER[%s]: %+q\n", b.Kind(), b.Name()))
	} else {
		io.WriteString(w, fmt.Sprintf("\nDATA: %d bytes\n", len(b.Body())))
	}

	d := hex.Dumper(w)
	defer d.Close()
	d.Write(b.data)
}
