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
	"bytes"
	"io"
)

// standard block marker
const MarkerLength = 8

var marker = []byte{0x1f, 0xa6, 0xde, 0xba, 0xcc, 0x13, 0x7d, 0x74}

//
func CopyMarker(dest []byte) int {
	return copy(dest, marker)
}

//
func WriteMarker(wr io.Writer) (int, error) {
	return wr.Write(marker)
}

//
func IsMarker(data []byte) bool {
	return bytes.Equal(data, marker)
}

// Split cuts raw tape data into the blocks it contains. The scan moves in
// strides of MarkerLength, so only markers sitting at offsets that are a
// multiple of 8 are found. On any tape written with 8-byte block alignment
// this always holds; a marker at an odd offset goes unnoticed and ends up
// inside the preceding block's body. Bytes ahead of the first marker are
// dropped. Split never fails; data without any marker yields no blocks.
func Split(data []byte) []*Block {

	var starts []int
	for ix := 0; ix+MarkerLength <= len(data); ix += MarkerLength {
		if IsMarker(data[ix : ix+MarkerLength]) {
			starts = append(starts, ix)
		}
	}

	var blocks []*Block
	for ix, start := range starts {
		end := len(data)
		if ix+1 < len(starts) {
			end = starts[ix+1]
		}
		blocks = append(blocks, NewBlock(data[start+MarkerLength:end]))
	}

	return blocks
}
