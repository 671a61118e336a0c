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
	"fmt"
	"strings"

	"github.com/xelalexv/casdeck/pkg/cassette"
)

// A header block body starts with a 10 byte kind pattern, followed by the
// 6 byte file name.
const (
	PatternLength = 10
	NameLength    = 6
)

var binPattern = []byte{
	0xd0, 0xd0, 0xd0, 0xd0, 0xd0, 0xd0, 0xd0, 0xd0, 0xd0, 0xd0}

var basicPattern = []byte{
	0xd3, 0xd3, 0xd3, 0xd3, 0xd3, 0xd3, 0xd3, 0xd3, 0xd3, 0xd3}

var asciiPattern = []byte{
	0xea, 0xea, 0xea, 0xea, 0xea, 0xea, 0xea, 0xea, 0xea, 0xea}

// NewHeader creates a header block announcing a file of the given kind and
// name. Only BIN, BASIC, and ASCII files have header blocks.
func NewHeader(kind cassette.Kind, name [NameLength]byte) (*Block, error) {

	var pattern []byte

	switch kind {

	case cassette.BIN:
		pattern = binPattern

	case cassette.BASIC:
		pattern = basicPattern

	case cassette.ASCII:
		pattern = asciiPattern

	default:
		return nil, fmt.Errorf("no header block for kind '%v'", kind)
	}

	body := make([]byte, 0, PatternLength+NameLength)
	body = append(body, pattern...)
	body = append(body, name[:]...)

	return NewBlock(body), nil
}

// Classification is a pure function of the first 10 body bytes. Blocks with
// shorter bodies are never headers.

//
func (b *Block) IsBinHeader() bool {
	return bytes.Equal(b.GetSlice("pattern"), binPattern)
}

//
func (b *Block) IsBasicHeader() bool {
	return bytes.Equal(b.GetSlice("pattern"), basicPattern)
}

//
func (b *Block) IsAsciiHeader() bool {
	return bytes.Equal(b.GetSlice("pattern"), asciiPattern)
}

//
func (b *Block) IsHeader() bool {
	return b.IsBinHeader() || b.IsBasicHeader() || b.IsAsciiHeader()
}

//
func (b *Block) Kind() cassette.Kind {

	switch {

	case b.IsBinHeader():
		return cassette.BIN

	case b.IsBasicHeader():
		return cassette.BASIC

	case b.IsAsciiHeader():
		return cassette.ASCII

	default:
		return cassette.UNKNOWN
	}
}

// Name returns the file name carried by a header block, with trailing space
// and NUL padding removed. Non-header blocks have no name.
func (b *Block) Name() string {
	if !b.IsHeader() {
		return ""
	}
	return strings.TrimRight(b.GetString("name"), "\x00 ")
}

// DeriveName converts an arbitrary string into the fixed 6 byte name stored
// in a header block, right padded with spaces. Longer strings are cut off at
// the byte level; the second return value reports whether that happened.
func DeriveName(s string) ([NameLength]byte, bool) {
	name := [NameLength]byte{' ', ' ', ' ', ' ', ' ', ' '}
	n := copy(name[:], s)
	return name, n < len(s)
}
