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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xelalexv/casdeck/pkg/cassette"
)

func TestNewBlock(t *testing.T) {

	body := []byte{0x01, 0x02, 0x03}
	b := NewBlock(body)

	assert.True(t, IsMarker(b.Data()[:MarkerLength]), "marker not present")
	assert.Equal(t, body, b.Body())

	// the block must not alias the caller's buffer
	body[0] = 0xff
	assert.Equal(t, byte(0x01), b.Body()[0], "block aliases input buffer")

	assert.Empty(t, NewBlock(nil).Body())
}

func TestSplit(t *testing.T) {

	mark := func(body ...byte) []byte {
		data := make([]byte, MarkerLength)
		CopyMarker(data)
		return append(data, body...)
	}

	tests := []struct {
		name   string
		data   []byte
		bodies [][]byte
	}{
		{
			name: "empty data",
			data: []byte{},
		},
		{
			name: "no marker",
			data: []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08},
		},
		{
			name:   "single block",
			data:   mark(0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08),
			bodies: [][]byte{{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}},
		},
		{
			name:   "empty body",
			data:   mark(),
			bodies: [][]byte{{}},
		},
		{
			name:   "short trailing body",
			data:   mark(0x01, 0x02, 0x03),
			bodies: [][]byte{{0x01, 0x02, 0x03}},
		},
		{
			name: "two blocks",
			data: append(mark(0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10, 0x11),
				mark(0x20, 0x21)...),
			bodies: [][]byte{
				{0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10, 0x11},
				{0x20, 0x21},
			},
		},
		{
			name: "leading junk is dropped",
			data: append([]byte{0xde, 0xad, 0xbe, 0xef, 0xde, 0xad, 0xbe, 0xef},
				mark(0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08)...),
			bodies: [][]byte{{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}},
		},
		{
			// markers are only detected on 8 byte strides
			name: "misaligned marker goes unnoticed",
			data: append([]byte{0xde, 0xad, 0xbe, 0xef},
				mark(0x01, 0x02, 0x03, 0x04)...),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := Split(tt.data)
			require.Equal(t, len(tt.bodies), len(blocks), "block count")
			for ix, b := range blocks {
				assert.Equalf(t, tt.bodies[ix], b.Body(), "body of block %d", ix)
			}
		})
	}
}

func TestClassification(t *testing.T) {

	name := []byte{0x46, 0x4f, 0x4f, 0x42, 0x41, 0x52} // FOOBAR

	tests := []struct {
		name     string
		body     []byte
		kind     cassette.Kind
		header   bool
		fileName string
	}{
		{
			name:     "bin header",
			body:     append(bytes.Repeat([]byte{0xd0}, 10), name...),
			kind:     cassette.BIN,
			header:   true,
			fileName: "FOOBAR",
		},
		{
			name:     "basic header",
			body:     append(bytes.Repeat([]byte{0xd3}, 10), name...),
			kind:     cassette.BASIC,
			header:   true,
			fileName: "FOOBAR",
		},
		{
			name:     "ascii header",
			body:     append(bytes.Repeat([]byte{0xea}, 10), name...),
			kind:     cassette.ASCII,
			header:   true,
			fileName: "FOOBAR",
		},
		{
			name: "data block",
			body: []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
				0x09, 0x0a, 0x46, 0x4f, 0x4f, 0x00, 0x00, 0x00},
			kind: cassette.UNKNOWN,
		},
		{
			name: "truncated pattern is no header",
			body: bytes.Repeat([]byte{0xd0}, 9),
			kind: cassette.UNKNOWN,
		},
		{
			name: "empty body is no header",
			body: []byte{},
			kind: cassette.UNKNOWN,
		},
		{
			name:     "header without name field",
			body:     bytes.Repeat([]byte{0xd0}, 10),
			kind:     cassette.BIN,
			header:   true,
			fileName: "",
		},
		{
			name: "pattern mix is no header",
			body: append(bytes.Repeat([]byte{0xd0}, 9), 0xd3),
			kind: cassette.UNKNOWN,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			b := NewBlock(tt.body)

			assert.Equal(t, tt.kind, b.Kind())
			assert.Equal(t, tt.header, b.IsHeader())
			assert.Equal(t, tt.fileName, b.Name())

			count := 0
			for _, is := range []bool{
				b.IsBinHeader(), b.IsBasicHeader(), b.IsAsciiHeader()} {
				if is {
					count++
				}
			}
			assert.LessOrEqual(t, count, 1, "classifications not exclusive")
		})
	}
}

func TestName(t *testing.T) {

	tests := []struct {
		name string
		raw  []byte
		want string
	}{
		{
			name: "full name",
			raw:  []byte{'F', 'O', 'O', 'B', 'A', 'R'},
			want: "FOOBAR",
		},
		{
			name: "space padded",
			raw:  []byte{'F', 'O', 'O', ' ', ' ', ' '},
			want: "FOO",
		},
		{
			name: "NUL padded",
			raw:  []byte{'F', 'O', 'O', 0x00, 0x00, 0x00},
			want: "FOO",
		},
		{
			name: "mixed padding",
			raw:  []byte{'F', 'O', 'O', ' ', 0x00, ' '},
			want: "FOO",
		},
		{
			name: "inner space kept",
			raw:  []byte{'A', ' ', 'B', ' ', ' ', ' '},
			want: "A B",
		},
		{
			name: "blank",
			raw:  []byte{' ', ' ', ' ', ' ', ' ', ' '},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBlock(append(bytes.Repeat([]byte{0xea}, 10), tt.raw...))
			assert.Equal(t, tt.want, b.Name())
		})
	}
}

func TestGetInt(t *testing.T) {

	b := NewBlock([]byte{0x00, 0x80, 0x08, 0x80, 0x34, 0x12, 0xff, 0xff})
	assert.Equal(t, 0x8000, b.GetInt("begin"))
	assert.Equal(t, 0x8008, b.GetInt("end"))
	assert.Equal(t, 0x1234, b.GetInt("start"))

	// truncated fields read as zero
	short := NewBlock([]byte{0x00, 0x80, 0x08})
	assert.Equal(t, 0x8000, short.GetInt("begin"))
	assert.Equal(t, 0, short.GetInt("end"))
	assert.Equal(t, 0, short.GetInt("start"))

	assert.Equal(t, 0, b.GetInt("no such field"))
}

func TestNewHeader(t *testing.T) {

	name, _ := DeriveName("FOO")

	for _, kind := range []cassette.Kind{
		cassette.BIN, cassette.BASIC, cassette.ASCII} {
		b, err := NewHeader(kind, name)
		require.NoError(t, err)
		assert.Equal(t, kind, b.Kind())
		assert.Equal(t, "FOO", b.Name())
		assert.Equal(t, PatternLength+NameLength, len(b.Body()))
	}

	_, err := NewHeader(cassette.CUSTOM, name)
	assert.Error(t, err)
	_, err = NewHeader(cassette.UNKNOWN, name)
	assert.Error(t, err)
}

func TestDeriveName(t *testing.T) {

	tests := []struct {
		name      string
		in        string
		want      [NameLength]byte
		truncated bool
	}{
		{
			name: "exact length",
			in:   "foobar",
			want: [NameLength]byte{'f', 'o', 'o', 'b', 'a', 'r'},
		},
		{
			name: "short name is space padded",
			in:   "foo",
			want: [NameLength]byte{'f', 'o', 'o', ' ', ' ', ' '},
		},
		{
			name:      "long name is truncated",
			in:        "foobarbaz",
			want:      [NameLength]byte{'f', 'o', 'o', 'b', 'a', 'r'},
			truncated: true,
		},
		{
			name: "empty name",
			in:   "",
			want: [NameLength]byte{' ', ' ', ' ', ' ', ' ', ' '},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, truncated := DeriveName(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.truncated, truncated)
		})
	}
}

func TestPad(t *testing.T) {

	b := NewBlock([]byte{0x01, 0x02, 0x03})
	b.Pad(8, 0x00)
	assert.Equal(t,
		[]byte{0x01, 0x02, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00}, b.Body())

	// aligned bodies stay untouched
	b.Pad(8, 0xff)
	assert.Equal(t, 8, len(b.Body()))

	b = NewBlock([]byte{0x41})
	b.Pad(4, 0x1a)
	assert.Equal(t, []byte{0x41, 0x1a, 0x1a, 0x1a}, b.Body())

	b = NewBlock(nil)
	b.Pad(8, 0x00)
	assert.Empty(t, b.Body(), "empty body is already aligned")
}
