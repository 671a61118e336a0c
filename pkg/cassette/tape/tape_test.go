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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xelalexv/casdeck/pkg/cassette"
	"github.com/xelalexv/casdeck/pkg/cassette/block"
)

//
func collect(t *testing.T, tp *Tape) []*File {
	var res []*File
	files := tp.Files()
	for files.Next() {
		res = append(res, files.File())
	}
	require.NoError(t, files.Err())
	return res
}

func TestEmptyTape(t *testing.T) {

	tp := Load(nil)
	assert.Empty(t, tp.Blocks())
	assert.Empty(t, collect(t, tp))
	assert.Empty(t, tp.Bytes())

	tp = New()
	assert.Empty(t, tp.Blocks())
	assert.False(t, tp.IsModified())
}

func TestAppendBin(t *testing.T) {

	name, _ := block.DeriveName("foobar")
	body := []byte{
		0x00, 0x80, 0x08, 0x80, 0x00, 0x00, // begin, end, start
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0xa0}

	tp := New()
	tp.AppendBin(name, body)
	assert.True(t, tp.IsModified())

	files := collect(t, tp)
	require.Equal(t, 1, len(files))

	f := files[0]
	assert.Equal(t, cassette.BIN, f.Kind())
	assert.Equal(t, "foobar", f.Name())
	assert.Equal(t, "foobar.bin", f.FileName())
	assert.Equal(t, 0x8000, f.Begin())
	assert.Equal(t, 0x8008, f.End())
	assert.Equal(t, 0x0000, f.Start())
	assert.Equal(t, body, f.Data())
	assert.Equal(t, body[6:], f.Data()[6:])
}

func TestAppendBinPadsDataBlock(t *testing.T) {

	name, _ := block.DeriveName("pad")
	body := []byte{0x00, 0x80, 0x04, 0x80, 0x00, 0x00, 0xaa, 0xbb, 0xcc}

	tp := New()
	tp.AppendBin(name, body)

	require.Equal(t, 2, len(tp.Blocks()))
	data := tp.Blocks()[1].Body()
	assert.Equal(t, 16, len(data))
	assert.Equal(t, body, data[:len(body)])
	for _, b := range data[len(body):] {
		assert.Equal(t, byte(0x00), b)
	}
}

func TestAppendBasic(t *testing.T) {

	name, _ := block.DeriveName("prog")
	body := []byte{0xf0, 0xf1, 0xf2, 0xf3, 0xf4, 0xf5, 0xf6, 0xf7}

	tp := New()
	tp.AppendBasic(name, body)

	files := collect(t, tp)
	require.Equal(t, 1, len(files))

	f := files[0]
	assert.Equal(t, cassette.BASIC, f.Kind())
	assert.Equal(t, "prog", f.Name())
	assert.Equal(t, "prog.bas", f.FileName())
	assert.Equal(t, body, f.Data())
	assert.Equal(t, 0, f.Begin())
}

func TestAppendAscii(t *testing.T) {

	tests := []struct {
		name   string
		length int
		chunks int
	}{
		{name: "empty text", length: 0, chunks: 1},
		{name: "short text", length: 10, chunks: 1},
		{name: "almost full chunk", length: 255, chunks: 1},
		{name: "exactly one chunk", length: 256, chunks: 2},
		{name: "one chunk plus one byte", length: 257, chunks: 2},
		{name: "several chunks", length: 1000, chunks: 4},
		{name: "several exact chunks", length: 1024, chunks: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			text := bytes.Repeat([]byte{0x41}, tt.length)
			name, _ := block.DeriveName("text")

			tp := New()
			tp.AppendAscii(name, text)

			files := collect(t, tp)
			require.Equal(t, 1, len(files))

			f := files[0]
			assert.Equal(t, cassette.ASCII, f.Kind())
			assert.Equal(t, "text.asc", f.FileName())
			require.Equal(t, tt.chunks, len(f.Chunks()))

			for ix, chunk := range f.Chunks() {
				require.Equalf(t, ChunkLength, len(chunk),
					"chunk %d not full size", ix)
			}

			// chunk content is the text, then nothing but EOF fill
			payload := f.Payload()
			assert.Equal(t, text, payload[:tt.length])
			for ix := tt.length; ix < len(payload); ix++ {
				require.Equalf(t, byte(EOF), payload[ix],
					"padding byte at %d", ix)
			}
		})
	}
}

func TestAppendCustom(t *testing.T) {

	tp := New()
	tp.AppendCustom([]byte{0x01, 0x02, 0x03})

	require.Equal(t, 1, len(tp.Blocks()))
	assert.Equal(t, 8, len(tp.Blocks()[0].Body()), "body not padded")

	files := collect(t, tp)
	require.Equal(t, 1, len(files))

	f := files[0]
	assert.Equal(t, cassette.CUSTOM, f.Kind())
	assert.Equal(t, "", f.Name())
	assert.Equal(t, "", f.FileName())
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00},
		f.Data())
}

func TestAppend(t *testing.T) {

	name, _ := block.DeriveName("any")
	tp := New()

	require.NoError(t, tp.Append(cassette.BIN, name, make([]byte, 8)))
	require.NoError(t, tp.Append(cassette.BASIC, name, make([]byte, 8)))
	require.NoError(t, tp.Append(cassette.ASCII, name, []byte("hello")))
	require.NoError(t, tp.Append(cassette.CUSTOM, name, make([]byte, 8)))
	assert.Error(t, tp.Append(cassette.UNKNOWN, name, nil))

	files := collect(t, tp)
	require.Equal(t, 4, len(files))
	assert.Equal(t, cassette.BIN, files[0].Kind())
	assert.Equal(t, cassette.BASIC, files[1].Kind())
	assert.Equal(t, cassette.ASCII, files[2].Kind())
	assert.Equal(t, cassette.CUSTOM, files[3].Kind())
}

// all blocks of a tape built through appends are 8 byte aligned, and so is
// the serialized tape
func TestAlignment(t *testing.T) {

	name, _ := block.DeriveName("align")

	tp := New()
	tp.AppendBin(name, make([]byte, 13))
	tp.AppendBasic(name, make([]byte, 3))
	tp.AppendAscii(name, bytes.Repeat([]byte{0x42}, 300))
	tp.AppendCustom(make([]byte, 9))

	for ix, b := range tp.Blocks() {
		assert.Equalf(t, 0, len(b.Body())%8, "block %d not aligned", ix)
	}

	assert.Equal(t, 0, len(tp.Bytes())%8)
}

func TestRoundTrip(t *testing.T) {

	nameBin, _ := block.DeriveName("run")
	nameTxt, _ := block.DeriveName("readme")

	tp := New()
	tp.AppendBin(nameBin, []byte{
		0x00, 0x90, 0x10, 0x90, 0x00, 0x90, 0xde, 0xad, 0xbe, 0xef,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00})
	tp.AppendAscii(nameTxt, []byte("10 PRINT \"HELLO\"\r\n20 GOTO 10\r\n"))
	tp.AppendCustom([]byte{0xca, 0xfe, 0xba, 0xbe, 0x00, 0x00, 0x00, 0x00})

	reread := Load(tp.Bytes())
	require.Equal(t, len(tp.Blocks()), len(reread.Blocks()))
	assert.Equal(t, tp.Bytes(), reread.Bytes())

	want := collect(t, tp)
	got := collect(t, reread)
	require.Equal(t, len(want), len(got))

	for ix := range want {
		assert.Equal(t, want[ix].Kind(), got[ix].Kind())
		assert.Equal(t, want[ix].Name(), got[ix].Name())
		assert.Equal(t, want[ix].Payload(), got[ix].Payload())
	}
}

func TestWriteTo(t *testing.T) {

	name, _ := block.DeriveName("wr")
	tp := New()
	tp.AppendBasic(name, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08})

	var buf bytes.Buffer
	n, err := tp.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, tp.Bytes(), buf.Bytes())

	reread, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, 2, len(reread.Blocks()))
}

func TestList(t *testing.T) {

	nameBin, _ := block.DeriveName("FILE1")
	nameTxt, _ := block.DeriveName("FILE2")

	tp := New()
	tp.AppendBin(nameBin, []byte{
		0x00, 0x80, 0x08, 0x80, 0x00, 0x00, 0x01, 0x02, 0x03, 0x04,
		0x05, 0x06, 0x07, 0x08, 0x09, 0xa0})
	tp.AppendAscii(nameTxt, []byte("HELLO"))
	tp.AppendCustom(make([]byte, 16))

	var buf bytes.Buffer
	require.NoError(t, tp.List(&buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Equal(t, 3, len(lines))

	assert.Contains(t, lines[0], "bin")
	assert.Contains(t, lines[0], "FILE1")
	assert.Contains(t, lines[0], "[0x8000,0x8008]:0x0")
	assert.Contains(t, lines[1], "ascii")
	assert.Contains(t, lines[1], "FILE2")
	assert.Contains(t, lines[2], "custom")
}
