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
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xelalexv/casdeck/pkg/cassette"
	"github.com/xelalexv/casdeck/pkg/cassette/block"
	"github.com/xelalexv/casdeck/pkg/cassette/tape"
)

func TestNewFormat(t *testing.T) {

	rw, err := NewFormat("cas")
	require.NoError(t, err)
	assert.NotNil(t, rw)

	_, err = NewFormat("wav")
	assert.Error(t, err)
	_, err = NewFormat("")
	assert.Error(t, err)
}

func TestReadWrite(t *testing.T) {

	name, _ := block.DeriveName("demo")
	src := tape.New()
	src.AppendBasic(name, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08})
	src.AppendAscii(name, []byte("10 PRINT\r\n"))

	rw, err := NewFormat("cas")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, rw.Write(src, &buf))
	assert.Equal(t, src.Bytes(), buf.Bytes())

	reread, err := rw.Read(&buf, true)
	require.NoError(t, err)
	assert.Equal(t, len(src.Blocks()), len(reread.Blocks()))
	assert.False(t, reread.IsModified())
}

func TestReadStrictness(t *testing.T) {

	// a lone bin header, no data block following
	name, _ := block.DeriveName("LOST")
	hd, err := block.NewHeader(cassette.BIN, name)
	require.NoError(t, err)

	data := hd.Data()

	_, err = NewCAS().Read(bytes.NewReader(data), true)
	require.Error(t, err)

	var dangling *tape.DanglingHeaderError
	assert.True(t, errors.As(err, &dangling))

	// lenient reading keeps the blocks around
	tp, err := NewCAS().Read(bytes.NewReader(data), false)
	require.NoError(t, err)
	assert.Equal(t, 1, len(tp.Blocks()))
}
