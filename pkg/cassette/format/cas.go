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
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/xelalexv/casdeck/pkg/cassette/tape"
)

// CAS is a reader/writer for the plain CAS tape image format, the raw block
// stream as it sits on disk.
type CAS struct{}

//
func NewCAS() *CAS {
	return &CAS{}
}

// Read parses tape data from in, which is consumed to its end. Splitting
// into blocks always succeeds. With strict set, the files on the tape are
// walked as well, and the first malformed file fails the read. Without
// strict, a malformed file only logs a warning; the tape is returned with
// all its blocks, so it can still be inspected or dumped.
func (c *CAS) Read(in io.Reader, strict bool) (*tape.Tape, error) {

	t, err := tape.Read(in)
	if err != nil {
		return nil, err
	}

	count := 0
	files := t.Files()
	for files.Next() {
		count++
	}

	if err := files.Err(); err != nil {
		if strict {
			return nil, err
		}
		log.Warnf("tape holds malformed files: %v", err)
	}

	log.WithFields(log.Fields{
		"blocks": len(t.Blocks()),
		"files":  count,
	}).Debug("tape read")

	t.SetModified(false)
	return t, nil
}

//
func (c *CAS) Write(t *tape.Tape, out io.Writer) error {
	_, err := t.WriteTo(out)
	return err
}
