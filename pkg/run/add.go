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

package run

import (
	"bufio"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/xelalexv/casdeck/pkg/cassette"
	"github.com/xelalexv/casdeck/pkg/cassette/block"
	"github.com/xelalexv/casdeck/pkg/cassette/format"
	"github.com/xelalexv/casdeck/pkg/cassette/tape"
)

//
func NewAdd() *Add {

	a := &Add{}
	a.Runner = *NewRunner(
		"add -i|--input {tape file} [-t|--type {kind}] {file} [{file} ...]",
		"append files to a tape",
		`
Use the add command to append files to a tape, creating the tape file when it
does not exist yet. The kind of an added file is picked by its extension, bin
for .bin, basic for .bas, ascii for .asc and .txt, custom for anything else.
The type setting forces one kind for all added files.`,
		"", "", a.Run)

	a.AddSetting(&a.File, "input", "i", "", nil, "tape file", true)
	a.AddSetting(&a.Type, "type", "t", "", nil,
		"kind to use for all added files (bin|basic|ascii|custom)", false)

	return a
}

//
type Add struct {
	//
	Runner
	//
	File string
	Type string
}

//
func (a *Add) Run() error {

	a.ParseSettings()

	if len(a.Args) == 0 {
		return fmt.Errorf("no files to add")
	}

	t, err := a.open()
	if err != nil {
		return err
	}

	for _, file := range a.Args {
		if err := a.add(t, file); err != nil {
			return err
		}
	}

	form, err := format.NewFormat(getExtension(a.File))
	if err != nil {
		return err
	}

	f, err := os.Create(a.File)
	if err != nil {
		return err
	}
	defer f.Close()

	out := bufio.NewWriter(f)
	if err := form.Write(t, out); err != nil {
		return err
	}

	return out.Flush()
}

// open reads the tape to append to, or starts a blank one when the tape file
// does not exist yet.
func (a *Add) open() (*tape.Tape, error) {

	f, err := os.Open(a.File)
	if os.IsNotExist(err) {
		return tape.New(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	form, err := format.NewFormat(getExtension(a.File))
	if err != nil {
		return nil, err
	}

	return form.Read(bufio.NewReader(f), false)
}

//
func (a *Add) add(t *tape.Tape, file string) error {

	data, err := ioutil.ReadFile(file)
	if err != nil {
		return err
	}

	var kind cassette.Kind
	if a.Type != "" {
		if kind = cassette.GetKind(a.Type); kind == cassette.UNKNOWN {
			return fmt.Errorf("unknown file kind: %s", a.Type)
		}
	} else {
		kind = kindFromExtension(getExtension(file))
	}

	if kind == cassette.BIN && len(data) > 0 && data[0] == 0xfe {
		data = data[1:] // drop the BSAVE marker byte
	}

	base := filepath.Base(file)
	name, truncated := block.DeriveName(
		strings.TrimSuffix(base, filepath.Ext(base)))
	if truncated {
		log.Warnf("file name '%s' truncated to %d characters",
			base, block.NameLength)
	}

	if err := t.Append(kind, name, data); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"file": file, "kind": kind, "size": len(data)}).Info("added")

	return nil
}

//
func kindFromExtension(ext string) cassette.Kind {

	switch strings.ToLower(ext) {

	case "bin":
		return cassette.BIN

	case "bas":
		return cassette.BASIC

	case "asc", "txt":
		return cassette.ASCII

	default:
		return cassette.CUSTOM
	}
}
