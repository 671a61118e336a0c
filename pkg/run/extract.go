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

	log "github.com/sirupsen/logrus"

	"github.com/xelalexv/casdeck/pkg/cassette"
	"github.com/xelalexv/casdeck/pkg/cassette/format"
	"github.com/xelalexv/casdeck/pkg/cassette/tape"
)

//
func NewExtract() *Extract {

	e := &Extract{}
	e.Runner = *NewRunner(
		"extract -i|--input {file} [-o|--output {folder}] [-f|--force]",
		"extract the files from a tape into individual files",
		`
Use the extract command to unpack all files contained on a tape into individual
files on disk. File names are derived from the names recorded on the tape. Files
without a usable name are numbered.`,
		"", "", e.Run)

	e.AddSetting(&e.File, "input", "i", "", nil, "tape input file", true)
	e.AddSetting(&e.Output, "output", "o", "", nil,
		"output folder; defaults to current folder", false)
	e.AddSetting(&e.Force, "force", "f", "", nil,
		"overwrite existing files", false)

	return e
}

//
type Extract struct {
	//
	Runner
	//
	File   string
	Output string
	Force  bool
}

//
func (e *Extract) Run() error {

	e.ParseSettings()

	f, err := os.Open(e.File)
	if err != nil {
		return err
	}
	defer f.Close()

	form, err := format.NewFormat(getExtension(e.File))
	if err != nil {
		return err
	}

	t, err := form.Read(bufio.NewReader(f), false)
	if err != nil {
		return err
	}

	if e.Output != "" {
		if err := os.MkdirAll(e.Output, 0755); err != nil {
			return err
		}
	}

	count := 0
	custom := 0

	files := t.Files()
	for files.Next() {
		fl := files.File()
		name := fl.FileName()
		if name == "" {
			custom++
			name = fmt.Sprintf("custom.%03d", custom)
		}
		if err := e.write(fl, filepath.Join(e.Output, name)); err != nil {
			return err
		}
		count++
	}

	if err := files.Err(); err != nil {
		return err
	}

	fmt.Printf("extracted %d files\n", count)
	return nil
}

//
func (e *Extract) write(f *tape.File, path string) error {

	if !e.Force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("file exists: %s; use --force to overwrite", path)
		}
	}

	data := f.Data()
	if f.Kind() == cassette.ASCII {
		data = f.Payload()
	}

	if err := ioutil.WriteFile(path, data, 0644); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"file": path, "size": len(data)}).Info("extracted")

	return nil
}
