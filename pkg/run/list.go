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

	"github.com/dustin/go-humanize"

	"github.com/xelalexv/casdeck/pkg/cassette/format"
)

//
func NewList() *List {

	l := &List{}
	l.Runner = *NewRunner(
		"ls [-i|--input {file}] [-s|--slot {slot}] [-p|--port {port}]",
		"list files on a tape, or the slots of the deck server",
		`
Use the ls command to list the files on a tape, either from file or in a deck
server slot. When neither input file nor slot is given, an overview of all
deck server slots is retrieved instead.`,
		"", runnerHelpEpilogue, l.Run)

	l.AddBaseSettings()
	l.AddSetting(&l.File, "input", "i", "", nil, "tape input file", false)
	l.AddSetting(&l.Slot, "slot", "s", "", 0, "slot number (1-4)", false)

	return l
}

//
type List struct {
	//
	Runner
	//
	Slot int
	File string
}

//
func (l *List) Run() error {

	l.ParseSettings()

	if l.File != "" {
		return l.local()
	}

	path := "/list"
	if l.Slot != 0 {
		if err := validateSlot(l.Slot); err != nil {
			return err
		}
		path = fmt.Sprintf("/slot/%d/list", l.Slot)
	}

	resp, err := l.apiCall("GET", path, false, nil)
	if err != nil {
		return err
	}
	defer resp.Close()

	list, err := ioutil.ReadAll(resp)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", list)
	return nil
}

//
func (l *List) local() error {

	f, err := os.Open(l.File)
	if err != nil {
		return err
	}
	defer f.Close()

	form, err := format.NewFormat(getExtension(l.File))
	if err != nil {
		return err
	}

	t, err := form.Read(bufio.NewReader(f), false)
	if err != nil {
		return err
	}

	if err := t.List(os.Stdout); err != nil {
		return err
	}

	count := 0
	var total uint64
	files := t.Files()
	for files.Next() {
		count++
		total += uint64(files.File().Size())
	}

	fmt.Printf("\n%d files, %s\n", count, humanize.Bytes(total))
	return nil
}
