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
	"io"
	"os"

	"github.com/xelalexv/casdeck/pkg/cassette/format"
)

//
func NewDump() *Dump {

	d := &Dump{}
	d.Runner = *NewRunner(
		"dump [-i|--input {file}] [-s|--slot {slot}] [-p|--port {port}]",
		"dump tape from file or deck server",
		"\nUse the dump command to output a hex dump of a tape, either from file or from a deck server slot.",
		"", runnerHelpEpilogue, d.Run)

	d.AddBaseSettings()
	d.AddSetting(&d.File, "input", "i", "", nil, "tape input file", false)
	d.AddSetting(&d.Slot, "slot", "s", "", 1, "slot number (1-4)", false)

	return d
}

//
type Dump struct {
	//
	Runner
	//
	Slot int
	File string
}

//
func (d *Dump) Run() error {

	d.ParseSettings()

	if d.File != "" {
		f, err := os.Open(d.File)
		if err != nil {
			return err
		}
		defer f.Close()

		form, err := format.NewFormat(getExtension(d.File))
		if err != nil {
			return err
		}

		t, err := form.Read(bufio.NewReader(f), false)
		if err != nil {
			return err
		}

		t.Emit(os.Stdout)

	} else {
		if err := validateSlot(d.Slot); err != nil {
			return err
		}

		resp, err := d.apiCall("GET", fmt.Sprintf("/slot/%d/dump", d.Slot),
			false, nil)
		if err != nil {
			return err
		}
		defer resp.Close()

		if _, err := io.Copy(os.Stdout, resp); err != nil {
			return err
		}
	}

	fmt.Println()
	return nil
}
