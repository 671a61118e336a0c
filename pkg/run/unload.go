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
	"fmt"
	"io/ioutil"
	"strconv"
)

//
func NewUnload() *Unload {

	u := &Unload{}
	u.Runner = *NewRunner(
		"unload [-s|--slot {slot}] [-f|--force] [-p|--port {port}]",
		"unload tape from deck server",
		`
Use the unload command to eject the tape from a deck server slot, leaving
the slot empty`,
		"", runnerHelpEpilogue, u.Run)

	u.AddBaseSettings()
	u.AddSetting(&u.Slot, "slot", "s", "", 1, "slot number (1-4)", false)
	u.AddSetting(&u.Force, "force", "f", "", false,
		"force unloading modified tape from deck server", false)

	return u
}

//
type Unload struct {
	//
	Runner
	//
	Slot  int
	Force bool
}

//
func (u *Unload) Run() error {

	u.ParseSettings()

	if err := validateSlot(u.Slot); err != nil {
		return err
	}

	resp, err := u.apiCall("GET", fmt.Sprintf("/slot/%d/unload?force=%s",
		u.Slot, strconv.FormatBool(u.Force)), false, nil)
	if err != nil {
		return err
	}
	defer resp.Close()

	msg, err := ioutil.ReadAll(resp)
	if err != nil {
		return err
	}

	fmt.Printf("%s", msg)
	return nil
}
