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
	"io/ioutil"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xelalexv/casdeck/pkg/repo"
)

//
func NewLoad() *Load {

	l := &Load{}
	l.Runner = *NewRunner(
		"load [-s|--slot {slot}] -i|--input {file} [-f|--force] [-p|--port {port}]",
		"load tape into deck server",
		`
Use the load command to load a tape into a deck server slot. The input is
either a local tape file, which gets uploaded, or a repo reference of the
form repo://{path}, which the server resolves in its tape repository.`,
		"", runnerHelpEpilogue, l.Run)

	l.AddBaseSettings()
	l.AddSetting(&l.File, "input", "i", "", nil,
		"tape input file or repo reference", true)
	l.AddSetting(&l.Slot, "slot", "s", "", 1, "slot number (1-4)", false)
	l.AddSetting(&l.Force, "force", "f", "", false,
		"force replacing modified tape in deck server", false)

	return l
}

//
type Load struct {
	//
	Runner
	//
	Slot  int
	File  string
	Force bool
}

//
func (l *Load) Run() error {

	l.ParseSettings()

	if err := validateSlot(l.Slot); err != nil {
		return err
	}

	name := strings.TrimSuffix(filepath.Base(l.File), filepath.Ext(l.File))
	query := fmt.Sprintf("name=%s&force=%s",
		url.QueryEscape(name), strconv.FormatBool(l.Force))

	var body io.Reader

	if repo.IsReference(l.File) {
		query = fmt.Sprintf("%s&ref=%s", query, url.QueryEscape(l.File))

	} else {
		f, err := os.Open(l.File)
		if err != nil {
			return err
		}
		defer f.Close()
		body = bufio.NewReader(f)
		query = fmt.Sprintf("%s&type=%s", query, getExtension(l.File))
	}

	resp, err := l.apiCall("PUT",
		fmt.Sprintf("/slot/%d?%s", l.Slot, query), false, body)
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
