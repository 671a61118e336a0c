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

package control

import (
	"fmt"
	"strings"

	"github.com/xelalexv/casdeck/pkg/deck"
)

//
const (
	StatusEmpty  = "empty"
	StatusBusy   = "busy"
	StatusLoaded = "loaded"
)

//
type Status struct {
	Slots []string `json:"slots"`
}

//
func (s *Status) Add(state string) {
	s.Slots = append(s.Slots, state)
}

//
func (s *Status) String() string {
	ret := "\n"
	for ix, state := range s.Slots {
		ret = fmt.Sprintf("%s%d: %s\n", ret, ix+1, state)
	}
	return ret
}

// Slot is the API view onto a deck slot.
type Slot struct {
	Number   int    `json:"number"`
	Name     string `json:"name"`
	Status   string `json:"status"`
	Files    int    `json:"files"`
	Blocks   int    `json:"blocks"`
	Modified bool   `json:"modified"`
}

//
func (v *Slot) fill(s *deck.Slot) {

	v.Number = s.Number()

	t := s.Tape()
	if t == nil {
		v.Status = StatusEmpty
		return
	}

	v.Status = StatusLoaded
	v.Name = strings.TrimSpace(t.Name())
	v.Blocks = len(t.Blocks())
	v.Modified = t.IsModified()

	files := t.Files()
	for files.Next() {
		v.Files++
	}
}

//
func (v *Slot) String() string {

	if v.Status != StatusLoaded {
		return fmt.Sprintf("<%s>", v.Status)
	}

	name := v.Name
	if name == "" {
		name = "<no name>"
	}

	mod := ' '
	if v.Modified {
		mod = '*'
	}

	return fmt.Sprintf("%-16s%c %2d files, %3d blocks", name, mod,
		v.Files, v.Blocks)
}
