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
	"io"
	"net/http"
)

//
func (a *api) dump(w http.ResponseWriter, req *http.Request) {
	a.slotInfo(w, req, "dump")
}

//
func (a *api) slotList(w http.ResponseWriter, req *http.Request) {
	a.slotInfo(w, req, "ls")
}

//
func (a *api) slotInfo(w http.ResponseWriter, req *http.Request, info string) {

	slot := getSlot(w, req)
	if slot == -1 {
		return
	}

	s, err := a.deck.GetSlot(slot)
	if err != nil {
		handleError(fmt.Errorf("slot %d busy", slot), http.StatusLocked, w)
		return
	}
	defer s.Unlock()

	t := s.Tape()
	if t == nil {
		handleError(fmt.Errorf("no tape in slot %d", slot),
			http.StatusUnprocessableEntity, w)
		return
	}

	read, write := io.Pipe()

	go func() {
		switch info {
		case "dump":
			t.Emit(write)
		case "ls":
			if err := t.List(write); err != nil {
				fmt.Fprintf(write, "\nmalformed files on tape: %v\n", err)
			}
		}
		write.Close()
	}()

	sendStreamReply(read, http.StatusOK, w)
}
