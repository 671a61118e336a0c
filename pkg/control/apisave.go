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
	"bytes"
	"fmt"
	"net/http"
)

//
func (a *api) save(w http.ResponseWriter, req *http.Request) {

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

	writer := getFormat(w, req)
	if writer == nil {
		return
	}

	var out bytes.Buffer
	if handleError(writer.Write(t, &out), http.StatusInternalServerError, w) {
		return
	}

	t.SetModified(false)
	w.WriteHeader(http.StatusOK)
	w.Write(out.Bytes())
}
