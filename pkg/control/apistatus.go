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
	"net/http"

	"github.com/xelalexv/casdeck/pkg/deck"
)

//
func (a *api) status(w http.ResponseWriter, req *http.Request) {

	stat := &Status{}
	for _, s := range a.getSlots() {
		stat.Add(s.Status)
	}

	if wantsJSON(req) {
		sendJSONReply(stat, http.StatusOK, w)
	} else {
		sendReply([]byte(stat.String()), http.StatusOK, w)
	}
}

//
func (a *api) list(w http.ResponseWriter, req *http.Request) {

	list := a.getSlots()

	if wantsJSON(req) {
		sendJSONReply(list, http.StatusOK, w)

	} else {
		strList := "\nSLOT TAPE             STATE"
		for ix, s := range list {
			strList += fmt.Sprintf("\n  %d  %s", ix+1, s.String())
		}
		sendReply([]byte(strList), http.StatusOK, w)
	}
}

//
func (a *api) getSlots() []*Slot {

	ret := make([]*Slot, deck.SlotCount)

	for ix := 1; ix <= deck.SlotCount; ix++ {

		v := &Slot{Number: ix, Status: StatusBusy}

		if s, err := a.deck.GetSlot(ix); err == nil {
			v.fill(s)
			s.Unlock()
		}

		ret[ix-1] = v
	}

	return ret
}
