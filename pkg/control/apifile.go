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
	"io/ioutil"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/xelalexv/casdeck/pkg/cassette"
	"github.com/xelalexv/casdeck/pkg/cassette/block"
)

// getFile serves the payload of one file on the tape in a slot. Files are
// addressed by their position on the tape, starting at 0. Ascii files are
// served as their concatenated chunks, padding included, anything else as
// the raw body of the data block.
func (a *api) getFile(w http.ResponseWriter, req *http.Request) {

	slot := getSlot(w, req)
	if slot == -1 {
		return
	}

	index := getIndex(w, req)
	if index == -1 {
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

	files := t.Files()
	for ix := 0; files.Next(); ix++ {
		if ix == index {
			f := files.File()
			data := f.Data()
			if f.Kind() == cassette.ASCII {
				data = f.Payload()
			}
			w.WriteHeader(http.StatusOK)
			w.Write(data)
			return
		}
	}

	if err := files.Err(); err != nil {
		handleError(fmt.Errorf("malformed files on tape: %v", err),
			http.StatusUnprocessableEntity, w)
		return
	}

	handleError(fmt.Errorf("no file %d in slot %d", index, slot),
		http.StatusNotFound, w)
}

//
func (a *api) appendFile(w http.ResponseWriter, req *http.Request) {

	slot := getSlot(w, req)
	if slot == -1 {
		return
	}

	arg, err := getArg(req, "type")
	if handleError(err, http.StatusUnprocessableEntity, w) {
		return
	}
	kind := cassette.GetKind(arg)
	if kind == cassette.UNKNOWN {
		handleError(fmt.Errorf("unknown file kind: %s", arg),
			http.StatusUnprocessableEntity, w)
		return
	}

	arg, err = getArg(req, "name")
	if handleError(err, http.StatusUnprocessableEntity, w) {
		return
	}
	name, truncated := block.DeriveName(arg)
	if truncated {
		log.Warnf("file name '%s' truncated to %d characters",
			arg, block.NameLength)
	}

	data, err := ioutil.ReadAll(io.LimitReader(req.Body, 1048576))
	if handleError(err, http.StatusInternalServerError, w) {
		return
	}
	if handleError(req.Body.Close(), http.StatusInternalServerError, w) {
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

	if handleError(
		t.Append(kind, name, data), http.StatusUnprocessableEntity, w) {
		return
	}

	sendReply([]byte(fmt.Sprintf(
		"appended %v file to tape in slot %d", kind, slot)), http.StatusOK, w)
}

//
func getIndex(w http.ResponseWriter, req *http.Request) int {
	vars := mux.Vars(req)
	index, err := strconv.Atoi(vars["index"])
	if handleError(err, http.StatusUnprocessableEntity, w) {
		return -1
	}
	return index
}
