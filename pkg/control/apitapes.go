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

	"github.com/dustin/go-humanize"

	"github.com/xelalexv/casdeck/pkg/repo"
)

//
func (a *api) tapes(w http.ResponseWriter, req *http.Request) {

	entries, err := repo.List(a.repository)
	if err != nil {
		handleError(err, http.StatusNotAcceptable, w)
		return
	}

	if wantsJSON(req) {
		sendJSONReply(entries, http.StatusOK, w)
		return
	}

	strList := "\nTAPE                                     SIZE       MODIFIED"
	for _, e := range entries {
		strList += fmt.Sprintf("\n%-40s %-10s %s", e.Name,
			humanize.Bytes(uint64(e.Size)), humanize.Time(e.Modified))
	}
	sendReply([]byte(strList), http.StatusOK, w)
}
