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

package repo

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

//
const PrefixRepoRef = "repo://"

//
func newFileSource(file string) (*fileSource, error) {
	if f, err := os.Open(file); err != nil {
		return nil, err
	} else {
		return &fileSource{file: f, reader: bufio.NewReader(f)}, nil
	}
}

//
type fileSource struct {
	file   *os.File
	reader io.Reader
}

//
func (fs *fileSource) Read(p []byte) (n int, err error) {
	return fs.reader.Read(p)
}

//
func (fs *fileSource) Close() error {
	return fs.file.Close()
}

// Resolve opens the tape file denoted by ref, relative to repo, the base
// folder of the tape repository. References that would escape the base
// folder are rejected.
func Resolve(ref, repo string) (io.ReadCloser, error) {

	log.WithFields(log.Fields{
		"reference":  ref,
		"repository": repo,
	}).Debug("resolving ref")

	if !strings.HasPrefix(ref, PrefixRepoRef) {
		return nil, fmt.Errorf("not a repo reference: %s", ref)
	}

	if repo == "" {
		return nil, fmt.Errorf("tape repository is not enabled")
	}

	name := filepath.Clean(ref[len(PrefixRepoRef):])
	if filepath.IsAbs(name) || name == ".." ||
		strings.HasPrefix(name, ".."+string(filepath.Separator)) {
		return nil, fmt.Errorf("reference escapes tape repository: %s", ref)
	}

	return newFileSource(filepath.Join(repo, name))
}

//
func IsReference(r string) bool {
	return strings.HasPrefix(r, PrefixRepoRef)
}

//
type Entry struct {
	Name     string    `json:"name"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
}

// List enumerates the cas files below the repository base folder. Entry
// names are relative to the base folder, so they can be used directly in
// repo references.
func List(repo string) ([]Entry, error) {

	if repo == "" {
		return nil, fmt.Errorf("tape repository is not enabled")
	}

	var ret []Entry

	err := filepath.Walk(repo,
		func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() || !strings.EqualFold(filepath.Ext(path), ".cas") {
				return nil
			}
			rel, err := filepath.Rel(repo, path)
			if err != nil {
				return err
			}
			ret = append(ret, Entry{
				Name:     rel,
				Size:     info.Size(),
				Modified: info.ModTime(),
			})
			return nil
		})

	if err != nil {
		return nil, err
	}

	return ret, nil
}
