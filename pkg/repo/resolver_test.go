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
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
func TestIsReference(t *testing.T) {
	assert.True(t, IsReference("repo://games/game.cas"))
	assert.False(t, IsReference("games/game.cas"))
	assert.False(t, IsReference(""))
}

//
func TestResolve(t *testing.T) {

	base := t.TempDir()
	require.NoError(t,
		ioutil.WriteFile(filepath.Join(base, "demo.cas"), []byte("data"), 0644))

	src, err := Resolve("repo://demo.cas", base)
	require.NoError(t, err)
	defer src.Close()

	data, err := ioutil.ReadAll(src)
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), data)
}

//
func TestResolveRejects(t *testing.T) {

	base := t.TempDir()

	tests := []struct {
		name string
		ref  string
		repo string
		want string
	}{
		{
			name: "not a reference",
			ref:  "demo.cas",
			repo: base,
			want: "not a repo reference",
		},
		{
			name: "repository not enabled",
			ref:  "repo://demo.cas",
			repo: "",
			want: "not enabled",
		},
		{
			name: "escape via parent",
			ref:  "repo://../secret.cas",
			repo: base,
			want: "escapes",
		},
		{
			name: "escape via nested parent",
			ref:  "repo://a/../../secret.cas",
			repo: base,
			want: "escapes",
		},
		{
			name: "absolute path",
			ref:  "repo:///etc/passwd",
			repo: base,
			want: "escapes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.ref, tt.repo)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

//
func TestResolveInsideBase(t *testing.T) {

	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "games"), 0755))
	require.NoError(t, ioutil.WriteFile(
		filepath.Join(base, "games", "game.cas"), []byte("g"), 0644))

	// dotdot segments that stay below the base are fine
	src, err := Resolve("repo://games/../games/game.cas", base)
	require.NoError(t, err)
	src.Close()
}

//
func TestList(t *testing.T) {

	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "sub"), 0755))
	require.NoError(t, ioutil.WriteFile(
		filepath.Join(base, "a.cas"), make([]byte, 16), 0644))
	require.NoError(t, ioutil.WriteFile(
		filepath.Join(base, "sub", "b.CAS"), make([]byte, 32), 0644))
	require.NoError(t, ioutil.WriteFile(
		filepath.Join(base, "notes.txt"), []byte("x"), 0644))

	entries, err := List(base)
	require.NoError(t, err)
	require.Equal(t, 2, len(entries))

	names := make(map[string]int64)
	for _, e := range entries {
		names[e.Name] = e.Size
		assert.False(t, e.Modified.IsZero())
	}
	assert.Equal(t, int64(16), names["a.cas"])
	assert.Equal(t, int64(32), names[filepath.Join("sub", "b.CAS")])
}

//
func TestListNoRepo(t *testing.T) {
	_, err := List("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not enabled")
}
