// This file is part of Mimiki.
//
// Mimiki is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Mimiki is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Mimiki.  If not, see <https://www.gnu.org/licenses/>.

package catalog_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mimiki/launcher/catalog"
	"github.com/mimiki/launcher/test"
)

// testProfile is a minimal profile for scanning temporary directories.
func testProfile() catalog.Profile {
	return catalog.Profile{
		Name:       "Nintendo 64",
		ShortName:  "n64",
		Emulator:   "/usr/bin/mupen64plus",
		Extensions: []string{".z64", ".n64", ".v64"},
	}
}

// populate creates the named files under root/<shortName>.
func populate(t *testing.T, root string, shortName string, files ...string) {
	t.Helper()

	dir := filepath.Join(root, shortName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(dir, f), []byte{}, 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestSortOrder(t *testing.T) {
	root := t.TempDir()
	populate(t, root, "n64", "Zelda.n64", "Mario.z64", "banana.v64")

	prof := testProfile()
	cat := catalog.Scan([]catalog.Profile{prof}, []string{root})

	games := cat.Games(prof)
	test.Equate(t, len(games), 3)

	// sorting is case-insensitive so banana sorts before Mario
	test.Equate(t, games[0].Name, "banana")
	test.Equate(t, games[1].Name, "Mario")
	test.Equate(t, games[2].Name, "Zelda")
}

func TestExtensionFilter(t *testing.T) {
	root := t.TempDir()
	populate(t, root, "n64", "game.z64", "GAME2.Z64", "readme.txt", "cover.png", "nodot")

	// sub-directories are never games, whatever their name
	if err := os.MkdirAll(filepath.Join(root, "n64", "saves.z64"), 0o755); err != nil {
		t.Fatal(err)
	}

	prof := testProfile()
	cat := catalog.Scan([]catalog.Profile{prof}, []string{root})

	games := cat.Games(prof)
	test.Equate(t, len(games), 2)

	// every catalogued game matches one of the profile's extensions
	for _, g := range games {
		ext := strings.ToLower(filepath.Ext(g.Path))
		matched := false
		for _, e := range prof.Extensions {
			if ext == e {
				matched = true
			}
		}
		test.Equate(t, matched, true)
	}
}

func TestNameTrim(t *testing.T) {
	root := t.TempDir()
	populate(t, root, "n64", "Super Mario 64.z64", "legend.of.zelda.n64")

	prof := testProfile()
	cat := catalog.Scan([]catalog.Profile{prof}, []string{root})

	games := cat.Games(prof)
	test.Equate(t, len(games), 2)

	// only the final extension is removed
	test.Equate(t, games[0].Name, "legend.of.zelda")
	test.Equate(t, games[1].Name, "Super Mario 64")
}

func TestMergedRoots(t *testing.T) {
	rootA := t.TempDir()
	rootB := t.TempDir()
	populate(t, rootA, "n64", "bbb.z64")
	populate(t, rootB, "n64", "aaa.z64")

	prof := testProfile()
	cat := catalog.Scan([]catalog.Profile{prof}, []string{rootA, rootB})

	// games from both roots appear in a single sorted list
	games := cat.Games(prof)
	test.Equate(t, len(games), 2)
	test.Equate(t, games[0].Name, "aaa")
	test.Equate(t, games[1].Name, "bbb")
}

func TestMissingRoot(t *testing.T) {
	prof := testProfile()
	cat := catalog.Scan([]catalog.Profile{prof}, []string{"/no/such/root"})

	// a missing root is not an error, there are simply no games
	games := cat.Games(prof)
	test.Equate(t, len(games), 0)
}

func TestGameCap(t *testing.T) {
	root := t.TempDir()

	files := make([]string, 0, catalog.MaxGames+50)
	for i := 0; i < catalog.MaxGames+50; i++ {
		files = append(files, fmt.Sprintf("game%04d.z64", i))
	}
	populate(t, root, "n64", files...)

	prof := testProfile()
	cat := catalog.Scan([]catalog.Profile{prof}, []string{root})

	games := cat.Games(prof)
	test.Equate(t, len(games), catalog.MaxGames)
}

func TestWrite(t *testing.T) {
	root := t.TempDir()
	populate(t, root, "n64", "Mario.z64")

	prof := testProfile()
	cat := catalog.Scan([]catalog.Profile{prof}, []string{root})

	tw := &test.Writer{}
	cat.Write(tw)
	test.Equate(t, tw.Compare("Nintendo 64 (1 games)\n  Mario\n"), true)
}

func TestProfiles(t *testing.T) {
	profiles := catalog.Profiles()
	test.Equate(t, len(profiles) > 0, true)

	seen := make(map[string]bool)
	for _, prof := range profiles {
		// short names identify ROM sub-directories so must be unique
		test.Equate(t, seen[prof.ShortName], false)
		seen[prof.ShortName] = true

		test.Equate(t, len(prof.Extensions) > 0, true)
		for _, e := range prof.Extensions {
			test.Equate(t, strings.HasPrefix(e, "."), true)
		}

		test.Equate(t, prof.Active.CPU != "", true)
		test.Equate(t, prof.Active.GPU != "", true)
	}
}
