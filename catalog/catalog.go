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

package catalog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mimiki/launcher/logger"
)

// MaxGames is the most games a single profile will list. Matches for a
// profile beyond this number are silently dropped. The cap is shared across
// all ROM roots.
const MaxGames = 256

// DefaultRoots are the ROM roots scanned when no override is given. The
// second root is the optional expansion card.
var DefaultRoots = []string{"/mnt/games", "/mnt/games2"}

// Game is a single playable file. The name is the filename with the final
// extension removed; it is what the menu shows.
type Game struct {
	Name string
	Path string
}

// Catalog is the result of a Scan(). The game list for each profile is
// sorted by name (case-insensitively) and immutable.
type Catalog struct {
	profiles []Profile
	games    map[string][]Game
}

// Scan the ROM roots for every profile and return the resulting Catalog.
//
// Scan never fails. Roots or sub-directories that are missing or unreadable
// contribute no games. The returned Catalog always answers for every profile
// in the list, if only with an empty game list.
func Scan(profiles []Profile, roots []string) *Catalog {
	cat := &Catalog{
		profiles: profiles,
		games:    make(map[string][]Game),
	}

	for _, prof := range profiles {
		var games []Game

		for _, root := range roots {
			dir := filepath.Join(root, prof.ShortName)

			entries, err := os.ReadDir(dir)
			if err != nil {
				logger.Logf("catalog", "skipping %s: %v", dir, err)
				continue
			}

			for _, e := range entries {
				if e.IsDir() {
					continue
				}
				if !matchExtension(e.Name(), prof.Extensions) {
					continue
				}
				if len(games) >= MaxGames {
					continue
				}
				games = append(games, Game{
					Name: strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())),
					Path: filepath.Join(dir, e.Name()),
				})
			}
		}

		// stable sort so that equal names keep their discovery order
		sort.SliceStable(games, func(i, j int) bool {
			return strings.ToLower(games[i].Name) < strings.ToLower(games[j].Name)
		})

		cat.games[prof.ShortName] = games
		logger.Logf("catalog", "found %d games for %s", len(games), prof.ShortName)
	}

	return cat
}

// Profiles returns the profile list the catalog was scanned with, in menu
// order.
func (cat *Catalog) Profiles() []Profile {
	return cat.profiles
}

// Games returns the sorted list of games for the profile. The returned slice
// must not be modified.
func (cat *Catalog) Games(prof Profile) []Game {
	return cat.games[prof.ShortName]
}

// Write the catalog in a human readable form.
func (cat *Catalog) Write(output io.Writer) {
	for _, prof := range cat.profiles {
		games := cat.games[prof.ShortName]
		fmt.Fprintf(output, "%s (%d games)\n", prof.Name, len(games))
		for _, g := range games {
			fmt.Fprintf(output, "  %s\n", g.Name)
		}
	}
}

// matchExtension compares the file's extension against the profile's
// extension list, ignoring case.
func matchExtension(filename string, extensions []string) bool {
	ext := filepath.Ext(filename)
	for _, e := range extensions {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}
