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
	"github.com/mimiki/launcher/power"
)

// Profile describes one emulated system: how its games are recognised, the
// emulator that plays them and the clock policy the emulator needs.
//
// Profiles are immutable once defined. A Profile is always passed by value.
type Profile struct {
	// the name shown in the system menu
	Name string

	// the short name used for ROM sub-directories
	ShortName string

	// absolute path of the emulator binary
	Emulator string

	// arguments placed before the game path on the emulator command line
	EmulatorArgs []string

	// file extensions recognised as games for this system. matched
	// case-insensitively, leading dot included
	Extensions []string

	// governor policy while a game from this profile is running
	Active power.Policy
}

// Profiles returns the systems supported by the device, in menu order.
func Profiles() []Profile {
	return []Profile{
		{
			Name:         "Nintendo 64",
			ShortName:    "n64",
			Emulator:     "/usr/bin/mupen64plus",
			EmulatorArgs: []string{"--fullscreen"},
			Extensions:   []string{".z64", ".n64", ".v64"},
			Active:       power.Policy{CPU: "performance", GPU: "performance"},
		},
		{
			Name:       "Dreamcast",
			ShortName:  "dreamcast",
			Emulator:   "/usr/bin/flycast",
			Extensions: []string{".gdi", ".cdi", ".chd"},
			Active:     power.Policy{CPU: "schedutil", GPU: "performance"},
		},
		{
			Name:       "PlayStation",
			ShortName:  "ps1",
			Emulator:   "/usr/bin/duckstation-nogui",
			Extensions: []string{".cue", ".chd", ".pbp"},
			Active:     power.Policy{CPU: "schedutil", GPU: "simple_ondemand"},
		},
		{
			Name:       "PlayStation Portable",
			ShortName:  "psp",
			Emulator:   "/usr/bin/PPSSPPSDL",
			Extensions: []string{".iso", ".cso", ".chd"},
			Active:     power.Policy{CPU: "schedutil", GPU: "performance"},
		},
	}
}
