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

package menu

import (
	"github.com/mimiki/launcher/catalog"
	"github.com/mimiki/launcher/gui"
)

// Focus identifies which of the two menu levels has input focus.
type Focus int

// List of defined focus values.
const (
	FocusSystems Focus = iota
	FocusGames
)

// State is the complete navigation state of the menu. The zero value is the
// initial state: system list focused, first entry highlighted.
type State struct {
	Focus  Focus
	System int
	Game   int
}

// Navigate moves the highlight one entry. Movement stops at the ends of
// lists, it does not wrap around. Returns true when the highlight moved.
func (st *State) Navigate(cat *catalog.Catalog, dir gui.Direction) bool {
	switch st.Focus {
	case FocusSystems:
		switch dir {
		case gui.DirUp:
			if st.System > 0 {
				st.System--
				return true
			}
		case gui.DirDown:
			if st.System < len(cat.Profiles())-1 {
				st.System++
				return true
			}
		}

	case FocusGames:
		games := cat.Games(cat.Profiles()[st.System])
		switch dir {
		case gui.DirUp:
			if st.Game > 0 {
				st.Game--
				return true
			}
		case gui.DirDown:
			if st.Game < len(games)-1 {
				st.Game++
				return true
			}
		}
	}

	return false
}

// Select descends from the system list into the game list or, when a game is
// already highlighted, requests its launch. Returns true when the highlighted
// game should be launched. Selecting a system with no games does nothing.
func (st *State) Select(cat *catalog.Catalog) bool {
	games := cat.Games(cat.Profiles()[st.System])
	if len(games) == 0 {
		return false
	}

	if st.Focus == FocusSystems {
		st.Focus = FocusGames
		st.Game = 0
		return false
	}

	return true
}

// Back returns to the system list. The game highlight is forgotten. Returns
// true when the focus changed.
func (st *State) Back() bool {
	if st.Focus != FocusGames {
		return false
	}

	st.Focus = FocusSystems
	st.Game = 0

	return true
}
