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

package gui

// Action is the menu meaning of a decoded user input. The GUI
// implementation is responsible for mapping physical buttons and keys
// onto actions.
type Action int

// List of defined actions.
const (
	ActionNavigate Action = iota
	ActionSelect
	ActionBack
	ActionQuit
)

// Direction qualifies ActionNavigate.
type Direction int

// List of defined directions.
const (
	DirNone Direction = iota
	DirUp
	DirDown
)

// Input is a single decoded user input.
type Input struct {
	Action Action
	Dir    Direction
}
