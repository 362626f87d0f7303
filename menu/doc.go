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

// Package menu drives the two-level game menu: a list of systems and, one
// level down, the list of games for the chosen system. Navigation state is a
// small value type with pure transition methods; frame composition is a pure
// function from state to draw list. The Controller ties state, catalog, GUI
// and hotkey monitor together in a simple polling loop.
//
// The loop runs at a fixed ten frames per second. Nothing in the menu moves
// on its own so there is no reason to redraw any faster.
package menu
