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

// DrawText is a single string placed at a fixed position on the screen.
// Coordinates are in pixels from the top-left corner.
type DrawText struct {
	X, Y     int
	Text     string
	Selected bool
}

// Frame is the complete draw list for one frame, in draw order. An empty
// frame clears the screen.
type Frame []DrawText
