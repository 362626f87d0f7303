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

// Package gui defines the interface between the menu loop and the user
// interface. The menu loop never talks to SDL directly; it polls the GUI
// for decoded inputs and hands it complete frames to draw.
//
// The one concrete implementation is in the sdlmenu sub-package. Keeping
// the interface this narrow means the menu state machine can be tested
// with a stub implementation and no display at all.
package gui
