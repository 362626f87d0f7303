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

// Package sdlmenu is the SDL implementation of the gui.GUI interface.
// Text is drawn from a fixed-width glyph atlas; input is decoded from the
// first available gamepad, with a keyboard fallback for development.
//
// The implementation owns SDL completely. YieldDisplay() shuts the whole
// subsystem down, ReacquireDisplay() brings it back up. The emulator
// process launched between the two calls gets exclusive access to the
// display, the gamepad and the audio device, exactly as if the menu had
// never been running.
//
// All functions must be called from the main OS thread. SDL is not
// thread-safe and on some platforms is main-thread only.
package sdlmenu
