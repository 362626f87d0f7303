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

// Package session runs emulator processes. The bracket around every
// session is the same: apply the profile's active power policy, spawn the
// emulator with the game as its final argument, wait for it to finish and
// drop back to the idle policy. The caller is expected to have yielded
// the display before calling Launch.
//
// A crashing emulator is an ordinary outcome. Launch reports the exit
// status and the menu carries on; the idle policy is restored regardless.
package session
