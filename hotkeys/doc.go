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

// Package hotkeys watches the raw hardware buttons that work regardless of
// what is on screen: the power button, the volume rocker, the mode button
// and the lid switch.
//
// The buttons arrive as evdev events on several input devices. The devices
// are opened non-blocking and the Monitor's Poll() function drains whatever
// has queued since the last call, so the caller's render loop is never held
// up by an idle device. Poll() returns the semantic events that resulted:
//
//   - a short power press suspends the machine to RAM (debounced against
//     the most recent wake so that the press that wakes the machine does
//     not immediately send it back to sleep)
//   - a long power press requests shutdown. the request fires as soon as
//     the threshold passes, whether or not the button has been released
//   - volume keys step the master volume, or the panel brightness while
//     the mode button is held
//   - closing the lid suspends unconditionally
//
// The Monitor reads devices through the small Device interface and tells
// time through its Clock field. Tests inject fakes for both; the evdev
// implementation in this package is used on the real machine.
package hotkeys
