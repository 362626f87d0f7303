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

// GUI defines the operations the menu loop performs on a user interface.
type GUI interface {
	// Collect all user input decoded since the last call. Never blocks.
	PollInput() []Input

	// Draw a complete frame. The frame replaces whatever was previously
	// on screen.
	Present(frame Frame) error

	// Play a feedback sound. Implementations with no audio capability
	// ignore the request.
	Play(snd Sound)

	// YieldDisplay releases the display and input devices so that another
	// process can take them over. ReacquireDisplay undoes the yield once
	// the other process has finished.
	YieldDisplay() error
	ReacquireDisplay() error

	// Destroy releases all resources. The GUI cannot be used afterwards.
	Destroy()
}

// Sound identifies a feedback sample.
type Sound int

// List of defined sounds.
const (
	SoundMove Sound = iota
	SoundSelect
	SoundBack
)
