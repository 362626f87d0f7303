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

package sdlmenu

import (
	"github.com/mimiki/launcher/gui"

	"github.com/veandco/go-sdl2/sdl"
)

// PollInput implements the gui.GUI interface.
//
// the event queue is drained completely on every call. servicing a
// bounded number of events per frame would leave queued input to resolve
// one frame late.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlMenu) PollInput() []gui.Input {
	var inp []gui.Input

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			inp = append(inp, gui.Input{Action: gui.ActionQuit})

		case *sdl.ControllerButtonEvent:
			if ev.Type != sdl.CONTROLLERBUTTONDOWN {
				break
			}

			switch sdl.GameControllerButton(ev.Button) {
			case sdl.CONTROLLER_BUTTON_DPAD_UP:
				inp = append(inp, gui.Input{Action: gui.ActionNavigate, Dir: gui.DirUp})
			case sdl.CONTROLLER_BUTTON_DPAD_DOWN:
				inp = append(inp, gui.Input{Action: gui.ActionNavigate, Dir: gui.DirDown})
			case sdl.CONTROLLER_BUTTON_A:
				inp = append(inp, gui.Input{Action: gui.ActionSelect})
			case sdl.CONTROLLER_BUTTON_B:
				inp = append(inp, gui.Input{Action: gui.ActionBack})
			}

		// the keyboard mapping mirrors the gamepad. useful when working
		// on the menu away from the device
		case *sdl.KeyboardEvent:
			if ev.Type != sdl.KEYDOWN || ev.Repeat != 0 {
				break
			}

			switch ev.Keysym.Sym {
			case sdl.K_UP:
				inp = append(inp, gui.Input{Action: gui.ActionNavigate, Dir: gui.DirUp})
			case sdl.K_DOWN:
				inp = append(inp, gui.Input{Action: gui.ActionNavigate, Dir: gui.DirDown})
			case sdl.K_RETURN:
				inp = append(inp, gui.Input{Action: gui.ActionSelect})
			case sdl.K_ESCAPE:
				inp = append(inp, gui.Input{Action: gui.ActionBack})
			}
		}
	}

	return inp
}
