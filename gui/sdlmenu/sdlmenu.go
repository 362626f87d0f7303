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
	"github.com/mimiki/launcher/curated"
	"github.com/mimiki/launcher/gui"
	"github.com/mimiki/launcher/logger"

	"github.com/veandco/go-sdl2/sdl"
)

const windowTitle = "MIMIKI"

// the menu renders at a fixed size. on the device the window covers the
// whole display regardless.
const (
	windowWidth  = 640
	windowHeight = 480
)

// SdlMenu is the SDL implementation of the gui.GUI interface.
type SdlMenu struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	font     *fontAtlas
	snd      *sound
	pads     []*sdl.GameController
}

// NewSdlMenu is the preferred method of initialisation for the SdlMenu
// type.
//
// MUST ONLY be called from the #mainthread
func NewSdlMenu() (*SdlMenu, error) {
	scr := &SdlMenu{}

	err := scr.setup()
	if err != nil {
		return nil, err
	}

	return scr, nil
}

// setup brings up the whole SDL subsystem. it is used both at
// initialisation and when reacquiring the display after an emulation
// session.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlMenu) setup() error {
	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_GAMECONTROLLER)
	if err != nil {
		return curated.Errorf("sdlmenu: %v", err)
	}

	scr.window, err = sdl.CreateWindow(windowTitle,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		windowWidth, windowHeight,
		sdl.WINDOW_FULLSCREEN)
	if err != nil {
		sdl.Quit()
		return curated.Errorf("sdlmenu: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		scr.teardown()
		return curated.Errorf("sdlmenu: %v", err)
	}

	scr.font, err = loadFontAtlas(scr.renderer)
	if err != nil {
		scr.teardown()
		return err
	}

	// open the first recognised gamepad. the menu only ever needs one
	for i := 0; i < sdl.NumJoysticks(); i++ {
		if !sdl.IsGameController(i) {
			continue
		}
		pad := sdl.GameControllerOpen(i)
		if pad != nil && pad.Attached() {
			logger.Logf("sdl", "gamepad: %s", pad.Name())
			scr.pads = append(scr.pads, pad)
			break
		}
	}
	if len(scr.pads) == 0 {
		logger.Log("sdl", "no gamepads found")
	}

	scr.snd = newSound()

	return nil
}

// teardown releases all SDL resources in reverse order of creation.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlMenu) teardown() {
	if scr.snd != nil {
		scr.snd.destroy()
		scr.snd = nil
	}
	if scr.font != nil {
		scr.font.destroy()
		scr.font = nil
	}
	for _, pad := range scr.pads {
		pad.Close()
	}
	scr.pads = nil
	if scr.renderer != nil {
		scr.renderer.Destroy()
		scr.renderer = nil
	}
	if scr.window != nil {
		scr.window.Destroy()
		scr.window = nil
	}
	sdl.Quit()
}

// Present implements the gui.GUI interface.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlMenu) Present(frame gui.Frame) error {
	err := scr.renderer.SetDrawColor(0, 0, 0, 255)
	if err != nil {
		return curated.Errorf("sdlmenu: %v", err)
	}

	err = scr.renderer.Clear()
	if err != nil {
		return curated.Errorf("sdlmenu: %v", err)
	}

	for _, t := range frame {
		scr.font.drawText(scr.renderer, t)
	}

	scr.renderer.Present()

	return nil
}

// Play implements the gui.GUI interface.
func (scr *SdlMenu) Play(snd gui.Sound) {
	if scr.snd != nil {
		scr.snd.play(snd)
	}
}

// YieldDisplay implements the gui.GUI interface. SDL is shut down
// completely so that the display, the gamepad and the audio device are
// free for the emulator process to claim.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlMenu) YieldDisplay() error {
	scr.teardown()
	logger.Log("sdl", "display yielded")
	return nil
}

// ReacquireDisplay implements the gui.GUI interface.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlMenu) ReacquireDisplay() error {
	err := scr.setup()
	if err != nil {
		return err
	}
	logger.Log("sdl", "display reacquired")
	return nil
}

// Destroy implements the gui.GUI interface.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlMenu) Destroy() {
	scr.teardown()
}
