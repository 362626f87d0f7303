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

package menu

import (
	"github.com/mimiki/launcher/catalog"
	"github.com/mimiki/launcher/gui"
	"github.com/mimiki/launcher/hotkeys"
	"github.com/mimiki/launcher/logger"
)

// Hotkeys is the surface of the hotkey monitor used by the menu loop.
type Hotkeys interface {
	Poll() []hotkeys.Event
}

// Launcher is the surface of the session supervisor used by the menu loop.
type Launcher interface {
	Launch(prof catalog.Profile, game catalog.Game) (int, error)
}

// Reason describes why the menu loop ended.
type Reason int

// List of defined reasons.
const (
	// the platform asked the process to quit
	ReasonQuit Reason = iota

	// the power key was held down; the machine should now power off
	ReasonShutdown
)

// Controller owns the menu loop: input, navigation state, rendering and the
// display bracket around emulator sessions.
type Controller struct {
	scr  gui.GUI
	cat  *catalog.Catalog
	keys Hotkeys
	sup  Launcher

	state State
	lmtr  *limiter
}

// NewController is the preferred method of initialisation for the Controller
// type.
func NewController(scr gui.GUI, cat *catalog.Catalog, keys Hotkeys, sup Launcher) *Controller {
	return &Controller{
		scr:  scr,
		cat:  cat,
		keys: keys,
		sup:  sup,
		lmtr: newLimiter(refreshRate),
	}
}

// Run the menu loop until the user quits or requests a shutdown. The returned
// Reason is only meaningful when the error is nil.
//
// MUST ONLY be called from the #mainthread
func (ctrl *Controller) Run() (Reason, error) {
	for {
		for _, inp := range ctrl.scr.PollInput() {
			switch inp.Action {
			case gui.ActionQuit:
				logger.Log("menu", "quit requested")
				return ReasonQuit, nil

			case gui.ActionNavigate:
				if ctrl.state.Navigate(ctrl.cat, inp.Dir) {
					ctrl.scr.Play(gui.SoundMove)
				}

			case gui.ActionSelect:
				focus := ctrl.state.Focus
				if ctrl.state.Select(ctrl.cat) {
					ctrl.scr.Play(gui.SoundSelect)
					if err := ctrl.launchHighlighted(); err != nil {
						return ReasonQuit, err
					}
				} else if ctrl.state.Focus != focus {
					ctrl.scr.Play(gui.SoundSelect)
				}

			case gui.ActionBack:
				if ctrl.state.Back() {
					ctrl.scr.Play(gui.SoundBack)
				}
			}
		}

		// the hotkey monitor handles brightness, volume and suspend on its
		// own. the only event the menu acts on is the shutdown request
		for _, ev := range ctrl.keys.Poll() {
			if ev.Type == hotkeys.EventShutdownRequest {
				logger.Log("menu", "shutdown requested")
				return ReasonShutdown, nil
			}
		}

		err := ctrl.scr.Present(ComposeFrame(ctrl.cat, ctrl.state))
		if err != nil {
			logger.Logf("menu", "%v", err)
		}

		ctrl.lmtr.wait()
	}
}

// launchHighlighted runs the highlighted game, yielding the display to the
// emulator for the duration. an emulator that fails to start or crashes is
// not an error; failing to get the display back is.
func (ctrl *Controller) launchHighlighted() error {
	prof := ctrl.cat.Profiles()[ctrl.state.System]
	game := ctrl.cat.Games(prof)[ctrl.state.Game]

	err := ctrl.scr.YieldDisplay()
	if err != nil {
		return err
	}

	_, err = ctrl.sup.Launch(prof, game)
	if err != nil {
		logger.Logf("menu", "%v", err)
	}

	return ctrl.scr.ReacquireDisplay()
}
