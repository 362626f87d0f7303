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

package session

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/mimiki/launcher/catalog"
	"github.com/mimiki/launcher/curated"
	"github.com/mimiki/launcher/logger"
	"github.com/mimiki/launcher/power"
)

// Supervisor runs emulator sessions. One session at a time; Launch blocks
// until the emulator has exited.
type Supervisor struct {
	gov *power.Governors
}

// NewSupervisor is the preferred method of initialisation for the
// Supervisor type.
func NewSupervisor(gov *power.Governors) *Supervisor {
	return &Supervisor{gov: gov}
}

// Launch runs the emulator from the profile with the selected game. The
// profile's active power policy is applied for the lifetime of the child
// process and the idle policy is restored when it exits. Restoration
// happens on every exit path, including a failure to spawn.
//
// The exit status of the emulator is returned. A non-zero status is not
// an error; an error means the emulator could not be run at all.
func (sup *Supervisor) Launch(prof catalog.Profile, game catalog.Game) (int, error) {
	logger.Logf("session", "launching %s (%s)", game.Name, game.Path)

	if prof.Active.CPU == "performance" {
		logger.Log("session", "Hyper Clock Up!!!")
	} else {
		logger.Log("session", "Clock Up!")
	}
	sup.gov.Apply(prof.Active)

	defer func() {
		logger.Log("session", "Clock Over...")
		sup.gov.Apply(power.Idle)
	}()

	args := make([]string, 0, len(prof.EmulatorArgs)+1)
	args = append(args, prof.EmulatorArgs...)
	args = append(args, game.Path)

	cmd := exec.Command(prof.Emulator, args...)

	// emulators see the short program name in argv[0], as they would when
	// launched from a shell
	cmd.Args[0] = filepath.Base(prof.Emulator)

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok {
			logger.Logf("session", "emulator exited with status %d", ee.ExitCode())
			return ee.ExitCode(), nil
		}
		return -1, curated.Errorf("session: %v", err)
	}

	logger.Log("session", "emulator exited with status 0")

	return 0, nil
}
