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

package power

import (
	"os"
	"os/exec"

	"github.com/mimiki/launcher/curated"
	"github.com/mimiki/launcher/logger"
)

const sleepStatePath = "/sys/power/state"

// Machine performs whole-machine power transitions.
type Machine struct {
	// the kernel sleep state file
	StatePath string
}

// NewMachine is the preferred method of initialisation for the Machine type.
func NewMachine() *Machine {
	return &Machine{
		StatePath: sleepStatePath,
	}
}

// Suspend the machine to RAM. The write does not return until the machine
// has been woken again, so callers can treat the return of this function as
// the moment of wake-up.
func (m *Machine) Suspend() error {
	logger.Log("power", "suspending to RAM")

	err := os.WriteFile(m.StatePath, []byte("mem"), 0o644)
	if err != nil {
		return curated.Errorf("suspend: %v", err)
	}

	logger.Log("power", "woke from suspend")
	return nil
}

// PowerOff shuts the machine down. On success this function never returns to
// the caller in any meaningful way. Failure is returned so it can be logged.
func (m *Machine) PowerOff() error {
	logger.Log("power", "powering off")

	cmd := exec.Command("poweroff")
	if err := cmd.Run(); err != nil {
		return curated.Errorf("poweroff: %v", err)
	}

	return nil
}
