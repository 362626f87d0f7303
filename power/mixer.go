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
	"os/exec"
	"strconv"

	"github.com/mimiki/launcher/curated"
)

// Mixer steps the ALSA master volume by driving the amixer command. The
// command is run directly, there is no shell involved.
type Mixer struct {
	// the ALSA card index
	Card int

	// the simple mixer control to adjust
	Control string

	// the adjustment per step, in amixer syntax ("5%")
	Step string
}

// NewMixer is the preferred method of initialisation for the Mixer type.
func NewMixer() *Mixer {
	return &Mixer{
		Card:    0,
		Control: "Master",
		Step:    "5%",
	}
}

// VolumeUp increases the master volume by one step.
func (mx *Mixer) VolumeUp() error {
	return mx.adjust(mx.Step + "+")
}

// VolumeDown decreases the master volume by one step.
func (mx *Mixer) VolumeDown() error {
	return mx.adjust(mx.Step + "-")
}

func (mx *Mixer) adjust(amount string) error {
	cmd := exec.Command("amixer", "-q", "-c", strconv.Itoa(mx.Card), "sset", mx.Control, amount)
	if err := cmd.Run(); err != nil {
		return curated.Errorf("mixer: %v", err)
	}
	return nil
}
