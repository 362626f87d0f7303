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
	"strconv"

	"github.com/mimiki/launcher/curated"
)

const backlightPath = "/sys/class/backlight/backlight/brightness"

// the kernel file takes a raw value, not a percentage. the panel driver
// ranges from 0 to 255.
const backlightMaxRaw = 255

// Backlight sets the panel brightness.
type Backlight struct {
	// the kernel brightness file
	Path string

	// the raw value corresponding to 100%
	MaxRaw int
}

// NewBacklight is the preferred method of initialisation for the Backlight
// type.
func NewBacklight() *Backlight {
	return &Backlight{
		Path:   backlightPath,
		MaxRaw: backlightMaxRaw,
	}
}

// Enabled returns true if the brightness control file is present. Not every
// target has one (a development machine won't) in which case brightness
// stepping is disabled and the volume keys always control volume.
func (bl *Backlight) Enabled() bool {
	_, err := os.Stat(bl.Path)
	return err == nil
}

// Set the backlight to a percentage of the maximum brightness. The percent
// argument is clamped to [0, 100] so the raw write can never exceed MaxRaw.
func (bl *Backlight) Set(percent int) error {
	if percent < 0 {
		percent = 0
	} else if percent > 100 {
		percent = 100
	}

	raw := percent * bl.MaxRaw / 100

	err := os.WriteFile(bl.Path, []byte(strconv.Itoa(raw)), 0o644)
	if err != nil {
		return curated.Errorf("backlight: %v", err)
	}

	return nil
}
