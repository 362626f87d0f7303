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

// Package power gathers the control surfaces through which mimiki adjusts
// the machine: CPU/GPU frequency-scaling governors, the panel backlight,
// suspend-to-RAM, the ALSA master volume and the final poweroff.
//
// All surfaces are plain sysfs files or small external commands. Writes are
// best-effort. A missing surface (no backlight on a development machine, a
// devfreq node that has moved) degrades that capability and is logged, it
// never stops the session controller.
//
// The sysfs paths are fields on each type so that tests can point a surface
// at a temporary directory. The zero value of each type is not useful; use
// the New*() functions.
package power
