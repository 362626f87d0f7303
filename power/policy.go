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

// Policy is a pairing of CPU and GPU frequency-scaling governors. The
// strings are written verbatim to the kernel's governor files.
type Policy struct {
	CPU string
	GPU string
}

// Idle is the policy applied whenever no emulator is running. Menu browsing
// doesn't need clock speed, it needs battery life.
var Idle = Policy{CPU: "powersave", GPU: "powersave"}

func (pol Policy) String() string {
	return pol.CPU + "/" + pol.GPU
}
