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
	"fmt"
	"time"
)

// the menu redraws at a fixed cadence. ten frames per second is plenty for a
// list that only changes in response to button presses.
const refreshRate = 10

type limiter struct {
	pulse *time.Ticker
}

func newLimiter(framesPerSecond int) *limiter {
	dur, _ := time.ParseDuration(fmt.Sprintf("%fs", 1.0/float64(framesPerSecond)))

	return &limiter{
		pulse: time.NewTicker(dur),
	}
}

// wait for the next frame tick. the loop regularly stalls for a long time, on
// a suspend or for the length of an emulator session; missed ticks are
// dropped, not replayed, so the loop resumes at the normal cadence.
func (lim *limiter) wait() {
	<-lim.pulse.C
}
