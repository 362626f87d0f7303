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

package performance

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/mimiki/launcher/curated"
)

// Profile is used to specify the type of profile to be generated by
// RunProfiler().
type Profile int

// List of defined profiles.
const (
	ProfileNone Profile = iota
	ProfileCPU
	ProfileMem
	ProfileAll
)

// ParseProfileString converts the string representation of a profile type to
// the corresponding Profile value.
func ParseProfileString(s string) (Profile, error) {
	switch strings.ToUpper(s) {
	case "NONE":
		return ProfileNone, nil
	case "CPU":
		return ProfileCPU, nil
	case "MEM":
		return ProfileMem, nil
	case "ALL":
		return ProfileAll, nil
	}
	return ProfileNone, curated.Errorf("performance: unrecognised profile: %s", s)
}

// RunProfiler runs the supplied function, generating the profile types
// requested by the profile argument. Profile files are written to the working
// directory with the tag as the filename prefix.
func RunProfiler(profile Profile, tag string, run func() error) error {
	if profile == ProfileCPU || profile == ProfileAll {
		f, err := os.Create(fmt.Sprintf("%s_cpu.profile", tag))
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		err = pprof.StartCPUProfile(f)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	err := run()
	if err != nil {
		return err
	}

	if profile == ProfileMem || profile == ProfileAll {
		f, err := os.Create(fmt.Sprintf("%s_mem.profile", tag))
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}

		// a garbage collection immediately before the heap snapshot means the
		// profile records live allocations rather than collectable ones
		runtime.GC()

		err = pprof.WriteHeapProfile(f)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		f.Close()
	}

	return nil
}
