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
	"path/filepath"
	"strings"

	"github.com/mimiki/launcher/logger"
)

// sysfs locations of the governor controls on the device. the GPU node name
// is the devfreq entry for the RK3566's Mali.
const (
	cpuGovernorGlob = "/sys/devices/system/cpu/cpu[0-9]*/cpufreq/scaling_governor"
	gpuGovernorPath = "/sys/class/devfreq/fde60000.gpu/governor"
)

// Governors writes frequency-scaling policies to the kernel.
type Governors struct {
	// glob matching the per-core cpufreq governor files
	CPUGlob string

	// the devfreq governor file for the GPU
	GPUPath string
}

// NewGovernors is the preferred method of initialisation for the Governors
// type.
func NewGovernors() *Governors {
	return &Governors{
		CPUGlob: cpuGovernorGlob,
		GPUPath: gpuGovernorPath,
	}
}

// Apply writes the policy to every CPU core and to the GPU. Writes are
// best-effort. A core that refuses the governor is logged and skipped, the
// remaining cores are still written.
func (gov *Governors) Apply(pol Policy) {
	cores, err := filepath.Glob(gov.CPUGlob)
	if err != nil || len(cores) == 0 {
		logger.Log("power", "no cpu governor controls found")
	}

	for _, p := range cores {
		if err := os.WriteFile(p, []byte(pol.CPU), 0o644); err != nil {
			logger.Logf("power", "cpu governor: %v", err)
		}
	}

	if err := os.WriteFile(gov.GPUPath, []byte(pol.GPU), 0o644); err != nil {
		logger.Logf("power", "gpu governor: %v", err)
	}

	logger.Logf("power", "governors => %s", pol)
}

// Read returns the current governor content for every CPU core and the GPU.
// Missing surfaces are returned as empty strings.
func (gov *Governors) Read() (cpu []string, gpu string) {
	cores, _ := filepath.Glob(gov.CPUGlob)
	for _, p := range cores {
		b, err := os.ReadFile(p)
		if err != nil {
			cpu = append(cpu, "")
			continue
		}
		cpu = append(cpu, strings.TrimSpace(string(b)))
	}

	if b, err := os.ReadFile(gov.GPUPath); err == nil {
		gpu = strings.TrimSpace(string(b))
	}

	return cpu, gpu
}
