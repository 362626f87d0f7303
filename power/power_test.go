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

package power_test

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/mimiki/launcher/power"
	"github.com/mimiki/launcher/test"
)

// fakeGovernors builds a Governors instance backed by a temporary sysfs-like
// tree with the requested number of CPU cores.
func fakeGovernors(t *testing.T, cores int) *power.Governors {
	t.Helper()

	dir := t.TempDir()

	for i := 0; i < cores; i++ {
		p := filepath.Join(dir, "cpu"+strconv.Itoa(i), "cpufreq")
		if err := os.MkdirAll(p, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(p, "scaling_governor"), []byte("schedutil"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	if err := os.WriteFile(filepath.Join(dir, "governor"), []byte("simple_ondemand"), 0o644); err != nil {
		t.Fatal(err)
	}

	gov := power.NewGovernors()
	gov.CPUGlob = filepath.Join(dir, "cpu[0-9]*", "cpufreq", "scaling_governor")
	gov.GPUPath = filepath.Join(dir, "governor")
	return gov
}

func TestGovernorsApply(t *testing.T) {
	gov := fakeGovernors(t, 4)

	gov.Apply(power.Policy{CPU: "performance", GPU: "performance"})

	cpu, gpu := gov.Read()
	test.Equate(t, len(cpu), 4)
	for _, c := range cpu {
		test.Equate(t, c, "performance")
	}
	test.Equate(t, gpu, "performance")

	gov.Apply(power.Idle)

	cpu, gpu = gov.Read()
	for _, c := range cpu {
		test.Equate(t, c, "powersave")
	}
	test.Equate(t, gpu, "powersave")
}

func TestGovernorsMissingSurface(t *testing.T) {
	gov := power.NewGovernors()
	gov.CPUGlob = filepath.Join(t.TempDir(), "cpu[0-9]*", "cpufreq", "scaling_governor")
	gov.GPUPath = filepath.Join(t.TempDir(), "governor")

	// applying to a machine with no governor surfaces must not panic or
	// error, it is merely logged
	gov.Apply(power.Idle)

	cpu, gpu := gov.Read()
	test.Equate(t, len(cpu), 0)
	test.Equate(t, gpu, "")
}

func TestBacklightScaling(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "brightness")
	if err := os.WriteFile(p, []byte("0"), 0o644); err != nil {
		t.Fatal(err)
	}

	bl := power.NewBacklight()
	bl.Path = p

	test.Equate(t, bl.Enabled(), true)

	// the default starting level used by the hotkey monitor
	err := bl.Set(52)
	test.ExpectedSuccess(t, err)

	b, err := os.ReadFile(p)
	test.ExpectedSuccess(t, err)
	test.Equate(t, string(b), "132")

	// values beyond 100% must never reach the raw file
	err = bl.Set(150)
	test.ExpectedSuccess(t, err)

	b, err = os.ReadFile(p)
	test.ExpectedSuccess(t, err)
	test.Equate(t, string(b), "255")

	err = bl.Set(-10)
	test.ExpectedSuccess(t, err)

	b, err = os.ReadFile(p)
	test.ExpectedSuccess(t, err)
	test.Equate(t, string(b), "0")
}

func TestBacklightAbsent(t *testing.T) {
	bl := power.NewBacklight()
	bl.Path = filepath.Join(t.TempDir(), "no-such-file")

	test.Equate(t, bl.Enabled(), false)
}

func TestSuspendWrite(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "state")
	if err := os.WriteFile(p, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}

	m := power.NewMachine()
	m.StatePath = p

	err := m.Suspend()
	test.ExpectedSuccess(t, err)

	b, err := os.ReadFile(p)
	test.ExpectedSuccess(t, err)
	test.Equate(t, string(b), "mem")
}
