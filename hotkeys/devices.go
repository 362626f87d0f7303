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

package hotkeys

import (
	"strings"

	"github.com/holoplot/go-evdev"
	"github.com/mimiki/launcher/curated"
	"github.com/mimiki/launcher/logger"
)

// the devices we care about are matched by fragments of their kernel device
// name. the names come from the device tree so they are stable across boots
// but the /dev/input/eventN numbering is not.
var deviceRoles = []struct {
	fragment string
	role     string
}{
	{fragment: "joypad", role: "gamepad"},
	{fragment: "pwrkey", role: "power button"},
	{fragment: "gpio-keys", role: "volume/lid keys"},
}

// evdevDevice adapts an evdev input device to the Device interface.
type evdevDevice struct {
	dev  *evdev.InputDevice
	role string
}

func (d *evdevDevice) Role() string {
	return d.role
}

// ReadEvent returns the next queued event. The device is in non-blocking
// mode so a drained queue reads as an error; we treat any read error as
// "nothing more for now" and try again on the next poll.
func (d *evdevDevice) ReadEvent() (RawEvent, bool) {
	ev, err := d.dev.ReadOne()
	if err != nil {
		return RawEvent{}, false
	}
	return RawEvent{Type: ev.Type, Code: ev.Code, Value: ev.Value}, true
}

func (d *evdevDevice) Close() error {
	return d.dev.Close()
}

// OpenDevices finds and opens the hotkey input devices, in non-blocking
// mode. One device per role; the first match wins.
//
// Roles with no matching device are logged and skipped. No devices at all is
// an error (sentinel: NoInputDevices).
func OpenDevices() ([]Device, error) {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return nil, curated.Errorf("hotkeys: %v", err)
	}

	var devices []Device
	found := make(map[string]bool)

	for _, p := range paths {
		name := strings.ToLower(p.Name)

		for _, r := range deviceRoles {
			if found[r.role] || !strings.Contains(name, r.fragment) {
				continue
			}

			dev, err := evdev.Open(p.Path)
			if err != nil {
				logger.Logf("hotkeys", "%s: %v", r.role, err)
				continue
			}
			if err := dev.NonBlock(); err != nil {
				logger.Logf("hotkeys", "%s: %v", r.role, err)
				dev.Close()
				continue
			}

			devices = append(devices, &evdevDevice{dev: dev, role: r.role})
			found[r.role] = true
			logger.Logf("hotkeys", "%s: %s (%s)", r.role, p.Name, p.Path)
			break // deviceRoles loop
		}
	}

	for _, r := range deviceRoles {
		if !found[r.role] {
			logger.Logf("hotkeys", "no %s device found", r.role)
		}
	}

	if len(devices) == 0 {
		return nil, curated.Errorf(NoInputDevices)
	}

	return devices, nil
}
