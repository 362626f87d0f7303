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
	"time"

	"github.com/holoplot/go-evdev"
	"github.com/mimiki/launcher/curated"
	"github.com/mimiki/launcher/logger"
)

// NoInputDevices is returned by NewMonitor when there is not a single device
// to watch. Sentinel for use with curated.Is().
const NoInputDevices = "no input devices found"

// how long the power button must be held for a shutdown request.
const LongPressDuration = 1750 * time.Millisecond

// how soon after a wake-up a short power press is ignored. without this the
// press that wakes the machine can bounce and immediately suspend it again.
const WakeDebounce = 500 * time.Millisecond

// brightness levels are percentages. stepping never leaves the screen fully
// dark and never asks for more than 100%.
const (
	brightnessStart = 52
	brightnessStep  = 16
	brightnessMin   = 4
	brightnessMax   = 100
)

// EventType classifies the semantic events returned by Poll().
type EventType int

// List of valid EventType values.
const (
	// the power button was held past LongPressDuration
	EventShutdownRequest EventType = iota

	// the machine suspended to RAM and has since woken
	EventSuspended

	// the backlight was stepped. Value is the new percentage
	EventBrightness

	// the master volume was stepped. Value is the direction (1 or -1)
	EventVolume
)

// Event is a single semantic event from the Monitor.
type Event struct {
	Type  EventType
	Value int
}

// RawEvent is one evdev event as read from a Device.
type RawEvent struct {
	Type  evdev.EvType
	Code  evdev.EvCode
	Value int32
}

// Device is a non-blocking source of raw input events. Implementations must
// return ok == false once the queue is drained rather than wait for more.
type Device interface {
	// Role describes the device for logging
	Role() string

	// ReadEvent returns the next queued event. ok is false when there is
	// nothing more to read
	ReadEvent() (ev RawEvent, ok bool)

	Close() error
}

// Suspender puts the machine to sleep. The call must not return until the
// machine has woken again.
type Suspender interface {
	Suspend() error
}

// BacklightControl steps the panel brightness.
type BacklightControl interface {
	Enabled() bool
	Set(percent int) error
}

// VolumeControl steps the audio volume.
type VolumeControl interface {
	VolumeUp() error
	VolumeDown() error
}

// Monitor turns raw button events into semantic events. It owns all hotkey
// timing state: the power button hold timer, the wake debounce and the
// current brightness level.
//
// Monitor functions must be called from a single goroutine.
type Monitor struct {
	// Clock is consulted for all timing decisions. Replaceable in tests;
	// defaults to time.Now
	Clock func() time.Time

	devices   []Device
	machine   Suspender
	backlight BacklightControl
	mixer     VolumeControl

	modeHeld       bool
	powerHeld      bool
	powerPressedAt time.Time
	lastWake       time.Time
	brightness     int

	// reused between calls to Poll() to avoid an allocation per frame
	events []Event
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
//
// An empty device list is a failure: a kiosk with no power button cannot be
// shut down cleanly. A partial device list is fine, missing devices simply
// never produce events.
func NewMonitor(devices []Device, machine Suspender, backlight BacklightControl, mixer VolumeControl) (*Monitor, error) {
	if len(devices) == 0 {
		return nil, curated.Errorf(NoInputDevices)
	}

	mon := &Monitor{
		Clock:      time.Now,
		devices:    devices,
		machine:    machine,
		backlight:  backlight,
		mixer:      mixer,
		brightness: brightnessStart,
	}

	return mon, nil
}

// Poll drains every queued event from every device and returns the semantic
// events that resulted. It never blocks.
//
// The returned slice is reused by the next call to Poll().
func (mon *Monitor) Poll() []Event {
	mon.events = mon.events[:0]

	for _, d := range mon.devices {
		for {
			ev, ok := d.ReadEvent()
			if !ok {
				break // read loop
			}
			mon.process(ev)
		}
	}

	// the shutdown request must not wait for the button to be released.
	// note that this check is independent of the wake debounce; a press
	// that is ignored for suspend purposes still counts towards shutdown
	if mon.powerHeld && mon.Clock().Sub(mon.powerPressedAt) >= LongPressDuration {
		mon.events = append(mon.events, Event{Type: EventShutdownRequest})
	}

	return mon.events
}

// Close every device and reset the hotkey timers. Safe to call more than
// once.
func (mon *Monitor) Close() {
	for _, d := range mon.devices {
		if err := d.Close(); err != nil {
			logger.Logf("hotkeys", "closing %s: %v", d.Role(), err)
		}
	}
	mon.devices = nil

	mon.modeHeld = false
	mon.powerHeld = false
	mon.powerPressedAt = time.Time{}
	mon.lastWake = time.Time{}
}

func (mon *Monitor) process(ev RawEvent) {
	switch ev.Type {
	case evdev.EV_KEY:
		switch ev.Code {
		case evdev.BTN_MODE:
			// value 2 is the kernel's key-repeat; the button is still down
			mon.modeHeld = ev.Value == 1 || ev.Value == 2

		case evdev.KEY_POWER:
			mon.powerKey(ev.Value)

		case evdev.KEY_VOLUMEUP:
			if ev.Value == 1 {
				mon.volumeKey(1)
			}

		case evdev.KEY_VOLUMEDOWN:
			if ev.Value == 1 {
				mon.volumeKey(-1)
			}
		}

	case evdev.EV_SW:
		if ev.Code == evdev.SW_LID && ev.Value == 1 {
			logger.Log("hotkeys", "lid closed")
			mon.suspend()
		}
	}
}

func (mon *Monitor) powerKey(value int32) {
	switch value {
	case 1:
		if !mon.powerHeld {
			mon.powerHeld = true
			mon.powerPressedAt = mon.Clock()
		}

	case 0:
		if !mon.powerHeld {
			return
		}
		mon.powerHeld = false

		held := mon.Clock().Sub(mon.powerPressedAt)
		if held >= LongPressDuration {
			mon.events = append(mon.events, Event{Type: EventShutdownRequest})
			return
		}

		// short press. the press that wakes the machine from suspend is
		// seen here too, so ignore presses that arrive too soon after a
		// wake
		if mon.Clock().Sub(mon.lastWake) < WakeDebounce {
			logger.Log("hotkeys", "power press debounced")
			return
		}

		mon.suspend()
	}
}

func (mon *Monitor) suspend() {
	if err := mon.machine.Suspend(); err != nil {
		logger.Log("hotkeys", err.Error())
		return
	}

	// Suspend() blocks until resume so this timestamp is the wake time
	mon.lastWake = mon.Clock()
	mon.events = append(mon.events, Event{Type: EventSuspended})
}

func (mon *Monitor) volumeKey(direction int) {
	if mon.modeHeld && mon.backlight.Enabled() {
		mon.stepBrightness(direction)
		return
	}

	var err error
	if direction > 0 {
		err = mon.mixer.VolumeUp()
	} else {
		err = mon.mixer.VolumeDown()
	}
	if err != nil {
		logger.Log("hotkeys", err.Error())
		return
	}

	mon.events = append(mon.events, Event{Type: EventVolume, Value: direction})
}

func (mon *Monitor) stepBrightness(direction int) {
	b := mon.brightness + direction*brightnessStep
	if b > brightnessMax {
		b = brightnessMax
	}
	if b < brightnessMin {
		b = brightnessMin
	}
	mon.brightness = b

	if err := mon.backlight.Set(b); err != nil {
		logger.Log("hotkeys", err.Error())
		return
	}

	logger.Logf("hotkeys", "brightness %d%%", b)
	mon.events = append(mon.events, Event{Type: EventBrightness, Value: b})
}
