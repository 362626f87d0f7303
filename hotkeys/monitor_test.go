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

package hotkeys_test

import (
	"testing"
	"time"

	"github.com/holoplot/go-evdev"
	"github.com/mimiki/launcher/curated"
	"github.com/mimiki/launcher/hotkeys"
	"github.com/mimiki/launcher/test"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

type fakeDevice struct {
	queue  []hotkeys.RawEvent
	closed int
}

func (d *fakeDevice) Role() string {
	return "fake"
}

func (d *fakeDevice) ReadEvent() (hotkeys.RawEvent, bool) {
	if len(d.queue) == 0 {
		return hotkeys.RawEvent{}, false
	}
	ev := d.queue[0]
	d.queue = d.queue[1:]
	return ev, true
}

func (d *fakeDevice) Close() error {
	d.closed++
	return nil
}

func (d *fakeDevice) push(typ evdev.EvType, code evdev.EvCode, value int32) {
	d.queue = append(d.queue, hotkeys.RawEvent{Type: typ, Code: code, Value: value})
}

// fakeMachine advances the clock during Suspend(), imitating the blocking
// write to the kernel sleep state file.
type fakeMachine struct {
	clock    *fakeClock
	sleepFor time.Duration
	suspends int
}

func (m *fakeMachine) Suspend() error {
	m.suspends++
	m.clock.advance(m.sleepFor)
	return nil
}

type fakeBacklight struct {
	enabled bool
	sets    []int
}

func (bl *fakeBacklight) Enabled() bool {
	return bl.enabled
}

func (bl *fakeBacklight) Set(percent int) error {
	bl.sets = append(bl.sets, percent)
	return nil
}

type fakeMixer struct {
	ups   int
	downs int
}

func (mx *fakeMixer) VolumeUp() error {
	mx.ups++
	return nil
}

func (mx *fakeMixer) VolumeDown() error {
	mx.downs++
	return nil
}

type harness struct {
	mon     *hotkeys.Monitor
	dev     *fakeDevice
	clock   *fakeClock
	machine *fakeMachine
	back    *fakeBacklight
	mixer   *fakeMixer
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		dev:   &fakeDevice{},
		clock: &fakeClock{t: time.Unix(100000, 0)},
		back:  &fakeBacklight{enabled: true},
		mixer: &fakeMixer{},
	}
	h.machine = &fakeMachine{clock: h.clock, sleepFor: 10 * time.Second}

	mon, err := hotkeys.NewMonitor([]hotkeys.Device{h.dev}, h.machine, h.back, h.mixer)
	if err != nil {
		t.Fatal(err)
	}
	mon.Clock = h.clock.now
	h.mon = mon

	return h
}

func hasEvent(events []hotkeys.Event, typ hotkeys.EventType) bool {
	for _, ev := range events {
		if ev.Type == typ {
			return true
		}
	}
	return false
}

func TestNoDevices(t *testing.T) {
	_, err := hotkeys.NewMonitor(nil, &fakeMachine{clock: &fakeClock{}}, &fakeBacklight{}, &fakeMixer{})
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, hotkeys.NoInputDevices), true)
}

func TestShortPressSuspends(t *testing.T) {
	h := newHarness(t)

	h.dev.push(evdev.EV_KEY, evdev.KEY_POWER, 1)
	events := h.mon.Poll()
	test.Equate(t, len(events), 0)

	h.clock.advance(200 * time.Millisecond)
	h.dev.push(evdev.EV_KEY, evdev.KEY_POWER, 0)
	events = h.mon.Poll()

	test.Equate(t, h.machine.suspends, 1)
	test.Equate(t, hasEvent(events, hotkeys.EventSuspended), true)
	test.Equate(t, hasEvent(events, hotkeys.EventShutdownRequest), false)
}

func TestWakeDebounce(t *testing.T) {
	h := newHarness(t)

	// first press suspends. the fake machine sleeps for 10 seconds
	h.dev.push(evdev.EV_KEY, evdev.KEY_POWER, 1)
	h.dev.push(evdev.EV_KEY, evdev.KEY_POWER, 0)
	h.mon.Poll()
	test.Equate(t, h.machine.suspends, 1)

	// a press immediately after the wake is the bounce; it must be ignored
	h.clock.advance(100 * time.Millisecond)
	h.dev.push(evdev.EV_KEY, evdev.KEY_POWER, 1)
	h.dev.push(evdev.EV_KEY, evdev.KEY_POWER, 0)
	events := h.mon.Poll()
	test.Equate(t, h.machine.suspends, 1)
	test.Equate(t, len(events), 0)

	// once the debounce has passed, presses suspend again
	h.clock.advance(hotkeys.WakeDebounce)
	h.dev.push(evdev.EV_KEY, evdev.KEY_POWER, 1)
	h.dev.push(evdev.EV_KEY, evdev.KEY_POWER, 0)
	h.mon.Poll()
	test.Equate(t, h.machine.suspends, 2)
}

func TestLongPressShutdown(t *testing.T) {
	h := newHarness(t)

	h.dev.push(evdev.EV_KEY, evdev.KEY_POWER, 1)
	events := h.mon.Poll()
	test.Equate(t, len(events), 0)

	h.clock.advance(hotkeys.LongPressDuration)
	h.dev.push(evdev.EV_KEY, evdev.KEY_POWER, 0)
	events = h.mon.Poll()

	test.Equate(t, hasEvent(events, hotkeys.EventShutdownRequest), true)
	test.Equate(t, h.machine.suspends, 0)
}

func TestLongPressFiresWhileHeld(t *testing.T) {
	h := newHarness(t)

	// the shutdown request must not wait for the button to be released
	h.dev.push(evdev.EV_KEY, evdev.KEY_POWER, 1)
	events := h.mon.Poll()
	test.Equate(t, len(events), 0)

	h.clock.advance(hotkeys.LongPressDuration + 50*time.Millisecond)
	events = h.mon.Poll()
	test.Equate(t, hasEvent(events, hotkeys.EventShutdownRequest), true)
}

func TestLongPressIgnoresWakeDebounce(t *testing.T) {
	h := newHarness(t)

	// suspend to set the wake timestamp
	h.dev.push(evdev.EV_KEY, evdev.KEY_POWER, 1)
	h.dev.push(evdev.EV_KEY, evdev.KEY_POWER, 0)
	h.mon.Poll()
	test.Equate(t, h.machine.suspends, 1)

	// a long press started inside the debounce window still shuts down;
	// the debounce gates only the short-press suspend
	h.clock.advance(100 * time.Millisecond)
	h.dev.push(evdev.EV_KEY, evdev.KEY_POWER, 1)
	h.mon.Poll()
	h.clock.advance(hotkeys.LongPressDuration)
	h.dev.push(evdev.EV_KEY, evdev.KEY_POWER, 0)
	events := h.mon.Poll()

	test.Equate(t, hasEvent(events, hotkeys.EventShutdownRequest), true)
	test.Equate(t, h.machine.suspends, 1)
}

func TestPowerKeyRepeatIgnored(t *testing.T) {
	h := newHarness(t)

	// the kernel's key-repeat (value 2) must not restart the hold timer
	h.dev.push(evdev.EV_KEY, evdev.KEY_POWER, 1)
	h.mon.Poll()

	h.clock.advance(time.Second)
	h.dev.push(evdev.EV_KEY, evdev.KEY_POWER, 2)
	h.mon.Poll()

	h.clock.advance(time.Second)
	h.dev.push(evdev.EV_KEY, evdev.KEY_POWER, 0)
	events := h.mon.Poll()

	// total hold was two seconds, well past the threshold
	test.Equate(t, hasEvent(events, hotkeys.EventShutdownRequest), true)
}

func TestVolumeKeys(t *testing.T) {
	h := newHarness(t)

	h.dev.push(evdev.EV_KEY, evdev.KEY_VOLUMEUP, 1)
	events := h.mon.Poll()
	test.Equate(t, h.mixer.ups, 1)
	test.Equate(t, hasEvent(events, hotkeys.EventVolume), true)

	h.dev.push(evdev.EV_KEY, evdev.KEY_VOLUMEDOWN, 1)
	h.mon.Poll()
	test.Equate(t, h.mixer.downs, 1)

	// repeats and releases do not step the volume
	h.dev.push(evdev.EV_KEY, evdev.KEY_VOLUMEUP, 2)
	h.dev.push(evdev.EV_KEY, evdev.KEY_VOLUMEUP, 0)
	h.mon.Poll()
	test.Equate(t, h.mixer.ups, 1)
}

func TestBrightnessCombo(t *testing.T) {
	h := newHarness(t)

	// volume up with the mode button held steps the backlight, not the
	// volume. stepping clamps at 100%
	h.dev.push(evdev.EV_KEY, evdev.BTN_MODE, 1)
	h.dev.push(evdev.EV_KEY, evdev.KEY_VOLUMEUP, 1)
	events := h.mon.Poll()

	test.Equate(t, hasEvent(events, hotkeys.EventBrightness), true)
	test.Equate(t, h.mixer.ups, 0)
	test.Equate(t, len(h.back.sets), 1)
	test.Equate(t, h.back.sets[0], 68)

	h.dev.push(evdev.EV_KEY, evdev.KEY_VOLUMEUP, 1)
	h.dev.push(evdev.EV_KEY, evdev.KEY_VOLUMEUP, 1)
	h.dev.push(evdev.EV_KEY, evdev.KEY_VOLUMEUP, 1)
	h.mon.Poll()

	test.Equate(t, len(h.back.sets), 4)
	test.Equate(t, h.back.sets[1], 84)
	test.Equate(t, h.back.sets[2], 100)
	test.Equate(t, h.back.sets[3], 100)

	// releasing the mode button returns the keys to volume duty
	h.dev.push(evdev.EV_KEY, evdev.BTN_MODE, 0)
	h.dev.push(evdev.EV_KEY, evdev.KEY_VOLUMEUP, 1)
	h.mon.Poll()
	test.Equate(t, h.mixer.ups, 1)
	test.Equate(t, len(h.back.sets), 4)
}

func TestBrightnessFloor(t *testing.T) {
	h := newHarness(t)

	// mode key-repeat keeps the button held
	h.dev.push(evdev.EV_KEY, evdev.BTN_MODE, 1)
	h.dev.push(evdev.EV_KEY, evdev.BTN_MODE, 2)

	for i := 0; i < 5; i++ {
		h.dev.push(evdev.EV_KEY, evdev.KEY_VOLUMEDOWN, 1)
	}
	h.mon.Poll()

	// stepping down from the starting level: never fully dark
	test.Equate(t, len(h.back.sets), 5)
	test.Equate(t, h.back.sets[0], 36)
	test.Equate(t, h.back.sets[1], 20)
	test.Equate(t, h.back.sets[2], 4)
	test.Equate(t, h.back.sets[3], 4)
	test.Equate(t, h.back.sets[4], 4)
}

func TestBacklightAbsentFallsBackToVolume(t *testing.T) {
	h := newHarness(t)
	h.back.enabled = false

	h.dev.push(evdev.EV_KEY, evdev.BTN_MODE, 1)
	h.dev.push(evdev.EV_KEY, evdev.KEY_VOLUMEUP, 1)
	h.mon.Poll()

	test.Equate(t, len(h.back.sets), 0)
	test.Equate(t, h.mixer.ups, 1)
}

func TestLidSuspends(t *testing.T) {
	h := newHarness(t)

	h.dev.push(evdev.EV_SW, evdev.SW_LID, 1)
	events := h.mon.Poll()
	test.Equate(t, h.machine.suspends, 1)
	test.Equate(t, hasEvent(events, hotkeys.EventSuspended), true)

	// opening the lid does nothing
	h.dev.push(evdev.EV_SW, evdev.SW_LID, 0)
	events = h.mon.Poll()
	test.Equate(t, h.machine.suspends, 1)
	test.Equate(t, len(events), 0)
}

func TestLidSuspendArmsDebounce(t *testing.T) {
	h := newHarness(t)

	// a lid suspend updates the wake timestamp just like a power press
	h.dev.push(evdev.EV_SW, evdev.SW_LID, 1)
	h.mon.Poll()
	test.Equate(t, h.machine.suspends, 1)

	h.clock.advance(100 * time.Millisecond)
	h.dev.push(evdev.EV_KEY, evdev.KEY_POWER, 1)
	h.dev.push(evdev.EV_KEY, evdev.KEY_POWER, 0)
	h.mon.Poll()
	test.Equate(t, h.machine.suspends, 1)
}

func TestCloseIsIdempotent(t *testing.T) {
	h := newHarness(t)

	h.mon.Close()
	test.Equate(t, h.dev.closed, 1)

	h.mon.Close()
	test.Equate(t, h.dev.closed, 1)

	// a closed monitor polls cleanly and reports nothing
	events := h.mon.Poll()
	test.Equate(t, len(events), 0)
}
