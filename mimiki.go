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

package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/mimiki/launcher/catalog"
	"github.com/mimiki/launcher/gui/sdlmenu"
	"github.com/mimiki/launcher/hotkeys"
	"github.com/mimiki/launcher/logger"
	"github.com/mimiki/launcher/menu"
	"github.com/mimiki/launcher/modalflag"
	"github.com/mimiki/launcher/performance"
	"github.com/mimiki/launcher/power"
	"github.com/mimiki/launcher/session"
	"github.com/mimiki/launcher/statsview"
	"github.com/mimiki/launcher/version"
)

func init() {
	// SDL requires that it be setup and serviced from the main thread. lock
	// the main goroutine to the main thread before anything else happens.
	runtime.LockOSThread()
}

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "LIST", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "LIST":
		err = list(md)
	case "VERSION":
		err = printVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)

		// the log often has more detail about what went wrong
		logger.WriteRecent(os.Stderr)

		os.Exit(20)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	roots := md.AddString("roots", strings.Join(catalog.DefaultRoots, ":"), "colon separated list of ROM directories")
	stats := md.AddBool("stats", false, "run the statsview server")
	prof := md.AddString("profile", "none", "run with profiling: CPU, MEM, ALL")
	log := md.AddBool("log", true, "echo debugging log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	profile, err := performance.ParseProfileString(*prof)
	if err != nil {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr, false)
	} else {
		logger.SetEcho(nil, false)
	}

	if *stats {
		statsview.Launch(os.Stderr)
	}

	// the menu idles the clocks from the outset. a session raises them for
	// the duration of the emulator and the deferred restore puts them back.
	gov := power.NewGovernors()
	gov.Apply(power.Idle)

	machine := power.NewMachine()

	backlight := power.NewBacklight()
	if !backlight.Enabled() {
		logger.Log("power", "no backlight control; volume keys always adjust volume")
	}

	devices, err := hotkeys.OpenDevices()
	if err != nil {
		return err
	}

	mon, err := hotkeys.NewMonitor(devices, machine, backlight, power.NewMixer())
	if err != nil {
		return err
	}
	defer mon.Close()

	cat := catalog.Scan(catalog.Profiles(), strings.Split(*roots, ":"))

	scr, err := sdlmenu.NewSdlMenu()
	if err != nil {
		return err
	}
	defer scr.Destroy()

	logger.Log("menu", "Standing by...")

	ctrl := menu.NewController(scr, cat, mon, session.NewSupervisor(gov))

	var reason menu.Reason

	err = performance.RunProfiler(profile, "menu", func() error {
		var err error
		reason, err = ctrl.Run()
		return err
	})
	if err != nil {
		return err
	}

	if reason == menu.ReasonShutdown {
		// release the display before the power goes. the deferred teardown
		// will not run in any useful sense once poweroff is underway.
		scr.Destroy()
		return machine.PowerOff()
	}

	return nil
}

func list(md *modalflag.Modes) error {
	md.NewMode()

	roots := md.AddString("roots", strings.Join(catalog.DefaultRoots, ":"), "colon separated list of ROM directories")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cat := catalog.Scan(catalog.Profiles(), strings.Split(*roots, ":"))
	cat.Write(md.Output)

	return nil
}

func printVersion(md *modalflag.Modes) error {
	md.NewMode()

	v := md.AddBool("v", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ver, rev, _ := version.Version()
	fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, ver)
	if *v {
		fmt.Fprintf(md.Output, "  %s\n", rev)
	}

	return nil
}
