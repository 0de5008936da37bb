// This file is part of maikorhost.
//
// maikorhost is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// maikorhost is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with maikorhost.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/maikorhost/maikorhost/curated"
	"github.com/maikorhost/maikorhost/digest"
	"github.com/maikorhost/maikorhost/display"
	"github.com/maikorhost/maikorhost/host"
	"github.com/maikorhost/maikorhost/limiter"
	"github.com/maikorhost/maikorhost/logger"
	"github.com/maikorhost/maikorhost/modalflag"
	"github.com/maikorhost/maikorhost/paths"
	"github.com/maikorhost/maikorhost/prefs"
	"github.com/maikorhost/maikorhost/raster"
	"github.com/maikorhost/maikorhost/screenshot"
	"github.com/maikorhost/maikorhost/script"
	"github.com/maikorhost/maikorhost/statsview"
	"github.com/maikorhost/maikorhost/version"
	"github.com/maikorhost/maikorhost/vm"
	"github.com/maikorhost/maikorhost/vm/memorymap"
)

// error patterns used by the command line
const (
	ImageRequired = "%s mode requires a memory image"
	ImageTooLarge = "memory image is %d bytes, the maximum is %d"
	ImageError    = "memory image: %v"
	FramesError   = "headless mode requires a positive number of frames"
)

// exit values
const (
	exitOK       = 0
	exitParse    = 10
	exitModeFail = 20
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch the program with the arguments. returns the exit value
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "SNAPSHOT", "VERSION")
	log := md.AddBool("log", false, "echo log to stderr")
	cmdPrefs := md.AddString("prefs", "", "preferences for this session (key::value; key::value)")
	stats := md.AddBool("statsview", false, "launch statistics server (requires statsview build tag)")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParse
	}

	if *log {
		logger.EchoToTerminal(os.Stderr)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch()
		} else {
			fmt.Fprintln(output, "* statsview not available in this build")
		}
	}

	prefs.PushCommandLineStack(*cmdPrefs)
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "main", "unused preferences: %s", unused)
		}
	}()

	switch md.Mode() {
	case "RUN":
		err = run(md, output)
	case "SNAPSHOT":
		err = snapshot(md, output)
	case "VERSION":
		fmt.Fprintln(output, version.String())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %v\n", md, err)
		return exitModeFail
	}

	return exitOK
}

// listener reports host events to the log
type listener struct {
	halted bool
}

func (lst *listener) SaveInvalidated(bank int) {
	logger.Logf(logger.Allow, "main", "save bank %d invalidated", bank)
}

func (lst *listener) Halted(err error) {
	lst.halted = true
	if err != nil {
		logger.Logf(logger.Allow, "main", "halted with error: %v", err)
	}
}

// loads the memory image named by the first remaining argument into a new core
func loadCore(md *modalflag.Modes) (*vm.IdleCore, error) {
	if len(md.RemainingArgs()) == 0 {
		return nil, curated.Errorf(ImageRequired, md.Mode())
	}

	data, err := os.ReadFile(md.GetArg(0))
	if err != nil {
		return nil, curated.Errorf(ImageError, err)
	}
	if len(data) > memorymap.MemorySize {
		return nil, curated.Errorf(ImageTooLarge, len(data), memorymap.MemorySize)
	}

	core := vm.NewIdleCore(vm.NewSilentSound(nil))
	core.Load(data)

	return core, nil
}

// prepares the host and runs the script, if there is one
func prepareHost(core vm.Core, lst host.Listener, p *host.Preferences, scriptFile string) (*host.Host, error) {
	h, err := host.NewHost(core, lst, p)
	if err != nil {
		return nil, err
	}

	if scriptFile != "" {
		ctl := script.NewController(h)
		defer ctl.Close()
		if err := ctl.RunFile(scriptFile); err != nil {
			h.Close()
			return nil, err
		}
	}

	return h, nil
}

func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	scale := md.AddInt("scale", 3, "window scale")
	scriptFile := md.AddString("script", "", "lua script to run before starting")
	headless := md.AddBool("headless", false, "run without a window")
	frames := md.AddInt("frames", 0, "number of frames to run in headless mode")
	shot := md.AddString("screenshot", "", "save the final frame of headless mode to file")
	dig := md.AddBool("digest", false, "print a digest of every frame rendered in headless mode")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *headless && *frames <= 0 {
		return curated.Errorf(FramesError)
	}

	core, err := loadCore(md)
	if err != nil {
		return err
	}

	pref, err := host.NewPreferences()
	if err != nil {
		return err
	}

	lst := &listener{}
	h, err := prepareHost(core, lst, pref, *scriptFile)
	if err != nil {
		return err
	}
	defer h.Close()

	if !*headless {
		if err := display.NewWindow(h, version.ApplicationName, *scale).Run(); err != nil {
			return err
		}
		return pref.Save()
	}

	lim, err := limiter.NewLimiter(int(time.Second / host.FrameDuration))
	if err != nil {
		return err
	}

	pixels := raster.NewPixels()

	var video *digest.Video
	var sound *digest.Audio
	if *dig {
		video = digest.NewVideo()
		if spk, ok := core.Sound().(vm.Speaker); ok {
			sound = digest.NewAudio(h.Audio().SampleRate())
			spk.SetPlayer(sound.Chain(h.Audio()))
		}
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

done:
	for i := 0; i < *frames && !lst.halted; i++ {
		select {
		case <-intChan:
			fmt.Fprintln(output, "* interrupted")
			break done
		default:
		}
		lim.Wait()
		h.Execute()
		if video != nil {
			h.Render(pixels)
			video.Frame(pixels)
		}
	}

	fmt.Fprintf(output, "pc=%#04x ops=%d cycles=%d\n", core.State().PC, core.State().OpsExecuted, core.State().CyclesExecuted)
	if video != nil {
		fmt.Fprintf(output, "digest=%s frames=%d\n", video.Hash(), video.Frames())
	}
	if sound != nil {
		sound.Flush()
		fmt.Fprintf(output, "audio=%s\n", sound.Hash())
	}

	if *shot != "" {
		h.Render(pixels)
		if err := screenshot.Save(*shot, pixels, h.Layout(), *scale); err != nil {
			return err
		}
	}

	return pref.Save()
}

func snapshot(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	out := md.AddString("o", "", "output file (default is a unique name in the resource path)")
	scale := md.AddInt("scale", 1, "image scale")
	scriptFile := md.AddString("script", "", "lua script to run before rendering")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	core, err := loadCore(md)
	if err != nil {
		return err
	}

	pref, err := host.NewPreferences()
	if err != nil {
		return err
	}

	// a snapshot never plays audio
	_ = pref.AudioBackend.Set("none")

	h, err := prepareHost(core, &listener{}, pref, *scriptFile)
	if err != nil {
		return err
	}
	defer h.Close()

	// a single work unit applies any overrides set by the script and latches
	// the input and RNG registers
	h.Execute()

	fn := *out
	if fn == "" {
		fn, err = paths.ResourcePath("snapshots", paths.UniqueFilename("snapshot", "", "png"))
		if err != nil {
			return err
		}
	}

	pixels := raster.NewPixels()
	h.Render(pixels)
	if err := screenshot.Save(fn, pixels, h.Layout(), *scale); err != nil {
		return err
	}

	fmt.Fprintf(output, "snapshot saved to %s\n", fn)

	return nil
}
