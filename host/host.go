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

package host

import (
	"time"

	"github.com/maikorhost/maikorhost/audio"
	"github.com/maikorhost/maikorhost/curated"
	"github.com/maikorhost/maikorhost/input"
	"github.com/maikorhost/maikorhost/logger"
	"github.com/maikorhost/maikorhost/overrides"
	"github.com/maikorhost/maikorhost/prefs"
	"github.com/maikorhost/maikorhost/random"
	"github.com/maikorhost/maikorhost/raster"
	"github.com/maikorhost/maikorhost/vm"
	"github.com/maikorhost/maikorhost/vm/memorymap"
)

// SetupError is the pattern of errors returned by NewHost().
const SetupError = "host: %v"

// FrameDuration is the length of the window in which at most one work unit
// is run.
const FrameDuration = 16 * time.Millisecond

// Listener is notified of events in the host. Both functions are called on
// the goroutine that called Execute().
type Listener interface {
	// a save bank has been written to and any persisted copy is stale
	SaveInvalidated(bank int)

	// the interpreter has halted. the error is nil if the interpreter halted
	// normally
	Halted(err error)
}

// Host drives a vm.Core. It is not safe for concurrent use except for the
// audio bridge, which is shared with the audio device.
type Host struct {
	core  vm.Core
	lst   Listener
	prefs *Preferences

	raster    *raster.Rasterizer
	latch     *input.Latch
	overrides *overrides.Table
	rand      *random.Random
	audio     *audio.Bridge

	// the current time. replaced for testing
	now func() time.Time

	// Execute() does nothing until this time
	deadline time.Time

	// cycles in the most recent work unit
	frameCycles uint

	// the halt has been reported and the audio bridge stopped
	halted bool
}

// NewHost is the preferred method of initialisation for the Host type.
//
// A pixel layout preference that is missing or ambiguous is returned as an
// error, as is an audio device that can not be used.
func NewHost(core vm.Core, lst Listener, p *Preferences) (*Host, error) {
	be, err := audio.NewBackend(p.AudioBackend.String(), p.WAVFile.String())
	if err != nil {
		return nil, curated.Errorf(SetupError, err)
	}
	return newHost(core, lst, p, be, time.Now)
}

func newHost(core vm.Core, lst Listener, p *Preferences, be audio.Backend, now func() time.Time) (*Host, error) {
	layout, err := raster.ParseLayout(p.Layout.String())
	if err != nil {
		return nil, curated.Errorf(SetupError, err)
	}

	h := &Host{
		core:      core,
		lst:       lst,
		prefs:     p,
		latch:     input.NewLatch(),
		overrides: overrides.NewTable(),
		rand:      random.NewRandom(),
		now:       now,
	}

	h.raster, err = raster.NewRasterizer(layout)
	if err != nil {
		return nil, curated.Errorf(SetupError, err)
	}
	h.raster.FillColour = raster.ColourFromInt(p.FillColour.Get().(int))
	p.FillColour.SetHookPost(func(v prefs.Value) error {
		h.raster.FillColour = raster.ColourFromInt(v.(int))
		return nil
	})

	h.audio, err = audio.NewBridge(be)
	if err != nil {
		return nil, curated.Errorf(SetupError, err)
	}

	if spk, ok := core.Sound().(vm.Speaker); ok {
		spk.SetPlayer(h.audio)
	}

	h.deadline = h.now()
	h.audio.Start()

	return h, nil
}

// Execute runs a single work unit if the current frame window has been
// reached. Otherwise it does nothing. Execute also does nothing if the
// interpreter has halted.
func (h *Host) Execute() {
	if h.halted {
		return
	}

	if h.now().Before(h.deadline) {
		return
	}
	h.deadline = h.deadline.Add(FrameDuration)

	st := h.core.State()
	budget := h.prefs.budget()

	var cycles uint
	for cycles < budget && !st.Halted {
		c := h.core.Step()
		cycles += c

		h.core.Sound().DoCycle(uint32(c))

		if h.latch.Check(st.Memory) {
			h.core.TriggerInterrupt(vm.IRQController)
		}

		st.Memory[memorymap.Rand] = h.rand.Byte()
		h.overrides.Apply(st.Memory)

		h.checkSaves(st)
	}

	h.frameCycles = cycles

	if st.Halted {
		h.halt(st.Error)
	}
}

// report and clear any save-dirty flags
func (h *Host) checkSaves(st *vm.State) {
	for bank, dirty := range st.SaveDirty {
		if dirty {
			st.SaveDirty[bank] = false
			h.lst.SaveInvalidated(bank)
		}
	}
}

func (h *Host) halt(err error) {
	h.halted = true
	if err != nil {
		logger.Logf(logger.Allow, "host", "halted: %v", err)
	} else {
		logger.Log(logger.Allow, "host", "halted")
	}
	h.lst.Halted(err)
	h.audio.Stop()
}

// Reset the interpreter state. The next call to Execute() runs a work unit
// immediately. The code area of memory is not touched.
func (h *Host) Reset() {
	h.audio.Stop()

	st := h.core.State()
	clear(st.Registers[:])
	st.Registers[vm.RegFlags] = vm.FlagsDefault
	clear(st.Memory[memorymap.OriginRAM : memorymap.MemtopRAM+1])
	for _, b := range st.RAMBanks {
		clear(b)
	}
	st.Error = nil
	st.PC = 0
	st.Halted = false
	st.OpsExecuted = 0
	st.CyclesExecuted = 0
	clear(st.SaveDirty[:])
	h.core.Sound().Reset()
	h.rand.Reset()

	h.halted = false
	h.frameCycles = 0
	h.deadline = h.now()

	h.audio.Start()
}

// Close stops the audio bridge. The host should not be used after Close().
func (h *Host) Close() {
	h.audio.Stop()
}

// Render the current memory image to the pixel buffer. The buffer must be
// exactly raster.ScreenBytes long.
func (h *Host) Render(pixels []uint8) {
	h.raster.Render(h.core.State().Memory, pixels)
}

// SetButton changes the state of a button. The change reaches the input
// register during the next work unit.
func (h *Host) SetButton(b input.Button, pressed bool) {
	h.latch.SetButton(b, pressed)
}

// SetFillColour changes the colour of the screen before anything is drawn.
func (h *Host) SetFillColour(c raster.Colour) error {
	return h.prefs.FillColour.Set(int(c.R)<<16 | int(c.G)<<8 | int(c.B))
}

// Overrides returns the memory override table.
func (h *Host) Overrides() *overrides.Table {
	return h.overrides
}

// State returns the state of the interpreter.
func (h *Host) State() *vm.State {
	return h.core.State()
}

// FrameCycles returns the number of cycles run in the most recent work unit.
func (h *Host) FrameCycles() uint {
	return h.frameCycles
}

// Halted returns true if the interpreter has halted and Reset() has not yet
// been called.
func (h *Host) Halted() bool {
	return h.halted
}

// Audio returns the audio bridge.
func (h *Host) Audio() *audio.Bridge {
	return h.audio
}

// Layout returns the pixel layout expected by Render().
func (h *Host) Layout() raster.Layout {
	return h.raster.Layout()
}
