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

package display

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/maikorhost/maikorhost/input"
	"github.com/maikorhost/maikorhost/logger"
	"github.com/maikorhost/maikorhost/paths"
	"github.com/maikorhost/maikorhost/raster"
	"github.com/maikorhost/maikorhost/screenshot"
	"github.com/maikorhost/maikorhost/vm/memorymap"
)

// Host is the part of host.Host used by the window.
type Host interface {
	Execute()
	Render(pixels []uint8)
	Reset()
	SetButton(b input.Button, pressed bool)
	Layout() raster.Layout
	Halted() bool
}

// errQuit ends the ebiten game loop
var errQuit = errors.New("quit")

// Window is an ebiten.Game that runs a Host.
type Window struct {
	host   Host
	keys   KeyMap
	title  string
	scale  int
	paused bool
	halted bool

	// the buttons as they were on the previous tick
	buttons [input.NumButtons]bool

	pixels []uint8
	rgba   []uint8
	tex    *ebiten.Image
}

// NewWindow is the preferred method of initialisation for the Window type.
func NewWindow(host Host, title string, scale int) *Window {
	return &Window{
		host:   host,
		keys:   DefaultKeyMap(),
		title:  title,
		scale:  max(1, scale),
		pixels: raster.NewPixels(),
		rgba:   raster.NewPixels(),
	}
}

// Run opens the window and runs the host until the window is closed or the
// escape key is pressed.
func (win *Window) Run() error {
	ebiten.SetWindowTitle(win.title)
	ebiten.SetWindowSize(memorymap.ScreenWidth*win.scale, memorymap.ScreenHeight*win.scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(win)
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

// Update implements the ebiten.Game interface.
func (win *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errQuit
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		win.paused = !win.paused
		logger.Logf(logger.Allow, "display", "paused: %v", win.paused)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		win.host.Reset()
		logger.Log(logger.Allow, "display", "reset")
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		win.screenshot()
	}

	win.updateButtons(win.keys.buttons(ebiten.IsKeyPressed))

	if !win.paused {
		win.host.Execute()
	}

	if win.host.Halted() != win.halted {
		win.halted = win.host.Halted()
		if win.halted {
			ebiten.SetWindowTitle(win.title + " [halted]")
		} else {
			ebiten.SetWindowTitle(win.title)
		}
	}

	return nil
}

// pass changed buttons to the host
func (win *Window) updateButtons(b [input.NumButtons]bool) {
	for i := range b {
		if b[i] != win.buttons[i] {
			win.host.SetButton(input.Button(i), b[i])
		}
	}
	win.buttons = b
}

func (win *Window) screenshot() {
	fn, err := paths.ResourcePath("screenshots", paths.UniqueFilename("shot", "", "png"))
	if err != nil {
		logger.Log(logger.Allow, "display", err)
		return
	}
	if err := screenshot.Save(fn, win.pixels, win.host.Layout(), win.scale); err != nil {
		logger.Log(logger.Allow, "display", err)
		return
	}
	logger.Logf(logger.Allow, "display", "screenshot saved to %s", fn)
}

// Draw implements the ebiten.Game interface.
func (win *Window) Draw(screen *ebiten.Image) {
	if win.tex == nil {
		win.tex = ebiten.NewImage(memorymap.ScreenWidth, memorymap.ScreenHeight)
	}

	win.host.Render(win.pixels)
	raster.ToRGBA(win.rgba, win.pixels, win.host.Layout())
	win.tex.WritePixels(win.rgba)
	screen.DrawImage(win.tex, nil)
}

// Layout implements the ebiten.Game interface. The screen is always the size
// of the console screen and ebiten scales it to fit the window.
func (win *Window) Layout(outsideWidth int, outsideHeight int) (int, int) {
	return memorymap.ScreenWidth, memorymap.ScreenHeight
}
