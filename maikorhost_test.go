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
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/maikorhost/maikorhost/audio"
	"github.com/maikorhost/maikorhost/digest"
	"github.com/maikorhost/maikorhost/raster"
	"github.com/maikorhost/maikorhost/test"
	"github.com/maikorhost/maikorhost/version"
	"github.com/maikorhost/maikorhost/vm/memorymap"
)

// prepares a clean resource directory and writes a memory image showing a
// single red pixel at (1,0). returns the filename of the image
func prepare(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)
	test.DemandSuccess(t, os.Mkdir(".maikorhost", 0700))

	mem := make([]uint8, memorymap.MemorySize)
	mem[memorymap.OriginPalettes+3] = 0xff
	mem[memorymap.OriginAtlas1] = 0x01
	spr := raster.Sprite{Enabled: true}
	e := spr.Encode()
	copy(mem[memorymap.OriginSpriteTable:], e[:])

	fn := filepath.Join(dir, "image.bin")
	test.DemandSuccess(t, os.WriteFile(fn, mem, 0600))
	return fn
}

func expectRedPixel(t *testing.T, fn string) {
	t.Helper()

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), memorymap.ScreenWidth)
	test.ExpectEquality(t, img.Bounds().Dy(), memorymap.ScreenHeight)

	r, g, b, _ := img.At(1, 0).RGBA()
	test.ExpectEquality(t, color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 0xff}, color.RGBA{R: 0xff, A: 0xff})
	r, g, b, _ = img.At(0, 0).RGBA()
	test.ExpectEquality(t, r|g|b, 0)
}

func TestVersion(t *testing.T) {
	w := &test.CaptureWriter{}
	test.ExpectEquality(t, launch([]string{"VERSION"}, w), exitOK)
	test.ExpectSuccess(t, strings.Contains(w.String(), version.ApplicationName))
}

func TestHelp(t *testing.T) {
	w := &test.CaptureWriter{}
	test.ExpectEquality(t, launch([]string{"-help"}, w), exitOK)
	test.ExpectSuccess(t, strings.Contains(w.String(), "RUN"))
}

func TestBadFlag(t *testing.T) {
	w := &test.CaptureWriter{}
	test.ExpectEquality(t, launch([]string{"-nosuchflag"}, w), exitParse)
}

func TestMissingImage(t *testing.T) {
	prepare(t)

	w := &test.CaptureWriter{}
	test.ExpectEquality(t, launch([]string{"SNAPSHOT"}, w), exitModeFail)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "* error in SNAPSHOT mode"))

	w.Clear()
	test.ExpectEquality(t, launch([]string{"SNAPSHOT", "no_such_file.bin"}, w), exitModeFail)
}

func TestImageTooLarge(t *testing.T) {
	prepare(t)
	test.DemandSuccess(t, os.WriteFile("large.bin", make([]uint8, memorymap.MemorySize+1), 0600))

	w := &test.CaptureWriter{}
	test.ExpectEquality(t, launch([]string{"SNAPSHOT", "large.bin"}, w), exitModeFail)
}

func TestSnapshot(t *testing.T) {
	fn := prepare(t)
	out := filepath.Join(t.TempDir(), "out.png")

	w := &test.CaptureWriter{}
	test.ExpectEquality(t, launch([]string{"SNAPSHOT", "-o", out, fn}, w), exitOK)
	expectRedPixel(t, out)
}

func TestSnapshotScript(t *testing.T) {
	fn := prepare(t)
	out := filepath.Join(t.TempDir(), "out.png")

	// override the red component of palette colour 1 with zero and set a
	// green component instead
	lua := filepath.Join(t.TempDir(), "green.lua")
	src := fmt.Sprintf("poke(%d, 0)\npoke(%d, 0xff)\n", memorymap.OriginPalettes+3, memorymap.OriginPalettes+4)
	test.DemandSuccess(t, os.WriteFile(lua, []byte(src), 0600))

	w := &test.CaptureWriter{}
	test.ExpectEquality(t, launch([]string{"SNAPSHOT", "-o", out, "-script", lua, fn}, w), exitOK)

	f, err := os.Open(out)
	test.DemandSuccess(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	test.DemandSuccess(t, err)

	r, g, _, _ := img.At(1, 0).RGBA()
	test.ExpectEquality(t, r>>8, 0)
	test.ExpectEquality(t, g>>8, 0xff)
}

func TestHeadless(t *testing.T) {
	fn := prepare(t)
	out := filepath.Join(t.TempDir(), "final.png")

	w := &test.CaptureWriter{}
	args := []string{"-prefs", "audio.backend::none", "RUN", "-headless", "-frames", "2", "-scale", "1", "-screenshot", out, fn}
	test.ExpectEquality(t, launch(args, w), exitOK)
	test.ExpectSuccess(t, strings.Contains(w.String(), "cycles="))
	expectRedPixel(t, out)

	// preferences are saved on a clean exit
	data, err := os.ReadFile(filepath.Join(".maikorhost", "preferences"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "host.cycleBudget :: 100000"))
	test.ExpectSuccess(t, strings.Contains(string(data), "audio.backend :: none"))
}

func TestHeadlessWithoutFrames(t *testing.T) {
	fn := prepare(t)

	w := &test.CaptureWriter{}
	args := []string{"-prefs", "audio.backend::none", "RUN", "-headless", fn}
	test.ExpectEquality(t, launch(args, w), exitModeFail)
}

func TestHeadlessDigest(t *testing.T) {
	fn := prepare(t)

	// returns the video and audio digests printed by a headless run
	digestOf := func() (string, string) {
		w := &test.CaptureWriter{}
		args := []string{"-prefs", "audio.backend::none", "RUN", "-headless", "-frames", "3", "-digest", fn}
		test.ExpectEquality(t, launch(args, w), exitOK)

		var video, sound string
		for _, l := range strings.Split(w.String(), "\n") {
			if d, ok := strings.CutPrefix(l, "digest="); ok {
				video = d
			}
			if d, ok := strings.CutPrefix(l, "audio="); ok {
				sound = d
			}
		}
		if video == "" || sound == "" {
			t.Fatalf("missing digest in output: %s", w.String())
		}
		return video, sound
	}

	// the output is the same for every execution of the same image
	videoA, soundA := digestOf()
	videoB, soundB := digestOf()
	test.ExpectEquality(t, videoA, videoB)
	test.ExpectEquality(t, soundA, soundB)

	// samples from the sound chip reached the audio digest
	test.ExpectInequality(t, soundA, digest.NewAudio(audio.PreferredSampleRate).Hash())
}
