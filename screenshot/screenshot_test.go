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

package screenshot_test

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/maikorhost/maikorhost/curated"
	"github.com/maikorhost/maikorhost/raster"
	"github.com/maikorhost/maikorhost/screenshot"
	"github.com/maikorhost/maikorhost/test"
	"github.com/maikorhost/maikorhost/vm/memorymap"
)

// a pixel buffer with the fill colour and a single red pixel at (1,0)
func render(t *testing.T, layout raster.Layout) []uint8 {
	t.Helper()

	mem := make([]uint8, memorymap.MemorySize)
	mem[memorymap.OriginPalettes+3] = 0xff

	// left pixel transparent, right pixel colour index 1
	mem[memorymap.OriginAtlas1] = 0x01
	spr := raster.Sprite{Enabled: true}
	e := spr.Encode()
	copy(mem[memorymap.OriginSpriteTable:], e[:])

	r, err := raster.NewRasterizer(layout)
	test.DemandSuccess(t, err)
	r.FillColour = raster.Colour{R: 0, G: 0, B: 0x80}

	pixels := raster.NewPixels()
	r.Render(mem, pixels)
	return pixels
}

func TestImage(t *testing.T) {
	red := color.RGBA{R: 0xff, A: 0xff}
	blue := color.RGBA{B: 0x80, A: 0xff}

	for _, layout := range []raster.Layout{raster.ARGB, raster.RGBA} {
		img, err := screenshot.Image(render(t, layout), layout, 1)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, img.Bounds().Dx(), memorymap.ScreenWidth)
		test.ExpectEquality(t, img.RGBAAt(0, 0), blue, layout)
		test.ExpectEquality(t, img.RGBAAt(1, 0), red, layout)

		img, err = screenshot.Image(render(t, layout), layout, 3)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, img.Bounds().Dx(), memorymap.ScreenWidth*3)
		test.ExpectEquality(t, img.Bounds().Dy(), memorymap.ScreenHeight*3)
		test.ExpectEquality(t, img.RGBAAt(2, 2), blue, layout)
		test.ExpectEquality(t, img.RGBAAt(3, 0), red, layout)
		test.ExpectEquality(t, img.RGBAAt(5, 2), red, layout)
		test.ExpectEquality(t, img.RGBAAt(6, 0), blue, layout)
	}

	_, err := screenshot.Image(raster.NewPixels(), raster.RGBA, 0)
	test.ExpectSuccess(t, curated.Is(err, screenshot.InvalidScale))
	_, err = screenshot.Image(raster.NewPixels(), raster.RGBA, screenshot.MaxScale+1)
	test.ExpectSuccess(t, curated.Is(err, screenshot.InvalidScale))
}

func TestSave(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "shot.png")
	test.DemandSuccess(t, screenshot.Save(fn, render(t, raster.ARGB), raster.ARGB, 2))

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), memorymap.ScreenWidth*2)

	r, g, b, a := img.At(2, 0).RGBA()
	test.ExpectEquality(t, [4]uint32{r, g, b, a}, [4]uint32{0xffff, 0, 0, 0xffff})

	err = screenshot.Save(filepath.Join(t.TempDir(), "missing", "shot.png"), raster.NewPixels(), raster.RGBA, 1)
	test.ExpectSuccess(t, curated.Is(err, screenshot.SaveError))
}
