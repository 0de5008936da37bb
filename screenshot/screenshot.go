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

package screenshot

import (
	"image"
	"image/png"
	"os"

	"github.com/maikorhost/maikorhost/curated"
	"github.com/maikorhost/maikorhost/raster"
	"github.com/maikorhost/maikorhost/vm/memorymap"

	"golang.org/x/image/draw"
)

// Sentinel error patterns.
const (
	InvalidScale = "screenshot: invalid scale: %d"
	SaveError    = "screenshot: %v"
)

// MaxScale is the largest scaling factor accepted by Image() and Save().
const MaxScale = 8

// Image converts a pixel buffer in the layout to an image, scaled by the
// factor. Scaling uses nearest neighbour so that pixels stay sharp.
func Image(pixels []uint8, layout raster.Layout, scale int) (*image.RGBA, error) {
	if scale < 1 || scale > MaxScale {
		return nil, curated.Errorf(InvalidScale, scale)
	}

	src := image.NewRGBA(image.Rect(0, 0, memorymap.ScreenWidth, memorymap.ScreenHeight))
	raster.ToRGBA(src.Pix, pixels, layout)

	if scale == 1 {
		return src, nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, memorymap.ScreenWidth*scale, memorymap.ScreenHeight*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	return dst, nil
}

// Save the pixel buffer as a PNG file.
func Save(filename string, pixels []uint8, layout raster.Layout, scale int) error {
	img, err := Image(pixels, layout, scale)
	if err != nil {
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(SaveError, err)
	}

	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return curated.Errorf(SaveError, err)
	}

	if err := f.Close(); err != nil {
		return curated.Errorf(SaveError, err)
	}

	return nil
}
