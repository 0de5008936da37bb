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

package raster

import (
	"github.com/maikorhost/maikorhost/curated"
	"github.com/maikorhost/maikorhost/vm/memorymap"
)

// Sentinel error patterns. Both indicate a defect in the program or its data
// and are raised with panic().
const (
	InvalidAtlas  = "raster: invalid atlas bank: %d"
	InvalidBuffer = "raster: pixel buffer is %d bytes, expected %d"
)

// PixelSize is the number of bytes in one pixel.
const PixelSize = 4

// ScreenBytes is the required length of a pixel buffer.
const ScreenBytes = memorymap.ScreenPixels * PixelSize

// Transparent is the colour index that is never drawn.
const Transparent = 0

// Rasterizer produces a pixel buffer from the memory image.
type Rasterizer struct {
	layout Layout
	format formatter

	// the colour of the screen before anything is drawn
	FillColour Colour
}

// NewRasterizer is the preferred method of initialisation for the Rasterizer
// type. The layout must be ARGB or RGBA.
func NewRasterizer(layout Layout) (*Rasterizer, error) {
	r := &Rasterizer{layout: layout}
	switch layout {
	case ARGB:
		r.format = formatARGB
	case RGBA:
		r.format = formatRGBA
	case LayoutUnset:
		return nil, curated.Errorf(NoLayout)
	default:
		return nil, curated.Errorf(InvalidLayout, int(layout))
	}
	return r, nil
}

// Layout returns the pixel layout used by the rasterizer.
func (r *Rasterizer) Layout() Layout {
	return r.layout
}

// NewPixels returns a pixel buffer of the correct size.
func NewPixels() []uint8 {
	return make([]uint8, ScreenBytes)
}

// Render the memory image to the pixel buffer.
func (r *Rasterizer) Render(mem []uint8, pixels []uint8) {
	if len(pixels) != ScreenBytes {
		panic(curated.Errorf(InvalidBuffer, len(pixels), ScreenBytes))
	}
	r.clear(pixels)
	r.renderBackgrounds(mem, pixels)
	r.renderSprites(mem, pixels)
}

func (r *Rasterizer) clear(pixels []uint8) {
	for i := 0; i < len(pixels); i += PixelSize {
		r.format(pixels[i:i+PixelSize], r.FillColour, false)
	}
}

func (r *Rasterizer) renderBackgrounds(mem []uint8, pixels []uint8) {
	for l := range memorymap.LayerCount {
		a := int(memorymap.OriginLayerHeaders) + l*memorymap.SizeLayerHdr
		hdr := DecodeLayerHeader(mem[a : a+memorymap.SizeLayerHdr])
		if !hdr.Visible {
			continue
		}
		c := int(memorymap.OriginLayers) + l*memorymap.SizeLayer
		r.renderLayer(mem[c:c+memorymap.SizeLayer], hdr, pixels)
	}
}

// renderLayer is where the content of a visible layer is composited. The
// content is a LayerColumns by LayerRows map of tiles.
//
// TODO: draw the layer tile map once the format of a tile map entry (tile id,
// atlas and palette) is fixed. until then visible layers draw nothing.
func (r *Rasterizer) renderLayer(content []uint8, hdr LayerHeader, pixels []uint8) {
}

func (r *Rasterizer) renderSprites(mem []uint8, pixels []uint8) {
	for i := range memorymap.SpriteCount {
		a := int(memorymap.OriginSpriteTable) + i*memorymap.SizeSprite
		spr := DecodeSprite(mem[a : a+memorymap.SizeSprite])
		if spr.Enabled {
			r.renderSprite(mem, pixels, spr)
		}
	}
}

// atlasOrigin returns the address of the first byte of the sprite's tile.
// panics if the atlas bank is not valid
func atlasOrigin(spr Sprite) int {
	if spr.Atlas < 0 || spr.Atlas >= memorymap.AtlasCount {
		panic(curated.Errorf(InvalidAtlas, spr.Atlas))
	}
	return int(memorymap.Atlases[spr.Atlas]) + spr.ID*memorymap.AtlasTileBytes
}

func (r *Rasterizer) renderSprite(mem []uint8, pixels []uint8, spr Sprite) {
	origin := atlasOrigin(spr)

	for i := range memorymap.AtlasTileBytes {
		col := i % memorymap.AtlasTileWidth
		row := i / memorymap.AtlasTileWidth

		// each byte is two horizontally adjacent pixels. the high nibble is
		// the leftmost pixel
		b := mem[origin+i]
		left := b >> 4
		right := b & 0x0f

		x := col * 2
		y := row

		// mirroring a pair of pixels also swaps their order
		if spr.FlipH {
			x = memorymap.TileWidth - 2 - x
			left, right = right, left
		}
		if spr.FlipV {
			y = memorymap.TileHeight - 1 - y
		}

		r.plot(mem, pixels, spr, spr.X+x, spr.Y+y, left)
		r.plot(mem, pixels, spr, spr.X+x+1, spr.Y+y, right)
	}
}

// plot a single pixel of a sprite. transparent pixels and pixels outside
// the screen are skipped
func (r *Rasterizer) plot(mem []uint8, pixels []uint8, spr Sprite, x int, y int, idx uint8) {
	if idx == Transparent {
		return
	}
	if x < 0 || y < 0 || x >= memorymap.ScreenWidth || y >= memorymap.ScreenHeight {
		return
	}
	p := (x + y*memorymap.ScreenWidth) * PixelSize
	r.format(pixels[p:p+PixelSize], PaletteColour(mem, spr.Palette, idx), spr.HalfAlpha)
}

// PaletteColour returns the colour at the index of the palette.
func PaletteColour(mem []uint8, palette int, idx uint8) Colour {
	a := int(memorymap.OriginPalettes) + palette*memorymap.SizePalette + int(idx)*3
	return Colour{R: mem[a], G: mem[a+1], B: mem[a+2]}
}
