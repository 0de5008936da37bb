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

import "github.com/maikorhost/maikorhost/vm/memorymap"

// Sprite is the decoded form of a sprite table record.
type Sprite struct {
	X     int
	Y     int
	ID    int
	Atlas int

	Enabled   bool
	FlipH     bool
	FlipV     bool
	HalfAlpha bool

	Palette int

	// order is decoded for completeness. the draw order is the order of the
	// sprite table
	Order int
}

// masks for the attribute byte of a sprite record
const (
	spriteEnabled   = 0x80
	spriteFlipH     = 0x40
	spriteFlipV     = 0x20
	spriteHalfAlpha = 0x10
	spritePalette   = 0x0c
	spriteOrder     = 0x03
)

// DecodeSprite from the five bytes of a sprite table record.
func DecodeSprite(data []uint8) Sprite {
	attr := data[4]
	return Sprite{
		X:         int(data[0]),
		Y:         int(data[1]),
		ID:        int(data[2]) & (memorymap.AtlasTiles - 1),
		Atlas:     int(data[3]),
		Enabled:   attr&spriteEnabled == spriteEnabled,
		FlipH:     attr&spriteFlipH == spriteFlipH,
		FlipV:     attr&spriteFlipV == spriteFlipV,
		HalfAlpha: attr&spriteHalfAlpha == spriteHalfAlpha,
		Palette:   int(attr&spritePalette) >> 2,
		Order:     int(attr & spriteOrder),
	}
}

// Encode the sprite as the five bytes of a sprite table record.
func (spr Sprite) Encode() [memorymap.SizeSprite]uint8 {
	var attr uint8
	if spr.Enabled {
		attr |= spriteEnabled
	}
	if spr.FlipH {
		attr |= spriteFlipH
	}
	if spr.FlipV {
		attr |= spriteFlipV
	}
	if spr.HalfAlpha {
		attr |= spriteHalfAlpha
	}
	attr |= uint8(spr.Palette<<2) & spritePalette
	attr |= uint8(spr.Order) & spriteOrder
	return [memorymap.SizeSprite]uint8{uint8(spr.X), uint8(spr.Y), uint8(spr.ID), uint8(spr.Atlas), attr}
}

// LayerHeader is the decoded form of a layer header record.
type LayerHeader struct {
	XOffset int
	YOffset int
	Visible bool
}

// DecodeLayerHeader from the three bytes of a layer header record.
func DecodeLayerHeader(data []uint8) LayerHeader {
	return LayerHeader{
		XOffset: int(data[0]),
		YOffset: int(data[1]),
		Visible: data[2]&0x01 == 0x01,
	}
}
