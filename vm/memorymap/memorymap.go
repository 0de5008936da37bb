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

package memorymap

// MemorySize is the size of the memory image.
const MemorySize = 0x10000

// Screen dimensions in pixels.
const (
	ScreenWidth  = 240
	ScreenHeight = 160
	ScreenPixels = ScreenWidth * ScreenHeight
)

// Tiles are 8x8 pixels, packed two pixels per byte.
const (
	TileWidth       = 8
	TileHeight      = 8
	AtlasTileWidth  = TileWidth / 2
	AtlasTileHeight = TileHeight
	AtlasTileBytes  = AtlasTileWidth * AtlasTileHeight
)

// Sizes of tables and records.
const (
	SizeRAM        = 0x2000
	SizeRAMBank    = 0x1000
	SizeAtlas      = 0x1000
	AtlasTiles     = SizeAtlas / AtlasTileBytes
	AtlasCount     = 4
	SizeSprite     = 5
	SpriteCount    = 128
	PaletteColours = 16
	PaletteCount   = 4
	SizePalette    = PaletteColours * 3
	SizeLayerHdr   = 3
	LayerCount     = 3
	LayerColumns   = ScreenWidth / TileWidth
	LayerRows      = ScreenHeight / TileHeight
	SizeLayer      = LayerColumns * LayerRows
	SizeInput      = 2
	SizeRand       = 1
)

// The origin and memory top for each area of memory.
const (
	OriginCode         = uint16(0x0000)
	MemtopCode         = uint16(0x7fff)
	OriginRAM          = uint16(0x8000)
	MemtopRAM          = OriginRAM + SizeRAM - 1
	OriginRAMBank      = uint16(0xa000)
	MemtopRAMBank      = OriginRAMBank + SizeRAMBank - 1
	OriginAtlas1       = uint16(0xb000)
	OriginAtlas2       = uint16(0xc000)
	OriginAtlas3       = uint16(0xd000)
	OriginAtlas4       = uint16(0xe000)
	MemtopAtlas        = OriginAtlas4 + SizeAtlas - 1
	OriginSpriteTable  = uint16(0xf000)
	MemtopSpriteTable  = OriginSpriteTable + SpriteCount*SizeSprite - 1
	OriginPalettes     = uint16(0xf280)
	MemtopPalettes     = OriginPalettes + PaletteCount*SizePalette - 1
	OriginLayerHeaders = uint16(0xf340)
	MemtopLayerHeaders = OriginLayerHeaders + LayerCount*SizeLayerHdr - 1
	OriginLayers       = uint16(0xf350)
	MemtopLayers       = OriginLayers + LayerCount*SizeLayer - 1
	Input              = uint16(0xff00)
	Rand               = uint16(0xff02)
)

// Atlases lists the origin of each atlas bank, indexed by atlas id.
var Atlases = [AtlasCount]uint16{OriginAtlas1, OriginAtlas2, OriginAtlas3, OriginAtlas4}

// Area represents the different areas of memory.
type Area int

// List of valid Area values.
const (
	Undefined Area = iota
	Code
	RAM
	RAMBank
	Atlas
	SpriteTable
	Palettes
	LayerHeaders
	Layers
	IO
)

func (a Area) String() string {
	switch a {
	case Code:
		return "Code"
	case RAM:
		return "RAM"
	case RAMBank:
		return "RAM Bank"
	case Atlas:
		return "Atlas"
	case SpriteTable:
		return "Sprite Table"
	case Palettes:
		return "Palettes"
	case LayerHeaders:
		return "Layer Headers"
	case Layers:
		return "Layers"
	case IO:
		return "IO"
	}
	return "undefined"
}

// MapAddress returns the area the address belongs to.
func MapAddress(address uint16) Area {
	switch {
	case address <= MemtopCode:
		return Code
	case address >= OriginRAM && address <= MemtopRAM:
		return RAM
	case address >= OriginRAMBank && address <= MemtopRAMBank:
		return RAMBank
	case address >= OriginAtlas1 && address <= MemtopAtlas:
		return Atlas
	case address >= OriginSpriteTable && address <= MemtopSpriteTable:
		return SpriteTable
	case address >= OriginPalettes && address <= MemtopPalettes:
		return Palettes
	case address >= OriginLayerHeaders && address <= MemtopLayerHeaders:
		return LayerHeaders
	case address >= OriginLayers && address <= MemtopLayers:
		return Layers
	case address >= Input && address < Rand+SizeRand:
		return IO
	}
	return Undefined
}
