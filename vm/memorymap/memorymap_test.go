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

package memorymap_test

import (
	"testing"

	"github.com/maikorhost/maikorhost/test"
	"github.com/maikorhost/maikorhost/vm/memorymap"
)

type region struct {
	name   string
	origin int
	memtop int
}

func TestRegionsDoNotOverlap(t *testing.T) {
	regions := []region{
		{"code", int(memorymap.OriginCode), int(memorymap.MemtopCode)},
		{"ram", int(memorymap.OriginRAM), int(memorymap.MemtopRAM)},
		{"ram bank", int(memorymap.OriginRAMBank), int(memorymap.MemtopRAMBank)},
		{"atlas", int(memorymap.OriginAtlas1), int(memorymap.MemtopAtlas)},
		{"sprites", int(memorymap.OriginSpriteTable), int(memorymap.MemtopSpriteTable)},
		{"palettes", int(memorymap.OriginPalettes), int(memorymap.MemtopPalettes)},
		{"layer headers", int(memorymap.OriginLayerHeaders), int(memorymap.MemtopLayerHeaders)},
		{"layers", int(memorymap.OriginLayers), int(memorymap.MemtopLayers)},
		{"input", int(memorymap.Input), int(memorymap.Input) + memorymap.SizeInput - 1},
		{"rand", int(memorymap.Rand), int(memorymap.Rand) + memorymap.SizeRand - 1},
	}

	for i, a := range regions {
		test.ExpectSuccess(t, a.origin <= a.memtop, a.name)
		test.ExpectSuccess(t, a.memtop < memorymap.MemorySize, a.name)
		for _, b := range regions[i+1:] {
			overlap := a.origin <= b.memtop && b.origin <= a.memtop
			test.ExpectFailure(t, overlap, a.name, b.name)
		}
	}
}

func TestAtlases(t *testing.T) {
	for i, o := range memorymap.Atlases {
		test.ExpectEquality(t, memorymap.MapAddress(o), memorymap.Atlas, i)
		test.ExpectEquality(t, memorymap.MapAddress(o+memorymap.SizeAtlas-1), memorymap.Atlas, i)
	}
	test.ExpectEquality(t, memorymap.AtlasTiles, 128)
}

func TestMapAddress(t *testing.T) {
	test.ExpectEquality(t, memorymap.MapAddress(0x0000), memorymap.Code)
	test.ExpectEquality(t, memorymap.MapAddress(0x8000), memorymap.RAM)
	test.ExpectEquality(t, memorymap.MapAddress(memorymap.OriginSpriteTable), memorymap.SpriteTable)
	test.ExpectEquality(t, memorymap.MapAddress(memorymap.OriginPalettes), memorymap.Palettes)
	test.ExpectEquality(t, memorymap.MapAddress(memorymap.Input), memorymap.IO)
	test.ExpectEquality(t, memorymap.MapAddress(memorymap.Rand), memorymap.IO)
	test.ExpectEquality(t, memorymap.MapAddress(0xfff0), memorymap.Undefined)
	test.ExpectEquality(t, memorymap.MapAddress(0xfff0).String(), "undefined")
}
