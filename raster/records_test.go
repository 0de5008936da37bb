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

package raster_test

import (
	"testing"

	"github.com/maikorhost/maikorhost/raster"
	"github.com/maikorhost/maikorhost/test"
)

func TestDecodeSprite(t *testing.T) {
	spr := raster.DecodeSprite([]uint8{10, 20, 0x85, 3, 0b1101_1110})
	test.ExpectEquality(t, spr, raster.Sprite{
		X:         10,
		Y:         20,
		ID:        0x05,
		Atlas:     3,
		Enabled:   true,
		FlipH:     true,
		FlipV:     false,
		HalfAlpha: true,
		Palette:   3,
		Order:     2,
	})
}

func TestDecodeLayerHeader(t *testing.T) {
	hdr := raster.DecodeLayerHeader([]uint8{4, 8, 0x01})
	test.ExpectEquality(t, hdr, raster.LayerHeader{XOffset: 4, YOffset: 8, Visible: true})

	hdr = raster.DecodeLayerHeader([]uint8{0, 0, 0xfe})
	test.ExpectFailure(t, hdr.Visible)
}
