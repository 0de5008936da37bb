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
	"strings"

	"github.com/maikorhost/maikorhost/curated"
)

// Sentinel error patterns for pixel layout selection.
const (
	NoLayout          = "raster: no pixel layout selected"
	InvalidLayout     = "raster: invalid pixel layout: %v"
	ConflictingLayout = "raster: more than one pixel layout selected: %v"
)

// Layout is the order of the four channels of a pixel.
type Layout int

// List of valid Layout values. LayoutUnset is the zero value and is not a
// usable layout.
const (
	LayoutUnset Layout = iota
	ARGB
	RGBA
)

func (l Layout) String() string {
	switch l {
	case ARGB:
		return "ARGB"
	case RGBA:
		return "RGBA"
	}
	return "unset"
}

// ParseLayout converts a string to a Layout. Exactly one layout must be
// named. More than one layout can be named by separating them with a comma or
// a vertical bar, which is always an error.
func ParseLayout(s string) (Layout, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '|' || r == ' '
	})

	var l Layout
	for _, f := range fields {
		var n Layout
		switch strings.ToUpper(f) {
		case "ARGB":
			n = ARGB
		case "RGBA":
			n = RGBA
		default:
			return LayoutUnset, curated.Errorf(InvalidLayout, f)
		}
		if l != LayoutUnset && l != n {
			return LayoutUnset, curated.Errorf(ConflictingLayout, s)
		}
		l = n
	}

	if l == LayoutUnset {
		return LayoutUnset, curated.Errorf(NoLayout)
	}

	return l, nil
}

// Colour is an RGB triple. Alpha is never stored, it is supplied by the pixel
// formatter.
type Colour struct {
	R, G, B uint8
}

// ColourFromInt converts a 0xRRGGBB value to a Colour.
func ColourFromInt(v int) Colour {
	return Colour{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

// Blend adds two thirds of the incoming channel value to the existing value,
// saturating at 255. The division is truncated before the multiplication.
func Blend(existing uint8, incoming uint8) uint8 {
	v := uint16(existing) + uint16(incoming/3*2)
	if v > 0xff {
		return 0xff
	}
	return uint8(v)
}

// formatter writes a colour to the four bytes of a pixel
type formatter func(px []uint8, c Colour, halfAlpha bool)

func formatARGB(px []uint8, c Colour, halfAlpha bool) {
	px[0] = 0xff
	if halfAlpha {
		px[1] = Blend(px[1], c.R)
		px[2] = Blend(px[2], c.G)
		px[3] = Blend(px[3], c.B)
		return
	}
	px[1] = c.R
	px[2] = c.G
	px[3] = c.B
}

func formatRGBA(px []uint8, c Colour, halfAlpha bool) {
	if halfAlpha {
		px[0] = Blend(px[0], c.R)
		px[1] = Blend(px[1], c.G)
		px[2] = Blend(px[2], c.B)
	} else {
		px[0] = c.R
		px[1] = c.G
		px[2] = c.B
	}
	px[3] = 0xff
}

// ToRGBA copies a pixel buffer in the layout to dst, reordering the channels
// so that dst is in the RGBA layout. The buffers must be the same length.
func ToRGBA(dst []uint8, src []uint8, layout Layout) {
	if layout != ARGB {
		copy(dst, src)
		return
	}
	for i := 0; i+PixelSize <= len(src); i += PixelSize {
		dst[i] = src[i+1]
		dst[i+1] = src[i+2]
		dst[i+2] = src[i+3]
		dst[i+3] = src[i]
	}
}
