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

// Package raster turns the video areas of the memory image into a pixel
// buffer.
//
// Render() is a read of the memory image. It never changes the machine
// state and can be called at any point in the frame, as often or as rarely as
// the display requires.
//
// Each call clears the buffer to the fill colour, then considers the
// background layers, then draws the sprites. Sprites are drawn in the order
// they appear in the sprite table, so a sprite later in the table is drawn on
// top of an earlier one.
//
// The pixel buffer is supplied by the caller and must be exactly ScreenBytes
// long. Each pixel is four bytes, in one of two layouts chosen when the
// Rasterizer is created: ARGB or RGBA.
//
// Sprites are positioned by their top-left corner. Pixels falling past the
// right or bottom edge of the screen are not drawn.
//
// Colour index zero of every palette is transparent. A transparent pixel
// leaves the buffer untouched. Note that this is not the same as a palette
// entry that happens to be black, which is drawn normally.
//
// Sprites with the half-alpha flag are drawn with the Blend() function, which
// adds two thirds of the new colour to the existing colour.
package raster
