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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/maikorhost/maikorhost/raster"
)

// Video generates a SHA-1 value for each frame passed to it.
type Video struct {
	digest [sha1.Size]byte

	// the previous digest followed by the pixels of the frame
	pixels []uint8

	frames int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{
		pixels: make([]uint8, sha1.Size+raster.ScreenBytes),
	}
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
	dig.frames = 0
}

// Frames returns the number of frames in the digest.
func (dig *Video) Frames() int {
	return dig.frames
}

// Frame adds a pixel buffer to the digest. Buffers of the wrong length are
// ignored.
func (dig *Video) Frame(pixels []uint8) {
	if len(pixels) != raster.ScreenBytes {
		return
	}

	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the frame data
	copy(dig.pixels, dig.digest[:])
	copy(dig.pixels[sha1.Size:], pixels)
	dig.digest = sha1.Sum(dig.pixels)
	dig.frames++
}
