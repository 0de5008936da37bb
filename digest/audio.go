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
	"math"

	"github.com/maikorhost/maikorhost/vm"
)

// the length of the buffer isn't really important but it needs to be at least
// sha1.Size bytes in length
const audioBufferLength = 1024 + sha1.Size

// the previous digest value is stuffed into the start of the buffer
const audioBufferStart = sha1.Size

// Audio generates a SHA-1 value of an audio stream. It implements the
// vm.Player interface so it can be attached to a sound chip in place of the
// audio bridge.
type Audio struct {
	digest     [sha1.Size]byte
	buffer     []uint8
	bufferCt   int
	sampleRate int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio(sampleRate int) *Audio {
	return &Audio{
		buffer:     make([]uint8, audioBufferLength),
		bufferCt:   audioBufferStart,
		sampleRate: sampleRate,
	}
}

// Hash implements the Digest interface. Samples that have not been flushed
// are not included in the hash.
func (dig *Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Audio) ResetDigest() {
	clear(dig.digest[:])
	dig.bufferCt = audioBufferStart
}

// SampleRate implements the vm.Player interface.
func (dig *Audio) SampleRate() int {
	return dig.sampleRate
}

// Play implements the vm.Player interface. Samples are quantised to 16 bits
// before being added to the digest.
func (dig *Audio) Play(left []float32, right []float32) {
	n := min(len(left), len(right))
	for i := range n {
		dig.add(quantise(left[i]))
		dig.add(quantise(right[i]))
	}
}

func quantise(s float32) int16 {
	s = max(-1, min(1, s))
	return int16(math.Round(float64(s) * math.MaxInt16))
}

func (dig *Audio) add(v int16) {
	dig.buffer[dig.bufferCt] = uint8(v)
	dig.buffer[dig.bufferCt+1] = uint8(v >> 8)
	dig.bufferCt += 2
	if dig.bufferCt >= audioBufferLength {
		dig.Flush()
	}
}

// Flush adds any pending samples to the digest.
func (dig *Audio) Flush() {
	if dig.bufferCt == audioBufferStart {
		return
	}
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = audioBufferStart
}

// Chain returns a player that sends samples to both the player and the audio
// digest. The sample rate is the rate of the player.
func (dig *Audio) Chain(player vm.Player) vm.Player {
	return &chained{player: player, dig: dig}
}

type chained struct {
	player vm.Player
	dig    *Audio
}

func (c *chained) Play(left []float32, right []float32) {
	c.player.Play(left, right)
	c.dig.Play(left, right)
}

func (c *chained) SampleRate() int {
	return c.player.SampleRate()
}
