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

package random

import (
	"math/rand/v2"
	"time"
)

// the base seed for all random numbers
var baseSeed uint64

func init() {
	baseSeed = uint64(time.Now().UnixNano())
}

// Random is a random number generator.
type Random struct {
	rnd *rand.Rand

	// use zero seed rather than the random base seed. must be set before the
	// first random number is requested
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom() *Random {
	return &Random{}
}

func (r *Random) source() *rand.Rand {
	if r.rnd == nil {
		seed := baseSeed
		if r.ZeroSeed {
			seed = 0
		}
		r.rnd = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
	return r.rnd
}

// Byte returns a random byte.
func (r *Random) Byte() uint8 {
	return uint8(r.source().Uint32())
}

// Reset the generator. The next number will be the start of a new sequence.
func (r *Random) Reset() {
	r.rnd = nil
}
