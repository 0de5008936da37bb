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

package audio

import (
	"fmt"
	"strings"

	"github.com/maikorhost/maikorhost/curated"
)

// FillFunc is called by a stream to take samples from the queue. The buffer
// is interleaved stereo. The return value is the number of sample pairs
// written to the start of the buffer.
type FillFunc func(out []float32) int

// Backend is an audio device capable of playing interleaved stereo float32
// samples.
type Backend interface {
	fmt.Stringer

	// Negotiate the stream with the device. Returns the sample rate the
	// device will play at, which might not be the preferred rate.
	Negotiate(preferred int) (int, error)

	// Open a stream at the negotiated rate. The stream is playing when Open()
	// returns.
	Open(rate int, fill FillFunc) (Stream, error)
}

// Stream is an open audio stream.
type Stream interface {
	Close() error
}

// Pumper is implemented by streams that must have samples pushed to them.
// Pump() is called at regular intervals by the Bridge worker, on the worker's
// goroutine.
type Pumper interface {
	Pump() error
}

// List of backend names accepted by NewBackend().
var Backends = []string{"sdl", "oto", "portaudio", "wav", "none"}

// NewBackend returns the named backend. The wavFile argument is only used by
// the wav backend.
func NewBackend(name string, wavFile string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sdl":
		return &SDL{}, nil
	case "oto":
		return &Oto{}, nil
	case "portaudio":
		return &PortAudio{}, nil
	case "wav":
		return &WAV{Filename: wavFile}, nil
	case "none":
		return &None{}, nil
	}
	return nil, curated.Errorf(UnknownBackend, name)
}

// number of sample pairs in one pump interval at the sample rate
func pumpFrames(rate int) int {
	return rate * int(pumpInterval.Milliseconds()) / 1000
}

// sample rates tried when a device does not support the preferred rate,
// highest first
var commonRates = []int{192000, 96000, 88200, 48000, 44100, 32000, 22050, 16000, 11025, 8000}

// the preferred rate if it is supported, otherwise the highest supported
// common rate. returns false if no rate is supported
func fallbackRate(preferred int, supported func(rate int) bool) (int, bool) {
	if supported(preferred) {
		return preferred, true
	}
	for _, r := range commonRates {
		if supported(r) {
			return r, true
		}
	}
	return 0, false
}
