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
	"encoding/binary"
	"math"

	"github.com/veandco/go-sdl2/sdl"
)

// the number of sample frames in the SDL device buffer
const sdlBufferFrames = 1024

// the amount of audio (in pump intervals) the SDL queue is kept topped up to
const sdlQueueDepth = 3

// bytes in a single stereo float32 frame
const frameBytes = 8

// SDL is a backend using SDL2's queued audio.
type SDL struct {
	initialised bool
}

func (s *SDL) String() string {
	return "sdl"
}

func (s *SDL) init() error {
	if s.initialised {
		return nil
	}
	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		return err
	}
	s.initialised = true
	return nil
}

func (s *SDL) spec(rate int) *sdl.AudioSpec {
	return &sdl.AudioSpec{
		Freq:     int32(rate),
		Format:   sdl.AUDIO_F32LSB,
		Channels: 2,
		Samples:  sdlBufferFrames,
	}
}

// Negotiate implements the Backend interface. If the device does not support
// the preferred rate SDL is allowed to choose the rate.
func (s *SDL) Negotiate(preferred int) (int, error) {
	if err := s.init(); err != nil {
		return 0, err
	}

	var actual sdl.AudioSpec
	id, err := sdl.OpenAudioDevice("", false, s.spec(preferred), &actual, sdl.AUDIO_ALLOW_FREQUENCY_CHANGE)
	if err != nil {
		return 0, err
	}
	sdl.CloseAudioDevice(id)

	return int(actual.Freq), nil
}

// Open implements the Backend interface.
func (s *SDL) Open(rate int, fill FillFunc) (Stream, error) {
	if err := s.init(); err != nil {
		return nil, err
	}

	var actual sdl.AudioSpec
	id, err := sdl.OpenAudioDevice("", false, s.spec(rate), &actual, 0)
	if err != nil {
		return nil, err
	}

	frames := pumpFrames(rate)
	stm := &sdlStream{
		id:     id,
		fill:   fill,
		buf:    make([]float32, frames*2),
		data:   make([]uint8, frames*frameBytes),
		target: uint32(frames * frameBytes * sdlQueueDepth),
	}

	sdl.PauseAudioDevice(id, false)

	return stm, nil
}

type sdlStream struct {
	id   sdl.AudioDeviceID
	fill FillFunc
	buf  []float32
	data []uint8

	// the number of bytes the device queue is topped up to
	target uint32
}

func (s *sdlStream) Pump() error {
	for sdl.GetQueuedAudioSize(s.id) < s.target {
		n := s.fill(s.buf)
		if n == 0 {
			return nil
		}
		for i, v := range s.buf[:n*2] {
			binary.LittleEndian.PutUint32(s.data[i*4:], math.Float32bits(v))
		}
		if err := sdl.QueueAudio(s.id, s.data[:n*frameBytes]); err != nil {
			return err
		}
	}
	return nil
}

func (s *sdlStream) Close() error {
	sdl.PauseAudioDevice(s.id, true)
	sdl.ClearQueuedAudio(s.id)
	sdl.CloseAudioDevice(s.id)
	return nil
}
