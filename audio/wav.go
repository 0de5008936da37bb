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
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// bit depth of the WAV file
const wavBitDepth = 16

// WAV is a backend that writes audio to a file instead of a device. Samples
// are taken at the rate a device would take them and gaps in the queue are
// written as silence, so the file runs in real time.
//
// Every session truncates the file.
type WAV struct {
	Filename string
}

func (w *WAV) String() string {
	return "wav"
}

// Negotiate implements the Backend interface. The preferred rate is always
// accepted.
func (w *WAV) Negotiate(preferred int) (int, error) {
	if w.Filename == "" {
		return 0, os.ErrInvalid
	}
	return preferred, nil
}

// Open implements the Backend interface.
func (w *WAV) Open(rate int, fill FillFunc) (Stream, error) {
	f, err := os.Create(w.Filename)
	if err != nil {
		return nil, err
	}

	frames := pumpFrames(rate)
	stm := &wavStream{
		f:    f,
		enc:  wav.NewEncoder(f, rate, wavBitDepth, 2, 1),
		fill: fill,
		buf:  make([]float32, frames*2),
		ints: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: 2, SampleRate: rate},
			Data:           make([]int, frames*2),
			SourceBitDepth: wavBitDepth,
		},
	}

	return stm, nil
}

type wavStream struct {
	f    *os.File
	enc  *wav.Encoder
	fill FillFunc
	buf  []float32
	ints *goaudio.IntBuffer
}

func (s *wavStream) Pump() error {
	clear(s.buf)
	s.fill(s.buf)

	const scale = 1<<(wavBitDepth-1) - 1
	for i, v := range s.buf {
		v = max(-1.0, min(1.0, v))
		s.ints.Data[i] = int(v * scale)
	}

	return s.enc.Write(s.ints)
}

func (s *wavStream) Close() error {
	if err := s.enc.Close(); err != nil {
		_ = s.f.Close()
		return err
	}
	return s.f.Close()
}
