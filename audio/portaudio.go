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
	"github.com/gordonklaus/portaudio"
)

// PortAudio is a backend using the PortAudio library.
type PortAudio struct {
	initialised bool
	params      portaudio.StreamParameters
}

func (p *PortAudio) String() string {
	return "portaudio"
}

// Negotiate implements the Backend interface. If the default output device
// does not support the preferred rate, the highest supported rate is used.
// The device's default rate is used only if none of the common rates are
// supported.
func (p *PortAudio) Negotiate(preferred int) (int, error) {
	if !p.initialised {
		if err := portaudio.Initialize(); err != nil {
			return 0, err
		}
		p.initialised = true
	}

	dev, err := portaudio.DefaultOutputDevice()
	if err != nil {
		return 0, err
	}

	p.params = portaudio.HighLatencyParameters(nil, dev)
	p.params.Output.Channels = 2

	rate, ok := fallbackRate(preferred, func(rate int) bool {
		params := p.params
		params.SampleRate = float64(rate)
		return portaudio.IsFormatSupported(params, []float32{}) == nil
	})
	if ok {
		p.params.SampleRate = float64(rate)
	} else {
		p.params.SampleRate = dev.DefaultSampleRate
	}

	return int(p.params.SampleRate), nil
}

// Open implements the Backend interface.
func (p *PortAudio) Open(rate int, fill FillFunc) (Stream, error) {
	if !p.initialised {
		if _, err := p.Negotiate(rate); err != nil {
			return nil, err
		}
	}

	params := p.params
	params.SampleRate = float64(rate)

	stm, err := portaudio.OpenStream(params, func(out []float32) {
		clear(out)
		fill(out)
	})
	if err != nil {
		return nil, err
	}

	if err := stm.Start(); err != nil {
		_ = stm.Close()
		return nil, err
	}

	return &portAudioStream{stm: stm}, nil
}

type portAudioStream struct {
	stm *portaudio.Stream
}

func (s *portAudioStream) Close() error {
	if err := s.stm.Stop(); err != nil {
		_ = s.stm.Close()
		return err
	}
	return s.stm.Close()
}
