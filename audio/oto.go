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
	"sync"

	"github.com/ebitengine/oto/v3"
)

// oto allows only one context per process and it can not be closed. the
// context is created by the first negotiation and shared by every stream
var otoContext struct {
	once sync.Once
	ctx  *oto.Context
	rate int
	err  error
}

// Oto is a backend using the ebitengine/oto library.
type Oto struct{}

func (o *Oto) String() string {
	return "oto"
}

// Negotiate implements the Backend interface. Once the oto context has been
// created the rate can not be changed and later negotiations return the rate
// of the existing context.
func (o *Oto) Negotiate(preferred int) (int, error) {
	otoContext.once.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   preferred,
			ChannelCount: 2,
			Format:       oto.FormatFloat32LE,
		}

		ctx, ready, err := oto.NewContext(op)
		if err != nil {
			otoContext.err = err
			return
		}
		<-ready

		otoContext.ctx = ctx
		otoContext.rate = preferred
	})

	return otoContext.rate, otoContext.err
}

// Open implements the Backend interface.
func (o *Oto) Open(rate int, fill FillFunc) (Stream, error) {
	if _, err := o.Negotiate(rate); err != nil {
		return nil, err
	}

	r := &otoReader{fill: fill}
	stm := &otoStream{
		player: otoContext.ctx.NewPlayer(r),
	}
	stm.player.Play()

	return stm, nil
}

// otoReader adapts a FillFunc to the io.Reader expected by an oto player
type otoReader struct {
	fill FillFunc
	buf  []float32
}

func (r *otoReader) Read(p []byte) (int, error) {
	frames := len(p) / frameBytes
	if len(r.buf) < frames*2 {
		r.buf = make([]float32, frames*2)
	}
	buf := r.buf[:frames*2]

	// oto expects the whole request to be satisfied. anything not filled
	// from the queue is silence
	clear(buf)
	r.fill(buf)

	for i, v := range buf {
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(v))
	}

	return frames * frameBytes, nil
}

type otoStream struct {
	player *oto.Player
}

func (s *otoStream) Close() error {
	s.player.Pause()
	return s.player.Close()
}
