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
	"sync"
	"time"

	"github.com/maikorhost/maikorhost/curated"
	"github.com/maikorhost/maikorhost/logger"
)

// Sentinel error patterns.
const (
	NoDevice       = "audio: no device: %v"
	UnknownBackend = "audio: unknown backend: %s"
	StreamError    = "audio: stream: %v"
)

// PreferredSampleRate is the sample rate asked of every backend. The
// negotiated rate may be different.
const PreferredSampleRate = 44100

// the interval at which the worker drives a Pumper
const pumpInterval = 10 * time.Millisecond

// Bridge is a queue of stereo samples between the emulation and the output
// device. It implements the vm.Player interface.
type Bridge struct {
	backend    Backend
	sampleRate int

	crit  sync.Mutex
	queue [][2]float32

	// play requests are dropped once stopping has begun
	stopping bool

	// stop is closed to end the worker of the current session. nil if there
	// is no session
	stop chan struct{}
	wg   sync.WaitGroup
}

// NewBridge is the preferred method of initialisation for the Bridge type.
// The backend is asked for a stereo float32 stream at PreferredSampleRate. A
// device that cannot be used is returned as an error.
//
// The bridge is not playing until Start() is called.
func NewBridge(backend Backend) (*Bridge, error) {
	rate, err := backend.Negotiate(PreferredSampleRate)
	if err != nil {
		return nil, curated.Errorf(NoDevice, err)
	}

	b := &Bridge{
		backend:    backend,
		sampleRate: rate,
		queue:      make([][2]float32, 0, rate),
		stopping:   true,
	}

	logger.Logf(logger.Allow, "audio", "%s: %dHz", backend, rate)

	return b, nil
}

// Start a new session. The queue is emptied and a worker is launched to open
// the output stream. Does nothing if a session is already running.
func (b *Bridge) Start() {
	b.crit.Lock()
	defer b.crit.Unlock()

	if b.stop != nil {
		return
	}

	b.queue = b.queue[:0]
	b.stopping = false
	b.stop = make(chan struct{})

	b.wg.Add(1)
	go b.worker(b.stop)
}

// Stop the current session and wait for the worker to close the output
// stream. Safe to call more than once.
func (b *Bridge) Stop() {
	b.crit.Lock()
	b.stopping = true
	stop := b.stop
	b.stop = nil
	b.crit.Unlock()

	if stop != nil {
		close(stop)
	}
	b.wg.Wait()
}

func (b *Bridge) worker(stop <-chan struct{}) {
	defer b.wg.Done()

	stream, err := b.backend.Open(b.sampleRate, b.Fill)
	if err != nil {
		logger.Log(logger.Allow, "audio", curated.Errorf(StreamError, err))
		return
	}

	defer func() {
		if err := stream.Close(); err != nil {
			logger.Log(logger.Allow, "audio", curated.Errorf(StreamError, err))
		}
	}()

	p, ok := stream.(Pumper)
	if !ok {
		<-stop
		return
	}

	tck := time.NewTicker(pumpInterval)
	defer tck.Stop()

	for {
		select {
		case <-stop:
			return
		case <-tck.C:
			if err := p.Pump(); err != nil {
				logger.Log(logger.Allow, "audio", curated.Errorf(StreamError, err))
				return
			}
		}
	}
}

// Play adds a batch of samples to the queue. The left and right channels
// must be the same length. A batch that would take the queue over one second
// of audio is dropped in its entirety.
func (b *Bridge) Play(left []float32, right []float32) {
	if len(left) != len(right) {
		logger.Logf(logger.Allow, "audio", "channel lengths differ (%d and %d): batch dropped", len(left), len(right))
		return
	}

	b.crit.Lock()
	defer b.crit.Unlock()

	if b.stopping {
		return
	}

	if len(b.queue)+len(left) > b.sampleRate {
		return
	}

	for i := range left {
		b.queue = append(b.queue, [2]float32{left[i], right[i]})
	}
}

// Fill the interleaved stereo buffer with as many queued samples as are
// available. Returns the number of sample pairs written. The part of the
// buffer after the last pair is not touched.
func (b *Bridge) Fill(out []float32) int {
	b.crit.Lock()
	defer b.crit.Unlock()

	n := min(len(out)/2, len(b.queue))
	for i := range n {
		out[i*2] = b.queue[i][0]
		out[i*2+1] = b.queue[i][1]
	}
	b.queue = append(b.queue[:0], b.queue[n:]...)

	return n
}

// Underflowed returns true if the queue is empty.
func (b *Bridge) Underflowed() bool {
	b.crit.Lock()
	defer b.crit.Unlock()
	return len(b.queue) == 0
}

// Queued returns the number of sample pairs in the queue.
func (b *Bridge) Queued() int {
	b.crit.Lock()
	defer b.crit.Unlock()
	return len(b.queue)
}

// SampleRate returns the negotiated sample rate.
func (b *Bridge) SampleRate() int {
	return b.sampleRate
}
