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

package logger_test

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/maikorhost/maikorhost/logger"
	"github.com/maikorhost/maikorhost/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	w.Reset()
	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeatedEntries(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "audio", "queue full")
	log.Log(logger.Allow, "audio", "queue full")
	log.Log(logger.Allow, "audio", "queue full")
	test.ExpectEquality(t, log.Len(), 1)

	log.Write(w)
	test.ExpectEquality(t, w.String(), "audio: queue full (repeat x3)\n")
}

func TestMaxEntries(t *testing.T) {
	log := logger.NewLogger(2)
	w := &strings.Builder{}

	log.Logf(logger.Allow, "host", "frame %d", 1)
	log.Logf(logger.Allow, "host", "frame %d", 2)
	log.Logf(logger.Allow, "host", "frame %d", 3)
	test.ExpectEquality(t, log.Len(), 2)

	log.Write(w)
	test.ExpectEquality(t, w.String(), "host: frame 2\nhost: frame 3\n")
}

// the decision of whether to allow logging is randomised. there's no need for
// randomisation but it demonstrates that the permission is consulted every
// time
type prohibitLogging struct {
	allow int
}

func (p prohibitLogging) AllowLogging() bool {
	return p.allow > 50
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	var p prohibitLogging

	for range 100 {
		p.allow = rand.IntN(100)
		log.Clear()
		w.Reset()
		log.Log(p, "tag", "detail")
		log.Write(w)
		if p.AllowLogging() {
			test.ExpectEquality(t, w.String(), "tag: detail\n")
		} else {
			test.ExpectEquality(t, w.String(), "")
		}
	}
}

func TestErrorLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", errors.New("test error"))
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: test error\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.SetEcho(w)
	log.Log(logger.Allow, "raster", "layer 1 visible")
	test.ExpectEquality(t, w.String(), "raster: layer 1 visible\n")

	log.SetEcho(nil)
	log.Log(logger.Allow, "raster", "layer 2 visible")
	test.ExpectEquality(t, w.String(), "raster: layer 1 visible\n")
}

func TestColorizer(t *testing.T) {
	w := &strings.Builder{}
	c := logger.NewColorizer(w)
	n, err := c.Write([]byte("audio: started\n"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, len("audio: started\n"))
	test.ExpectEquality(t, w.String(), "\033[2;36maudio:\033[0m started\n")
}
