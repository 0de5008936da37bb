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

package curated_test

import (
	"errors"
	"io"
	"testing"

	"github.com/maikorhost/maikorhost/curated"
	"github.com/maikorhost/maikorhost/test"
)

const testPattern = "test: %v"
const otherPattern = "other: %v"

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Is(e, otherPattern))
	test.ExpectSuccess(t, curated.IsAny(e))

	// plain errors are never curated
	p := errors.New("plain")
	test.ExpectFailure(t, curated.IsAny(p))
	test.ExpectFailure(t, curated.Is(p, testPattern))
	test.ExpectFailure(t, curated.IsAny(nil))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	f := curated.Errorf(otherPattern, e)

	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, otherPattern))
	test.ExpectFailure(t, curated.Has(e, otherPattern))
}

func TestDeduplication(t *testing.T) {
	e := curated.Errorf("host: %v", curated.Errorf("host: %v", "halted"))
	test.ExpectEquality(t, e.Error(), "host: halted")

	e = curated.Errorf("audio: %v", curated.Errorf("sdl: %v", "no device"))
	test.ExpectEquality(t, e.Error(), "audio: sdl: no device")
}

func TestUnwrap(t *testing.T) {
	e := curated.Errorf("wav: %v", io.ErrShortWrite)
	test.ExpectSuccess(t, errors.Is(e, io.ErrShortWrite))
}
