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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/maikorhost/maikorhost/prefs"
	"github.com/maikorhost/maikorhost/test"
)

func tmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "maikorhost_prefs_test")
}

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))
	test.ExpectFailure(t, x.Set(10))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestInt(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectSuccess(t, w.Set("0xff"))
	test.ExpectEquality(t, w.Get().(int), 255)

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "number :: 10\nnumberB :: 255\n")

	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
}

func TestFloatAndString(t *testing.T) {
	var f prefs.Float
	test.ExpectSuccess(t, f.Set("0.5"))
	test.ExpectEquality(t, f.Get().(float64), 0.5)
	test.ExpectFailure(t, f.Set("half"))

	var s prefs.String
	test.ExpectSuccess(t, s.Set(" RGBA "))
	test.ExpectEquality(t, s.String(), "RGBA")
}

func TestHook(t *testing.T) {
	var v prefs.Int
	var seen int
	v.SetHookPost(func(value prefs.Value) error {
		seen = value.(int)
		return nil
	})
	test.ExpectSuccess(t, v.Set(100000))
	test.ExpectEquality(t, seen, 100000)
}

func TestLoad(t *testing.T) {
	fn := tmpPrefFile(t)

	// missing file is not an error
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("host.cycleBudget", &v))
	test.ExpectSuccess(t, dsk.Load())

	test.ExpectSuccess(t, v.Set(5000))
	test.DemandSuccess(t, dsk.Save())

	// second disk sharing the same file
	dsk2, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var s prefs.String
	test.ExpectSuccess(t, dsk2.Add("video.layout", &s))
	test.ExpectSuccess(t, s.Set("ARGB"))
	test.DemandSuccess(t, dsk2.Save())

	// original key was preserved
	cmpTmpFile(t, fn, "host.cycleBudget :: 5000\nvideo.layout :: ARGB\n")

	var w prefs.Int
	dsk3, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, dsk3.Add("host.cycleBudget", &w))
	test.ExpectSuccess(t, dsk3.Load())
	test.ExpectEquality(t, w.Get().(int), 5000)

	// command line takes priority
	prefs.PushCommandLineStack("host.cycleBudget::42")
	test.ExpectSuccess(t, dsk3.Load())
	test.ExpectEquality(t, w.Get().(int), 42)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestBadKey(t *testing.T) {
	dsk, err := prefs.NewDisk(tmpPrefFile(t))
	test.DemandSuccess(t, err)
	var v prefs.Bool
	test.ExpectFailure(t, dsk.Add("", &v))
	test.ExpectFailure(t, dsk.Add("a :: b", &v))
	test.ExpectSuccess(t, dsk.Add("a", &v))
	test.ExpectFailure(t, dsk.Add("a", &v))

	_, err = prefs.NewDisk("")
	test.ExpectFailure(t, err)
}
