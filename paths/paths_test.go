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

package paths_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/maikorhost/maikorhost/paths"
	"github.com/maikorhost/maikorhost/test"
)

func TestPortablePath(t *testing.T) {
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".maikorhost", 0700))

	pth, err := paths.ResourcePath("shots", "a.png")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".maikorhost", "shots", "a.png"))

	// the sub path has been created but not the file
	fi, err := os.Stat(filepath.Join(".maikorhost", "shots"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, fi.IsDir())
	_, err = os.Stat(pth)
	test.ExpectFailure(t, err)

	pth, err = paths.ResourcePath("", "preferences")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".maikorhost", "preferences"))
}

func TestUniqueFilename(t *testing.T) {
	re := regexp.MustCompile(`^shot_game_\d{8}_\d{6}\.png$`)
	test.ExpectSuccess(t, re.MatchString(paths.UniqueFilename("shot", "game", ".png")))

	re = regexp.MustCompile(`^capture_\d{8}_\d{6}$`)
	test.ExpectSuccess(t, re.MatchString(paths.UniqueFilename("capture", " ", "")))
}
