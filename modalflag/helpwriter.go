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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// helpWriter collects the output of the flag package so that it can be
// amended before it is printed.
type helpWriter struct {
	buf strings.Builder
}

func (hw *helpWriter) Write(p []byte) (int, error) {
	return hw.buf.Write(p)
}

func (hw *helpWriter) help(output io.Writer, path string, subModes []string, additionalHelp string) {
	s := hw.buf.String()

	if s == "Usage:\n" && len(subModes) == 0 && additionalHelp == "" {
		if path != "" {
			fmt.Fprintf(output, "No help available for %s\n", path)
		} else {
			fmt.Fprintln(output, "No help available")
		}
		return
	}

	banner, flags, _ := strings.Cut(s, "\n")
	if path != "" {
		fmt.Fprintf(output, "%s for %s mode\n", banner, path)
	} else {
		fmt.Fprintln(output, banner)
	}
	io.WriteString(output, flags)

	if len(subModes) > 0 {
		if flags != "" {
			fmt.Fprintln(output)
		}
		fmt.Fprintf(output, "  available sub-modes: %s\n", strings.Join(subModes, ", "))
		fmt.Fprintf(output, "    default: %s\n", subModes[0])
	}

	if additionalHelp != "" {
		fmt.Fprintf(output, "\n%s\n", additionalHelp)
	}
}
