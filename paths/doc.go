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

// Package paths prepares paths to maikorhost resources.
//
// The ResourcePath() function prepends the supplied resource with the base
// resource path. For example, the following returns the path to the
// preferences file:
//
//	p, err := paths.ResourcePath("", "preferences")
//
// If a directory called ".maikorhost" exists in the current directory then
// that is the base path. Otherwise the base path is "maikorhost" in the user's
// config directory, as returned by os.UserConfigDir(). On a modern Linux
// system the example above gives:
//
//	/home/user/.config/maikorhost/preferences
//
// Directories leading up to the resource are created if necessary. The
// resource itself is never created.
package paths
