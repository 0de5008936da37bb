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

// Package curated wraps the plain Go error type with a pattern that can be
// tested for later. Errors are created with Errorf(), which has the same
// signature as fmt.Errorf() but which remembers the pattern and the values:
//
//	err := curated.Errorf(audio.NoDevice, "sdl")
//
//	if curated.Is(err, audio.NoDevice) {
//		...
//	}
//
// Has() checks the whole chain of wrapped curated errors for the pattern.
// IsAny() answers whether an error was created by this package at all, which is
// a useful way of separating expected from unexpected errors.
//
// The Error() function normalises the chain so that duplicate adjacent parts
// are removed. For example:
//
//	curated.Errorf("host: %v", curated.Errorf("host: halted"))
//
// prints as "host: halted" and not "host: host: halted". This removes the
// burden of deciding whether a caller or callee should add the prefix.
//
// Patterns that callers are expected to test for should be exported constants
// in the package that produces them.
package curated
