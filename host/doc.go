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

// Package host drives a vm.Core in frame sized bursts.
//
// The Host type is the meeting point of the interpreter and the outside
// world. Each call to Execute() runs at most one work unit per 16ms window.
// A work unit steps the interpreter until the cycle budget has been used or
// until the interpreter halts. After every step the host:
//
//	feeds the step's cycles to the sound chip
//	latches the input register, raising a controller interrupt on change
//	writes a new random byte to the RNG register
//	applies the memory override table
//	reports and clears save-dirty flags
//
// Render() turns the current memory image into a pixel buffer and is
// typically called once after every call to Execute().
//
// The Listener interface receives notifications of halts and of save banks
// becoming stale. A halt is reported exactly once. The audio bridge is stopped
// before Execute() returns and the host does nothing more until Reset() is
// called.
package host
