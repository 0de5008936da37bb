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

// Package script runs Lua scripts against a running host. Scripts are used to
// patch memory and to inspect the state of the machine without stopping
// emulation.
//
// The following functions are available to a script:
//
//	poke(address, value)   pin the address to the value with the override table
//	unpoke(address)        remove the override for the address
//	unpokeall()            remove all overrides
//	peek(address)          the current value in memory at the address
//	overrides()            a table of address -> value for every override
//	area(address)          the name of the memory area containing the address
//	sprite(slot)           a table describing the sprite in the sprite table
//	log(message)           add the message to the central logger
//
// Addresses must be in the range 0 to 0xffff and values in the range 0 to
// 0xff. Anything else raises a Lua error, which is returned by Run() or
// RunFile().
//
// A poke is not seen in memory until the host next applies the override
// table, which happens after every step of the interpreter.
package script
