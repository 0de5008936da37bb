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

// Package vm describes the virtual machine that the host drives. The CPU
// interpreter itself lives elsewhere. The host only needs the Core interface:
// a way of executing one instruction, of raising an interrupt, and of getting
// at the machine state and the sound chip.
//
// The IdleCore type is a Core that executes nothing. It is useful for
// inspecting a memory image with the host, and in tests.
package vm
