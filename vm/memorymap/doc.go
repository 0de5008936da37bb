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

// Package memorymap describes the layout of the memory image. Every address
// the host reads or writes is defined here.
//
// Each area has an Origin and a Memtop constant. The MapAddress() function
// returns the area an address belongs to.
//
// Some areas are tables of fixed size records. For these, the record size and
// the number of records are also defined and the Memtop is derived from them.
package memorymap
