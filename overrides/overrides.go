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

// Package overrides pins addresses of the memory image to fixed values. The
// table is applied by the host after every instruction, so a pinned address
// always reads back the pinned value regardless of what the program writes.
//
// The table is controlled from outside the emulation, usually by a debugger
// or a script.
package overrides

import (
	"fmt"
	"sort"
	"strings"

	"github.com/maikorhost/maikorhost/vm/memorymap"
)

// Table of pinned addresses. The zero value is not usable, use NewTable().
type Table struct {
	fixed map[uint16]uint8
}

// NewTable is the preferred method of initialisation for the Table type.
func NewTable() *Table {
	return &Table{
		fixed: make(map[uint16]uint8),
	}
}

// Set pins the address to the value. An existing entry for the address is
// replaced.
func (tab *Table) Set(address uint16, value uint8) {
	tab.fixed[address] = value
}

// Clear removes the pin for the address. It is not an error to clear an
// address that is not pinned.
func (tab *Table) Clear(address uint16) {
	delete(tab.fixed, address)
}

// ClearAll removes every entry.
func (tab *Table) ClearAll() {
	clear(tab.fixed)
}

// Get returns the pinned value for an address and whether the address is
// pinned at all.
func (tab *Table) Get(address uint16) (uint8, bool) {
	v, ok := tab.fixed[address]
	return v, ok
}

// Len returns the number of pinned addresses.
func (tab *Table) Len() int {
	return len(tab.fixed)
}

// Apply writes every pinned value into the memory image.
func (tab *Table) Apply(mem []uint8) {
	for a, v := range tab.fixed {
		mem[a] = v
	}
}

// Addresses returns the pinned addresses in ascending order.
func (tab *Table) Addresses() []uint16 {
	a := make([]uint16, 0, len(tab.fixed))
	for k := range tab.fixed {
		a = append(a, k)
	}
	sort.Slice(a, func(i, j int) bool { return a[i] < a[j] })
	return a
}

func (tab *Table) String() string {
	s := strings.Builder{}
	for _, a := range tab.Addresses() {
		s.WriteString(fmt.Sprintf("%#04x [%s] = %#02x\n", a, memorymap.MapAddress(a), tab.fixed[a]))
	}
	return s.String()
}
