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

// Package input converts the state of the console buttons into the two byte
// input register of the memory image.
//
// The Latch type holds one boolean per button. The encoded form of the
// buttons is cached and only recalculated after a button changes. Note that
// not every button is part of the encoded form. The input register only
// exposes Up, Down and Start. The other buttons are tracked so that the
// register layout can grow without changing the Latch interface.
//
// Latch.Check() is called by the host once per instruction. It returns true
// if the input register has been changed, in which case the host raises the
// controller interrupt.
package input
