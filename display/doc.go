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

// Package display shows a running host in a window using ebiten.
//
// The window calls Execute() and Render() once per tick and maps keyboard
// keys to console buttons. The default key map is:
//
//	cursor keys   Up, Down, Left, Right
//	Z             A
//	X             B
//	A             X
//	S             Y
//	Enter         Start
//
// Other keys:
//
//	P        pause
//	F5       reset
//	F12      screenshot
//	Escape   quit
package display
