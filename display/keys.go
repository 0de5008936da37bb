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

package display

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/maikorhost/maikorhost/input"
)

// KeyMap maps a keyboard key to a console button.
type KeyMap map[ebiten.Key]input.Button

// DefaultKeyMap returns the default key map.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ebiten.KeyArrowUp:    input.Up,
		ebiten.KeyArrowDown:  input.Down,
		ebiten.KeyArrowLeft:  input.Left,
		ebiten.KeyArrowRight: input.Right,
		ebiten.KeyZ:          input.A,
		ebiten.KeyX:          input.B,
		ebiten.KeyA:          input.X,
		ebiten.KeyS:          input.Y,
		ebiten.KeyEnter:      input.Start,
	}
}

// buttons returns the state of every button given a function that reports
// whether a key is pressed. a button mapped to more than one key is pressed
// if any of the keys are pressed
func (km KeyMap) buttons(pressed func(ebiten.Key) bool) [input.NumButtons]bool {
	var b [input.NumButtons]bool
	for k, btn := range km {
		if btn < 0 || btn >= input.NumButtons {
			continue
		}
		if pressed(k) {
			b[btn] = true
		}
	}
	return b
}
