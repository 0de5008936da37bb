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

package vm

import "github.com/maikorhost/maikorhost/vm/memorymap"

// Player is the audio output expected by SilentSound. It is satisfied by
// audio.Bridge.
type Player interface {
	Play(left []float32, right []float32)
	SampleRate() int
}

// Speaker is implemented by Sound types that send their samples to a Player.
// The host attaches its audio output to any sound chip that implements it.
type Speaker interface {
	SetPlayer(player Player)
}

// ClockSpeed of the CPU in Hz. Used to convert cycles into a number of audio
// samples.
const ClockSpeed = 6_000_000

// SilentSound converts CPU cycles into silent audio samples. It keeps the
// audio device fed without needing a real sound chip.
type SilentSound struct {
	player Player

	// fractional samples carried over from previous call to DoCycle()
	remainder uint64

	left  []float32
	right []float32
}

// NewSilentSound is the preferred method of initialisation for the
// SilentSound type.
func NewSilentSound(player Player) *SilentSound {
	return &SilentSound{player: player}
}

// SetPlayer implements the Speaker interface.
func (snd *SilentSound) SetPlayer(player Player) {
	snd.player = player
	snd.remainder = 0
}

// DoCycle implements the Sound interface.
func (snd *SilentSound) DoCycle(cycles uint32) {
	if snd.player == nil {
		return
	}

	snd.remainder += uint64(cycles) * uint64(snd.player.SampleRate())
	n := int(snd.remainder / ClockSpeed)
	snd.remainder %= ClockSpeed
	if n == 0 {
		return
	}

	if cap(snd.left) < n {
		snd.left = make([]float32, n)
		snd.right = make([]float32, n)
	}
	snd.player.Play(snd.left[:n], snd.right[:n])
}

// Reset implements the Sound interface.
func (snd *SilentSound) Reset() {
	snd.remainder = 0
}

// IdleCore is a Core that executes nothing. Each step takes a single cycle
// and advances the program counter.
type IdleCore struct {
	state      State
	sound      Sound
	interrupts []uint8
}

// NewIdleCore is the preferred method of initialisation for the IdleCore
// type. The sound argument can be nil.
func NewIdleCore(sound Sound) *IdleCore {
	core := &IdleCore{
		sound: sound,
	}
	core.state.Memory = make([]uint8, memorymap.MemorySize)
	core.state.RAMBanks = make([][]uint8, NumBanks)
	for i := range core.state.RAMBanks {
		core.state.RAMBanks[i] = make([]uint8, memorymap.SizeRAMBank)
	}
	core.state.Registers[RegFlags] = FlagsDefault
	return core
}

// Step implements the Core interface.
func (core *IdleCore) Step() uint {
	core.state.PC++
	core.state.OpsExecuted++
	core.state.CyclesExecuted++
	return 1
}

// TriggerInterrupt implements the Core interface. Interrupts are recorded but
// otherwise ignored.
func (core *IdleCore) TriggerInterrupt(irq uint8) {
	core.interrupts = append(core.interrupts, irq)
}

// Interrupts returns the list of interrupts raised since the last call.
func (core *IdleCore) Interrupts() []uint8 {
	i := core.interrupts
	core.interrupts = nil
	return i
}

// State implements the Core interface.
func (core *IdleCore) State() *State {
	return &core.state
}

// Sound implements the Core interface.
func (core *IdleCore) Sound() Sound {
	if core.sound == nil {
		return nilSound{}
	}
	return core.sound
}

// Load copies a memory image into the core. Images shorter than the memory
// size are loaded from address zero.
func (core *IdleCore) Load(image []uint8) {
	copy(core.state.Memory, image)
}

type nilSound struct{}

func (nilSound) DoCycle(uint32) {}
func (nilSound) Reset()         {}
