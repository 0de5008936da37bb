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

// Register indices into State.Registers.
const (
	RegFlags  = 8
	NumRegs   = 9
	NumBanks  = 4
	SaveBanks = 4
)

// Flags register bits.
const (
	FlagZero              = 0x01
	FlagCarry             = 0x02
	FlagOverflow          = 0x04
	FlagSigned            = 0x08
	FlagInterruptsEnabled = 0x10
)

// FlagsDefault is the value of the flags register after a reset.
const FlagsDefault = FlagInterruptsEnabled

// IRQController is the interrupt raised by the host when the input register
// changes.
const IRQController uint8 = 0x01

// State is the mutable machine state of a Core.
type State struct {
	Registers [NumRegs]uint8

	// the flat memory image. see the memorymap package for the layout
	Memory []uint8

	// swappable RAM banks
	RAMBanks [][]uint8

	PC     uint16
	Halted bool

	// the reason for halting. nil if the machine halted normally
	Error error

	OpsExecuted    uint64
	CyclesExecuted uint64

	// set when a save bank has been written to
	SaveDirty [SaveBanks]bool
}

// Sound is the sound chip of the machine. DoCycle() is called with the number
// of CPU cycles that have elapsed since the previous call. The chip generates
// samples for that period and sends them to its audio.Player.
type Sound interface {
	DoCycle(cycles uint32)
	Reset()
}

// Core is the CPU interpreter.
type Core interface {
	// Step executes one instruction and returns the number of cycles it took.
	// An instruction that causes a fatal CPU error sets State().Halted and
	// State().Error
	Step() uint

	// TriggerInterrupt raises an interrupt of the specified kind
	TriggerInterrupt(irq uint8)

	State() *State
	Sound() Sound
}
