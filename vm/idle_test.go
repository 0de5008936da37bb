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

package vm_test

import (
	"testing"

	"github.com/maikorhost/maikorhost/test"
	"github.com/maikorhost/maikorhost/vm"
	"github.com/maikorhost/maikorhost/vm/memorymap"
)

type player struct {
	rate    int
	samples int
}

func (p *player) Play(left []float32, right []float32) {
	p.samples += len(left)
}

func (p *player) SampleRate() int {
	return p.rate
}

func TestIdleCore(t *testing.T) {
	core := vm.NewIdleCore(nil)
	test.ExpectImplements[vm.Core](t, core)

	st := core.State()
	test.DemandEquality(t, len(st.Memory), memorymap.MemorySize)
	test.ExpectEquality(t, len(st.RAMBanks), vm.NumBanks)
	test.ExpectEquality(t, st.Registers[vm.RegFlags], uint8(vm.FlagsDefault))

	test.ExpectEquality(t, core.Step(), uint(1))
	test.ExpectEquality(t, st.PC, uint16(1))
	test.ExpectEquality(t, st.OpsExecuted, uint64(1))

	core.TriggerInterrupt(vm.IRQController)
	test.ExpectEquality(t, len(core.Interrupts()), 1)
	test.ExpectEquality(t, len(core.Interrupts()), 0)

	// nil sound is replaced with a sound that does nothing
	core.Sound().DoCycle(100)
	core.Sound().Reset()

	core.Load([]uint8{0x01, 0x02})
	test.ExpectEquality(t, st.Memory[1], uint8(0x02))
}

func TestSilentSound(t *testing.T) {
	p := &player{rate: 44100}
	snd := vm.NewSilentSound(p)

	// one second of cycles is one second of samples
	for range 1000 {
		snd.DoCycle(vm.ClockSpeed / 1000)
	}
	test.ExpectEquality(t, p.samples, 44100)

	// fractional samples are carried over
	p.samples = 0
	snd.DoCycle(100)
	test.ExpectEquality(t, p.samples, 0)
	snd.DoCycle(200)
	test.ExpectEquality(t, p.samples, 2)

	snd.Reset()
	p.samples = 0
	snd.DoCycle(100)
	test.ExpectEquality(t, p.samples, 0)
}

func TestSpeaker(t *testing.T) {
	snd := vm.NewSilentSound(nil)
	test.ExpectImplements[vm.Speaker](t, snd)

	// no player is not an error
	snd.DoCycle(vm.ClockSpeed)

	p := &player{rate: 100}
	snd.SetPlayer(p)
	snd.DoCycle(vm.ClockSpeed)
	test.ExpectEquality(t, p.samples, 100)
}
