// This file is part of Gopher6502.
//
// Gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6502.  If not, see <https://www.gnu.org/licenses/>.

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/test"
)

func TestReadWrite(t *testing.T) {
	ram := memory.NewRAM()

	isolated := func(address uint16, data uint8) {
		ram.Write(address, data)
		test.Equate(t, ram.Read(address), data)
	}

	isolated(0x0000, 0xff)
	isolated(0x00ff, 0x01)
	isolated(0x8000, 0xc0)
	isolated(0xfffe, 0x99)
}

func TestReadWrite16(t *testing.T) {
	ram := memory.NewRAM()

	// 16 bit values are stored low byte first
	ram.Write16(0x1000, 0x8023)
	test.Equate(t, ram.Read(0x1000), 0x23)
	test.Equate(t, ram.Read(0x1001), 0x80)
	test.Equate(t, ram.Read16(0x1000), 0x8023)

	// writing byte-wise and reading as a 16 bit value
	ram.Write(0x2000, 0xcd)
	ram.Write(0x2001, 0xab)
	test.Equate(t, ram.Read16(0x2000), 0xabcd)

	// the round trip holds across the address space and at boundary values.
	// 0xfffd is the highest address a 16 bit access can start from
	for _, address := range []uint16{0x0000, 0x00ff, 0x1000, 0x7fff, 0xff00, 0xfffd} {
		for _, value := range []uint16{0x0000, 0x00ff, 0xff00, 0xffff} {
			ram.Write16(address, value)
			test.Equate(t, ram.Read16(address), value)
		}
	}
}

func TestClear(t *testing.T) {
	ram := memory.NewRAM()
	ram.Write(0x1234, 0x56)
	ram.Clear()
	test.Equate(t, ram.Read(0x1234), 0x00)
}

func TestLoad(t *testing.T) {
	ram := memory.NewRAM()

	err := ram.Load([]uint8{0xa9, 0xc0, 0xaa, 0xe8, 0x00})
	test.ExpectedSuccess(t, err)
	test.Equate(t, ram.Read(0x8000), 0xa9)
	test.Equate(t, ram.Read(0x8004), 0x00)

	// the reset vector points at the load origin
	test.Equate(t, ram.Read16(memory.ResetVector), memory.ProgramOrigin)
}

func TestOutOfRange(t *testing.T) {
	ram := memory.NewRAM()

	// the final byte of the 16 bit address space is not backed by storage
	defer func() {
		if recover() == nil {
			t.Errorf("expected out of range access to panic")
		}
	}()
	_ = ram.Read(0xffff)
}

func TestLoadTooLarge(t *testing.T) {
	ram := memory.NewRAM()

	// the largest program that will fit
	err := ram.Load(make([]uint8, memory.Size-memory.ProgramOrigin))
	test.ExpectedSuccess(t, err)

	// one byte too many
	err = ram.Load(make([]uint8, memory.Size-memory.ProgramOrigin+1))
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, memory.ProgramTooLarge))
}
