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

// Package memory implements the flat 64k address space the CPU is connected
// to. There is no bank switching and no memory mapped peripherals, every
// address is plain RAM.
package memory

import (
	"github.com/jetsetilly/gopher6502/curated"
)

// Size of the addressable memory in bytes. The final byte of the 16 bit
// address space is not backed by storage so the valid address range is
// 0x0000 to 0xfffe.
const Size = 65535

// ProgramOrigin is the address programs are loaded to and the address the
// reset vector points to after a successful Load().
const ProgramOrigin = 0x8000

// ResetVector is the address the CPU reads on Reset() to find the address of
// the first instruction.
const ResetVector = 0xfffc

// ProgramTooLarge is returned by Load() when the program will not fit between
// ProgramOrigin and the top of memory.
const ProgramTooLarge = "memory: program of %d bytes will not fit at origin %#04x"

// RAM is the flat memory supplied to the CPU. Addresses outside the valid
// range cause a runtime panic, the same as any out of bounds slice access.
type RAM []uint8

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM() *RAM {
	ram := make(RAM, Size)
	return &ram
}

// Read returns the byte at the specified address.
func (ram RAM) Read(address uint16) uint8 {
	return ram[address]
}

// Write places a byte at the specified address.
func (ram RAM) Write(address uint16, data uint8) {
	ram[address] = data
}

// Read16 returns the 16 bit value at the specified address. The low byte is
// read first, as the 6502 orders it.
func (ram RAM) Read16(address uint16) uint16 {
	lo := uint16(ram[address])
	hi := uint16(ram[address+1])
	return hi<<8 | lo
}

// Write16 places a 16 bit value at the specified address, low byte first.
func (ram RAM) Write16(address uint16, data uint16) {
	ram[address] = uint8(data & 0x00ff)
	ram[address+1] = uint8(data >> 8)
}

// Clear sets every byte of memory to zero.
func (ram RAM) Clear() {
	for i := range ram {
		ram[i] = 0
	}
}

// Load copies the program to ProgramOrigin and points the reset vector at it.
func (ram RAM) Load(program []uint8) error {
	if len(program) > Size-ProgramOrigin {
		return curated.Errorf(ProgramTooLarge, len(program), ProgramOrigin)
	}
	copy(ram[ProgramOrigin:], program)
	ram.Write16(ResetVector, ProgramOrigin)
	return nil
}
