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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher6502/disassembly"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/test"
)

func TestFromProgram(t *testing.T) {
	entries := disassembly.FromProgram([]uint8{0xa9, 0xc0, 0xaa, 0xe8, 0x00})
	test.Equate(t, len(entries), 4)

	test.Equate(t, entries[0].Address, 0x8000)
	test.Equate(t, entries[0].Operator, "LDA")
	test.Equate(t, entries[0].Operand, "#$C0")
	test.Equate(t, entries[0].String(), "8000  A9 C0     LDA #$C0")

	test.Equate(t, entries[1].Address, 0x8002)
	test.Equate(t, entries[1].Operator, "TAX")
	test.Equate(t, entries[1].Operand, "")
	test.Equate(t, entries[1].String(), "8002  AA        TAX")

	test.Equate(t, entries[2].Operator, "INX")
	test.Equate(t, entries[3].Operator, "BRK")
}

func TestOperandFormats(t *testing.T) {
	operandOf := func(program ...uint8) string {
		entries := disassembly.FromProgram(program)
		return entries[0].Operand
	}

	test.Equate(t, operandOf(0xa5, 0x10), "$10")
	test.Equate(t, operandOf(0xb5, 0x10), "$10,X")
	test.Equate(t, operandOf(0xb6, 0x10), "$10,Y")
	test.Equate(t, operandOf(0xad, 0x34, 0x12), "$1234")
	test.Equate(t, operandOf(0xbd, 0x34, 0x12), "$1234,X")
	test.Equate(t, operandOf(0xb9, 0x34, 0x12), "$1234,Y")
	test.Equate(t, operandOf(0xa1, 0x20), "($20,X)")
	test.Equate(t, operandOf(0xb1, 0x20), "($20),Y")

	// jumps and subroutine calls
	test.Equate(t, operandOf(0x4c, 0x34, 0x12), "$1234")
	test.Equate(t, operandOf(0x6c, 0x34, 0x12), "($1234)")
	test.Equate(t, operandOf(0x20, 0x34, 0x12), "$1234")

	// branch targets are rendered as absolute addresses
	test.Equate(t, operandOf(0xd0, 0x02), "$8004")
	test.Equate(t, operandOf(0xd0, 0xfd), "$7FFF")

	// accumulator form of the shift instructions
	test.Equate(t, operandOf(0x0a), "A")

	// implied instructions have no operand
	test.Equate(t, operandOf(0xea), "")
}

func TestUnofficialBytes(t *testing.T) {
	entries := disassembly.FromProgram([]uint8{0x02, 0xea})
	test.Equate(t, len(entries), 2)
	test.Equate(t, entries[0].Operator, ".byte")
	test.Equate(t, entries[0].Operand, "$02")
	test.Equate(t, entries[1].Operator, "NOP")
}

func TestTracer(t *testing.T) {
	ram := memory.NewRAM()
	mc := cpu.NewCPU(ram)
	test.ExpectedSuccess(t, mc.Load([]uint8{0xa9, 0xc0, 0xaa, 0xe8, 0x00}))
	mc.Reset()

	tw := &test.Writer{}
	test.ExpectedSuccess(t, mc.RunWithObserver(disassembly.NewTracer(tw)))

	lines := strings.Split(strings.TrimRight(tw.String(), "\n"), "\n")
	test.Equate(t, len(lines), 4)

	test.ExpectedSuccess(t, strings.HasPrefix(lines[0], "8000  A9 C0     LDA #$C0"))
	test.ExpectedSuccess(t, strings.HasSuffix(lines[0], "A:00 X:00 Y:00 P:24 SP:FD"))

	// the register state is sampled before the instruction executes so the
	// effect of the LDA is first visible on the TAX line
	test.ExpectedSuccess(t, strings.HasPrefix(lines[1], "8002  AA        TAX"))
	test.ExpectedSuccess(t, strings.HasSuffix(lines[1], "A:C0 X:00 Y:00 P:A4 SP:FD"))

	test.ExpectedSuccess(t, strings.HasPrefix(lines[2], "8003  E8        INX"))
	test.ExpectedSuccess(t, strings.HasPrefix(lines[3], "8004  00        BRK"))
	test.ExpectedSuccess(t, strings.HasSuffix(lines[3], "A:C0 X:C1 Y:00 P:A4 SP:FD"))
}
