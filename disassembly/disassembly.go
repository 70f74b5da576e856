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

// Package disassembly converts instruction bytes back into 6502 assembly
// language. It works two ways: statically over a program image with
// FromProgram(), and live during execution with the Tracer type, which
// attaches to the CPU as an observer.
package disassembly

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/hardware/memory"
)

// Entry is a single disassembled instruction.
type Entry struct {
	Address  uint16
	Bytes    []uint8
	Operator string
	Operand  string
}

// String returns the entry in the form of a listing line.
func (e Entry) String() string {
	b := strings.Builder{}
	for _, v := range e.Bytes {
		b.WriteString(fmt.Sprintf("%02X ", v))
	}
	return strings.TrimRight(fmt.Sprintf("%04X  %-9s %s %s", e.Address, b.String(), e.Operator, e.Operand), " ")
}

// operand formats the operand bytes of an instruction according to the
// addressing mode. Instructions tabled as NoneAddressing are disambiguated by
// operator and opcode.
func operand(defn *instructions.Definition, address uint16, lo uint8, hi uint8) string {
	val16 := uint16(hi)<<8 | uint16(lo)

	switch defn.AddressingMode {
	case instructions.Immediate:
		return fmt.Sprintf("#$%02X", lo)
	case instructions.ZeroPage:
		return fmt.Sprintf("$%02X", lo)
	case instructions.ZeroPageX:
		return fmt.Sprintf("$%02X,X", lo)
	case instructions.ZeroPageY:
		return fmt.Sprintf("$%02X,Y", lo)
	case instructions.Absolute:
		return fmt.Sprintf("$%04X", val16)
	case instructions.AbsoluteX:
		return fmt.Sprintf("$%04X,X", val16)
	case instructions.AbsoluteY:
		return fmt.Sprintf("$%04X,Y", val16)
	case instructions.IndirectX:
		return fmt.Sprintf("($%02X,X)", lo)
	case instructions.IndirectY:
		return fmt.Sprintf("($%02X),Y", lo)
	}

	switch defn.Operator {
	case instructions.Jmp:
		if defn.OpCode == 0x6c {
			return fmt.Sprintf("($%04X)", val16)
		}
		return fmt.Sprintf("$%04X", val16)

	case instructions.Jsr:
		return fmt.Sprintf("$%04X", val16)

	case instructions.Bcc, instructions.Bcs, instructions.Beq, instructions.Bmi,
		instructions.Bne, instructions.Bpl, instructions.Bvc, instructions.Bvs:
		// branch offsets are relative to the next instruction
		return fmt.Sprintf("$%04X", address+2+uint16(int8(lo)))

	case instructions.Asl, instructions.Lsr, instructions.Rol, instructions.Ror:
		return "A"
	}

	return ""
}

// FromProgram disassembles the program image as though it had been loaded at
// the program origin. Decoding is linear from the first byte. Bytes that do
// not decode to an official opcode are rendered as data.
func FromProgram(program []uint8) []Entry {
	table := instructions.GetDefinitions()
	entries := make([]Entry, 0, len(program))

	i := 0
	for i < len(program) {
		address := memory.ProgramOrigin + uint16(i)
		defn := table[program[i]]

		if defn == nil {
			entries = append(entries, Entry{
				Address:  address,
				Bytes:    []uint8{program[i]},
				Operator: ".byte",
				Operand:  fmt.Sprintf("$%02X", program[i]),
			})
			i++
			continue
		}

		// operand bytes beyond the end of the program read as zero
		var lo, hi uint8
		if defn.Bytes > 1 && i+1 < len(program) {
			lo = program[i+1]
		}
		if defn.Bytes > 2 && i+2 < len(program) {
			hi = program[i+2]
		}

		e := Entry{
			Address:  address,
			Operator: defn.Operator.String(),
			Operand:  operand(defn, address, lo, hi),
		}
		for j := 0; j < defn.Bytes && i+j < len(program); j++ {
			e.Bytes = append(e.Bytes, program[i+j])
		}
		entries = append(entries, e)

		i += defn.Bytes
	}

	return entries
}

// Write is a convenience wrapping of FromProgram(), writing the listing to
// the io.Writer.
func Write(output io.Writer, program []uint8) error {
	for _, e := range FromProgram(program) {
		if _, err := io.WriteString(output, e.String()+"\n"); err != nil {
			return err
		}
	}
	return nil
}
