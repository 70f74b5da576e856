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

package disassembly

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gopher6502/hardware/cpu"
)

// FromMemory disassembles the instruction at the specified address, reading
// through the CPU's view of memory.
func FromMemory(mc *cpu.CPU, address uint16) Entry {
	opcode := mc.Peek(address)
	defn := mc.Defn(opcode)

	if defn == nil {
		return Entry{
			Address:  address,
			Bytes:    []uint8{opcode},
			Operator: ".byte",
			Operand:  fmt.Sprintf("$%02X", opcode),
		}
	}

	e := Entry{
		Address:  address,
		Bytes:    []uint8{opcode},
		Operator: defn.Operator.String(),
	}

	var lo, hi uint8
	if defn.Bytes > 1 {
		lo = mc.Peek(address + 1)
		e.Bytes = append(e.Bytes, lo)
	}
	if defn.Bytes > 2 {
		hi = mc.Peek(address + 2)
		e.Bytes = append(e.Bytes, hi)
	}
	e.Operand = operand(defn, address, lo, hi)

	return e
}

// Tracer is a cpu.Observer that writes a disassembly of each instruction as
// it is executed, together with the register state at the point of fetch.
type Tracer struct {
	Output io.Writer
}

// NewTracer is the preferred method of initialisation for the Tracer type.
func NewTracer(output io.Writer) *Tracer {
	return &Tracer{Output: output}
}

// OnFetch implements the cpu.Observer interface. At the point the observer
// is called the program counter has moved past the opcode and points at the
// first operand byte.
func (trc *Tracer) OnFetch(mc *cpu.CPU) {
	e := FromMemory(mc, mc.PC.Address()-1)

	fmt.Fprintf(trc.Output, "%-30s A:%02X X:%02X Y:%02X P:%02X SP:%02X\n",
		e.String(),
		mc.A.Value(), mc.X.Value(), mc.Y.Value(),
		mc.Status.Value(), mc.SP.Value())
}
