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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/hardware/memory"
)

// Error patterns returned by the CPU.
const (
	// UnrecognizedOpcode is returned when the opcode at the program counter
	// has no entry in the instruction table.
	UnrecognizedOpcode = "cpu: unrecognised opcode (0x%02x) at (0x%04x)"

	// UnsupportedAddressingMode is returned when an effective address is
	// requested for an instruction that does not have one.
	UnsupportedAddressingMode = "cpu: no effective address in %s mode"
)

// CPU implements the instruction processing core of the 6502.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	// LastDefn is the definition of the most recently fetched instruction.
	// Valid from the moment the observer is called until the next fetch.
	LastDefn *instructions.Definition

	mem  *memory.RAM
	defs []*instructions.Definition

	// scratch register for read-modify-write and compare instructions
	scratch registers.Register

	halted bool
}

// NewCPU is the preferred method of initialisation for the CPU structure.
func NewCPU(mem *memory.RAM) *CPU {
	mc := &CPU{
		mem:  mem,
		defs: instructions.GetDefinitions(),
	}

	mc.PC = registers.NewProgramCounter(0)
	mc.A = registers.NewRegister(0, "A")
	mc.X = registers.NewRegister(0, "X")
	mc.Y = registers.NewRegister(0, "Y")
	mc.SP = registers.NewStackPointer(registers.ResetStackPointer)
	mc.Status = registers.NewStatusRegister()
	mc.scratch = registers.NewRegister(0, "scratch")

	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%v %v %v %v %v %v",
		mc.PC, mc.A, mc.X, mc.Y, mc.SP, mc.Status)
}

// HasHalted returns true if the CPU has processed a BRK instruction since the
// last Reset().
func (mc *CPU) HasHalted() bool {
	return mc.halted
}

// Peek returns the byte at the specified address without disturbing the CPU.
func (mc *CPU) Peek(address uint16) uint8 {
	return mc.mem.Read(address)
}

// Defn returns the instruction definition for the specified opcode. Returns
// nil for unofficial opcodes.
func (mc *CPU) Defn(opcode uint8) *instructions.Definition {
	return mc.defs[opcode]
}

// Reset restores the CPU to the power-on state. Registers are zeroed, the
// stack pointer and status register take their reset values and the program
// counter is loaded from the reset vector.
func (mc *CPU) Reset() {
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(registers.ResetStackPointer)
	mc.Status.Reset()
	mc.PC.Load(mc.mem.Read16(memory.ResetVector))
	mc.LastDefn = nil
	mc.halted = false
}

// Load copies the program into memory at the program origin and updates the
// reset vector to match. The CPU state is untouched until Reset() is called.
func (mc *CPU) Load(program []uint8) error {
	return mc.mem.Load(program)
}

// LoadAndRun is a convenience wrapping of Load(), Reset() and Run().
func (mc *CPU) LoadAndRun(program []uint8) error {
	if err := mc.Load(program); err != nil {
		return err
	}
	mc.Reset()
	return mc.Run()
}

// Run executes instructions from the current program counter until a BRK
// instruction halts the CPU.
func (mc *CPU) Run() error {
	return mc.RunWithObserver(nil)
}

// Observer is called at the end of each instruction fetch, before the
// instruction executes. The observer may inspect the CPU but it cannot
// influence execution.
type Observer interface {
	OnFetch(mc *CPU)
}

// ObserverFunc is an adapter to allow a plain function to be used as an
// Observer.
type ObserverFunc func(mc *CPU)

// OnFetch implements the Observer interface.
func (f ObserverFunc) OnFetch(mc *CPU) {
	f(mc)
}

// RunWithObserver is the same as Run() but with the observer called between
// the fetch and execute stages of every instruction, including the final BRK.
func (mc *CPU) RunWithObserver(obs Observer) error {
	for !mc.halted {
		if err := mc.ExecuteInstruction(obs); err != nil {
			return err
		}
	}
	return nil
}

// ExecuteInstruction fetches, decodes and executes a single instruction. The
// observer may be nil.
//
// When the instruction handler has not itself moved the program counter, the
// counter advances over the operand bytes after execution. A handler that
// loads the program counter, such as a taken branch or a jump, suppresses the
// advance.
func (mc *CPU) ExecuteInstruction(obs Observer) error {
	opcode := mc.mem.Read(mc.PC.Address())
	mc.PC.Add(1)

	// the program counter now points to the first operand byte. this is the
	// reference point for the post-execution advance
	operandPC := mc.PC.Address()

	defn := mc.defs[opcode]
	if defn == nil {
		return curated.Errorf(UnrecognizedOpcode, opcode, operandPC-1)
	}
	mc.LastDefn = defn

	if obs != nil {
		obs.OnFetch(mc)
	}

	if err := mc.execute(defn); err != nil {
		return err
	}

	if mc.PC.Address() == operandPC {
		mc.PC.Add(uint16(defn.Bytes - 1))
	}

	return nil
}

// setZeroSign updates the zero and sign flags from a result value. Almost
// every instruction that produces a value does this.
func (mc *CPU) setZeroSign(val uint8) {
	mc.Status.Zero = val == 0
	mc.Status.Sign = val&0x80 == 0x80
}

// effectiveAddress resolves the instruction operand to the address the
// instruction will work with. The program counter is expected to be pointing
// at the first operand byte.
func (mc *CPU) effectiveAddress(mode instructions.AddressingMode) (uint16, error) {
	pc := mc.PC.Address()

	switch mode {
	case instructions.Immediate:
		return pc, nil

	case instructions.ZeroPage:
		return uint16(mc.mem.Read(pc)), nil

	case instructions.ZeroPageX:
		// index addition wraps inside the zero page
		return uint16(mc.mem.Read(pc) + mc.X.Value()), nil

	case instructions.ZeroPageY:
		return uint16(mc.mem.Read(pc) + mc.Y.Value()), nil

	case instructions.Absolute:
		return mc.mem.Read16(pc), nil

	case instructions.AbsoluteX:
		return mc.mem.Read16(pc) + mc.X.Address(), nil

	case instructions.AbsoluteY:
		return mc.mem.Read16(pc) + mc.Y.Address(), nil

	case instructions.IndirectX:
		ptr := mc.mem.Read(pc) + mc.X.Value()
		lo := uint16(mc.mem.Read(uint16(ptr)))
		hi := uint16(mc.mem.Read(uint16(ptr + 1)))
		return hi<<8 | lo, nil

	case instructions.IndirectY:
		ptr := mc.mem.Read(pc)
		lo := uint16(mc.mem.Read(uint16(ptr)))
		hi := uint16(mc.mem.Read(uint16(ptr + 1)))
		return (hi<<8 | lo) + mc.Y.Address(), nil
	}

	return 0, curated.Errorf(UnsupportedAddressingMode, mode)
}

// operand is a convenience wrapping of effectiveAddress() for instructions
// that read their operand.
func (mc *CPU) operand(mode instructions.AddressingMode) (uint8, error) {
	address, err := mc.effectiveAddress(mode)
	if err != nil {
		return 0, err
	}
	return mc.mem.Read(address), nil
}

// branch implements the eight conditional branch instructions. The branch
// offset is signed and is relative to the address of the next instruction.
func (mc *CPU) branch(flag bool) {
	offset := mc.mem.Read(mc.PC.Address())
	if flag {
		mc.PC.Load(mc.PC.Address() + 1 + uint16(int8(offset)))
	}
}

// push a byte onto the stack.
func (mc *CPU) push(val uint8) {
	mc.mem.Write(mc.SP.Address(), val)
	mc.SP.Add(0xff)
}

// pull a byte from the stack.
func (mc *CPU) pull() uint8 {
	mc.SP.Add(0x01)
	return mc.mem.Read(mc.SP.Address())
}

func (mc *CPU) push16(val uint16) {
	mc.push(uint8(val >> 8))
	mc.push(uint8(val & 0x00ff))
}

func (mc *CPU) pull16() uint16 {
	lo := uint16(mc.pull())
	hi := uint16(mc.pull())
	return hi<<8 | lo
}

// compare implements CMP, CPX and CPY against the specified register. The
// carry flag is set when the register is greater than or equal to the
// operand.
func (mc *CPU) compare(r registers.Register, mode instructions.AddressingMode) error {
	val, err := mc.operand(mode)
	if err != nil {
		return err
	}
	mc.scratch = r
	mc.Status.Carry, _ = mc.scratch.Subtract(val, true)
	mc.setZeroSign(mc.scratch.Value())
	return nil
}

// shift implements the four shift and rotate instructions. With
// NoneAddressing the accumulator is the target, otherwise the target is read
// from and written back to memory.
func (mc *CPU) shift(defn *instructions.Definition) error {
	r := &mc.A
	var address uint16

	if defn.AddressingMode != instructions.NoneAddressing {
		var err error
		address, err = mc.effectiveAddress(defn.AddressingMode)
		if err != nil {
			return err
		}
		mc.scratch.Load(mc.mem.Read(address))
		r = &mc.scratch
	}

	switch defn.Operator {
	case instructions.Asl:
		mc.Status.Carry = r.ASL()
	case instructions.Lsr:
		mc.Status.Carry = r.LSR()
	case instructions.Rol:
		mc.Status.Carry = r.ROL(mc.Status.Carry)
	case instructions.Ror:
		mc.Status.Carry = r.ROR(mc.Status.Carry)
	}

	if defn.AddressingMode != instructions.NoneAddressing {
		mc.mem.Write(address, r.Value())
	}
	mc.setZeroSign(r.Value())

	return nil
}

// crement implements INC and DEC. delta is 0x01 or 0xff.
func (mc *CPU) crement(mode instructions.AddressingMode, delta uint8) error {
	address, err := mc.effectiveAddress(mode)
	if err != nil {
		return err
	}
	mc.scratch.Load(mc.mem.Read(address))
	mc.scratch.Add(delta, false)
	mc.mem.Write(address, mc.scratch.Value())
	mc.setZeroSign(mc.scratch.Value())
	return nil
}

// execute dispatches on the operator of the fetched instruction.
func (mc *CPU) execute(defn *instructions.Definition) error {
	switch defn.Operator {
	case instructions.Brk:
		mc.halted = true

	case instructions.Nop:
		// does nothing, does it well

	case instructions.Lda:
		val, err := mc.operand(defn.AddressingMode)
		if err != nil {
			return err
		}
		mc.A.Load(val)
		mc.setZeroSign(mc.A.Value())

	case instructions.Ldx:
		val, err := mc.operand(defn.AddressingMode)
		if err != nil {
			return err
		}
		mc.X.Load(val)
		mc.setZeroSign(mc.X.Value())

	case instructions.Ldy:
		val, err := mc.operand(defn.AddressingMode)
		if err != nil {
			return err
		}
		mc.Y.Load(val)
		mc.setZeroSign(mc.Y.Value())

	case instructions.Sta:
		address, err := mc.effectiveAddress(defn.AddressingMode)
		if err != nil {
			return err
		}
		mc.mem.Write(address, mc.A.Value())

	case instructions.Stx:
		address, err := mc.effectiveAddress(defn.AddressingMode)
		if err != nil {
			return err
		}
		mc.mem.Write(address, mc.X.Value())

	case instructions.Sty:
		address, err := mc.effectiveAddress(defn.AddressingMode)
		if err != nil {
			return err
		}
		mc.mem.Write(address, mc.Y.Value())

	case instructions.Adc:
		val, err := mc.operand(defn.AddressingMode)
		if err != nil {
			return err
		}
		mc.Status.Carry, mc.Status.Overflow = mc.A.Add(val, mc.Status.Carry)
		mc.setZeroSign(mc.A.Value())

	case instructions.Sbc:
		val, err := mc.operand(defn.AddressingMode)
		if err != nil {
			return err
		}
		mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(val, mc.Status.Carry)
		mc.setZeroSign(mc.A.Value())

	case instructions.And:
		val, err := mc.operand(defn.AddressingMode)
		if err != nil {
			return err
		}
		mc.A.AND(val)
		mc.setZeroSign(mc.A.Value())

	case instructions.Ora:
		val, err := mc.operand(defn.AddressingMode)
		if err != nil {
			return err
		}
		mc.A.ORA(val)
		mc.setZeroSign(mc.A.Value())

	case instructions.Eor:
		val, err := mc.operand(defn.AddressingMode)
		if err != nil {
			return err
		}
		mc.A.EOR(val)
		mc.setZeroSign(mc.A.Value())

	case instructions.Bit:
		val, err := mc.operand(defn.AddressingMode)
		if err != nil {
			return err
		}
		mc.scratch.Load(val)
		mc.Status.Zero = mc.A.Value()&val == 0
		mc.Status.Sign = mc.scratch.IsNegative()
		mc.Status.Overflow = mc.scratch.IsBitV()

	case instructions.Cmp:
		return mc.compare(mc.A, defn.AddressingMode)

	case instructions.Cpx:
		return mc.compare(mc.X, defn.AddressingMode)

	case instructions.Cpy:
		return mc.compare(mc.Y, defn.AddressingMode)

	case instructions.Asl, instructions.Lsr, instructions.Rol, instructions.Ror:
		return mc.shift(defn)

	case instructions.Inc:
		return mc.crement(defn.AddressingMode, 0x01)

	case instructions.Dec:
		return mc.crement(defn.AddressingMode, 0xff)

	case instructions.Inx:
		mc.X.Add(1, false)
		mc.setZeroSign(mc.X.Value())

	case instructions.Iny:
		mc.Y.Add(1, false)
		mc.setZeroSign(mc.Y.Value())

	case instructions.Dex:
		mc.X.Add(0xff, false)
		mc.setZeroSign(mc.X.Value())

	case instructions.Dey:
		mc.Y.Add(0xff, false)
		mc.setZeroSign(mc.Y.Value())

	case instructions.Jmp:
		target := mc.mem.Read16(mc.PC.Address())
		if defn.OpCode == 0x6c {
			// the 6502 cannot read an indirect jump vector that straddles a
			// page boundary. the high byte of the vector is read from the
			// beginning of the same page, not the next one
			if target&0x00ff == 0x00ff {
				lo := uint16(mc.mem.Read(target))
				hi := uint16(mc.mem.Read(target & 0xff00))
				target = hi<<8 | lo
			} else {
				target = mc.mem.Read16(target)
			}
		}
		mc.PC.Load(target)

	case instructions.Jsr:
		target := mc.mem.Read16(mc.PC.Address())
		mc.push16(mc.PC.Address() + 1)
		mc.PC.Load(target)

	case instructions.Rts:
		mc.PC.Load(mc.pull16() + 1)

	case instructions.Rti:
		mc.Status.FromValue(mc.pull())
		mc.Status.Break = false
		mc.Status.Break2 = true
		mc.PC.Load(mc.pull16())

	case instructions.Bcc:
		mc.branch(!mc.Status.Carry)

	case instructions.Bcs:
		mc.branch(mc.Status.Carry)

	case instructions.Beq:
		mc.branch(mc.Status.Zero)

	case instructions.Bne:
		mc.branch(!mc.Status.Zero)

	case instructions.Bmi:
		mc.branch(mc.Status.Sign)

	case instructions.Bpl:
		mc.branch(!mc.Status.Sign)

	case instructions.Bvs:
		mc.branch(mc.Status.Overflow)

	case instructions.Bvc:
		mc.branch(!mc.Status.Overflow)

	case instructions.Pha:
		mc.push(mc.A.Value())

	case instructions.Pla:
		mc.A.Load(mc.pull())
		mc.setZeroSign(mc.A.Value())

	case instructions.Php:
		// the pushed copy of the status register always has both break bits
		// set
		mc.push(mc.Status.Value() | 0x30)

	case instructions.Plp:
		mc.Status.FromValue(mc.pull())
		mc.Status.Break = false
		mc.Status.Break2 = true

	case instructions.Clc:
		mc.Status.Carry = false

	case instructions.Sec:
		mc.Status.Carry = true

	case instructions.Cli:
		mc.Status.InterruptDisable = false

	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Clv:
		mc.Status.Overflow = false

	case instructions.Cld:
		mc.Status.DecimalMode = false

	case instructions.Sed:
		mc.Status.DecimalMode = true

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.setZeroSign(mc.X.Value())

	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.setZeroSign(mc.Y.Value())

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.setZeroSign(mc.A.Value())

	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.setZeroSign(mc.A.Value())

	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.setZeroSign(mc.X.Value())

	case instructions.Txs:
		// the only transfer that does not affect the status register
		mc.SP.Load(mc.X.Value())
	}

	return nil
}
