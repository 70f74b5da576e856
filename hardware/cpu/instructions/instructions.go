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

// Package instructions defines the table of instruction definitions for the
// 6502. The table records the static properties of every official opcode:
// mnemonic, instruction length, base cycle count and addressing mode.
//
// Cycle counts are descriptive only. Nothing in the execution path consumes
// them but they are useful for disassembly output.
package instructions

import "fmt"

// Operator is the instruction mnemonic, the operation performed regardless of
// addressing mode.
type Operator int

// All 56 official operators of the 6502.
const (
	Adc Operator = iota
	And
	Asl
	Bcc
	Bcs
	Beq
	Bit
	Bmi
	Bne
	Bpl
	Brk
	Bvc
	Bvs
	Clc
	Cld
	Cli
	Clv
	Cmp
	Cpx
	Cpy
	Dec
	Dex
	Dey
	Eor
	Inc
	Inx
	Iny
	Jmp
	Jsr
	Lda
	Ldx
	Ldy
	Lsr
	Nop
	Ora
	Pha
	Php
	Pla
	Plp
	Rol
	Ror
	Rti
	Rts
	Sbc
	Sec
	Sed
	Sei
	Sta
	Stx
	Sty
	Tax
	Tay
	Tsx
	Txa
	Txs
	Tya
)

var operatorStrings = [...]string{
	"ADC", "AND", "ASL", "BCC", "BCS", "BEQ", "BIT", "BMI", "BNE", "BPL",
	"BRK", "BVC", "BVS", "CLC", "CLD", "CLI", "CLV", "CMP", "CPX", "CPY",
	"DEC", "DEX", "DEY", "EOR", "INC", "INX", "INY", "JMP", "JSR", "LDA",
	"LDX", "LDY", "LSR", "NOP", "ORA", "PHA", "PHP", "PLA", "PLP", "ROL",
	"ROR", "RTI", "RTS", "SBC", "SEC", "SED", "SEI", "STA", "STX", "STY",
	"TAX", "TAY", "TSX", "TXA", "TXS", "TYA",
}

func (operator Operator) String() string {
	return operatorStrings[operator]
}

// AddressingMode describes how the instruction's operand bytes resolve to an
// effective address.
type AddressingMode int

// The addressing modes used by the execution core. Instructions that carry
// their target implicitly (implied and accumulator operations, branches and
// jumps) are tabled as NoneAddressing and handled individually.
const (
	NoneAddressing AddressingMode = iota
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	IndirectX
	IndirectY
)

func (mode AddressingMode) String() string {
	switch mode {
	case NoneAddressing:
		return "NONE"
	case Immediate:
		return "IMMEDIATE"
	case ZeroPage:
		return "ZERO PAGE"
	case ZeroPageX:
		return "ZERO PAGE,X"
	case ZeroPageY:
		return "ZERO PAGE,Y"
	case Absolute:
		return "ABSOLUTE"
	case AbsoluteX:
		return "ABSOLUTE,X"
	case AbsoluteY:
		return "ABSOLUTE,Y"
	case IndirectX:
		return "(INDIRECT,X)"
	case IndirectY:
		return "(INDIRECT),Y"
	}
	return "unknown addressing mode"
}

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
}

// String returns a single line summary of the definition.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s (%d bytes, %d cycles) [%s]",
		defn.OpCode, defn.Operator, defn.Bytes, defn.Cycles, defn.AddressingMode)
}
