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

// Package cpu implements the instruction processing core of the 6502, the
// variant found in the NES console. Decimal mode is absent on that silicon
// and is absent here; the decimal flag can be set and cleared but has no
// effect on arithmetic.
//
// The simplest use of the package loads a program and runs it until the
// program halts with a BRK instruction:
//
//	mem := memory.NewRAM()
//	mc := cpu.NewCPU(mem)
//	err := mc.LoadAndRun(program)
//
// For finer control the Load(), Reset() and Run() stages can be called
// individually, or ExecuteInstruction() used to step one instruction at a
// time.
//
// An Observer can be attached with RunWithObserver(). The observer is called
// after each instruction fetch, before the instruction executes. It can see
// the CPU but not change the course of execution; the disassembly and
// debugger packages are both built on this hook.
//
// Quirks of the original hardware are preserved. Indexed zero page addressing
// wraps inside the zero page, and an indirect JMP through a vector at the end
// of a page reads the high byte of the target from the start of the same
// page.
package cpu
