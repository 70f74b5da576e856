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

// Package registers implements the four register types of the 6502: the
// general purpose 8 bit Register (accumulator and index registers), the
// ProgramCounter, the StackPointer and the StatusRegister.
//
// Arithmetic functions on the Register type return carry and overflow
// conditions rather than setting flags themselves. Deciding which flags to
// update for which instruction is the responsibility of the CPU.
package registers
