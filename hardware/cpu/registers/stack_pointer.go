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

package registers

import "fmt"

// ResetStackPointer is the value the stack pointer takes on reset.
const ResetStackPointer = 0xfd

// stack page of the 6502.
const stackOrigin = 0x0100

// StackPointer is the 8 bit stack pointer. The stack is always in page one of
// memory so the Address() function folds that in.
type StackPointer struct {
	value uint8
}

// NewStackPointer is the preferred method of initialisation for the
// StackPointer type.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{value: val}
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("SP=%02x", sp.value)
}

// Value returns the current value of the stack pointer.
func (sp StackPointer) Value() uint8 {
	return sp.value
}

// Address returns the memory address currently pointed to by the stack
// pointer.
func (sp StackPointer) Address() uint16 {
	return stackOrigin | uint16(sp.value)
}

// Load value into the stack pointer.
func (sp *StackPointer) Load(val uint8) {
	sp.value = val
}

// Add value to the stack pointer, wrapping inside the stack page. A push is
// an Add of 0xff (ie. minus one) and a pull an Add of 0x01.
func (sp *StackPointer) Add(val uint8) {
	sp.value += val
}
