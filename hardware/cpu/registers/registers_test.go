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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/test"
)

func TestRegister(t *testing.T) {
	r := registers.NewRegister(0, "A")
	test.ExpectedSuccess(t, r.IsZero())
	test.ExpectedFailure(t, r.IsNegative())

	r.Load(0xff)
	test.ExpectedFailure(t, r.IsZero())
	test.ExpectedSuccess(t, r.IsNegative())
	test.Equate(t, r.Value(), 0xff)
	test.Equate(t, r.Address(), 0x00ff)
}

func TestRegisterArithmetic(t *testing.T) {
	r := registers.NewRegister(0, "A")

	// simple addition
	carry, overflow := r.Add(0x10, false)
	test.ExpectedFailure(t, carry)
	test.ExpectedFailure(t, overflow)
	test.Equate(t, r.Value(), 0x10)

	// addition that carries
	r.Load(0xff)
	carry, overflow = r.Add(0x01, false)
	test.ExpectedSuccess(t, carry)
	test.ExpectedFailure(t, overflow)
	test.ExpectedSuccess(t, r.IsZero())

	// addition of two positive numbers overflowing into the sign bit
	r.Load(0x7f)
	carry, overflow = r.Add(0x01, false)
	test.ExpectedFailure(t, carry)
	test.ExpectedSuccess(t, overflow)
	test.Equate(t, r.Value(), 0x80)

	// carry argument feeds into the sum
	r.Load(0x01)
	carry, overflow = r.Add(0x01, true)
	test.ExpectedFailure(t, carry)
	test.ExpectedFailure(t, overflow)
	test.Equate(t, r.Value(), 0x03)
}

func TestRegisterSubtraction(t *testing.T) {
	r := registers.NewRegister(0x05, "A")

	// carry=true means no borrow
	carry, overflow := r.Subtract(0x03, true)
	test.ExpectedSuccess(t, carry)
	test.ExpectedFailure(t, overflow)
	test.Equate(t, r.Value(), 0x02)

	// subtracting a larger number borrows (carry returned false)
	r.Load(0x03)
	carry, _ = r.Subtract(0x05, true)
	test.ExpectedFailure(t, carry)
	test.Equate(t, r.Value(), 0xfe)
}

func TestRegisterLogical(t *testing.T) {
	r := registers.NewRegister(0b11001100, "A")

	r.AND(0b10101010)
	test.Equate(t, r.Value(), 0b10001000)

	r.ORA(0b00000111)
	test.Equate(t, r.Value(), 0b10001111)

	r.EOR(0b11111111)
	test.Equate(t, r.Value(), 0b01110000)
}

func TestRegisterShifts(t *testing.T) {
	r := registers.NewRegister(0b10000001, "A")

	test.ExpectedSuccess(t, r.ASL())
	test.Equate(t, r.Value(), 0b00000010)

	r.Load(0b10000001)
	test.ExpectedSuccess(t, r.LSR())
	test.Equate(t, r.Value(), 0b01000000)

	// rotations move the outgoing bit through the carry
	r.Load(0b10000000)
	test.ExpectedSuccess(t, r.ROL(true))
	test.Equate(t, r.Value(), 0b00000001)

	r.Load(0b00000001)
	test.ExpectedSuccess(t, r.ROR(true))
	test.Equate(t, r.Value(), 0b10000000)
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0x8000)
	test.Equate(t, pc.Address(), 0x8000)

	pc.Add(2)
	test.Equate(t, pc.Address(), 0x8002)

	// wrapping at the top of the address space
	pc.Load(0xffff)
	pc.Add(1)
	test.Equate(t, pc.Address(), 0x0000)
}

func TestStackPointer(t *testing.T) {
	sp := registers.NewStackPointer(registers.ResetStackPointer)
	test.Equate(t, sp.Value(), 0xfd)
	test.Equate(t, sp.Address(), 0x01fd)

	// a push decrements, a pull increments
	sp.Add(0xff)
	test.Equate(t, sp.Address(), 0x01fc)
	sp.Add(0x01)
	test.Equate(t, sp.Address(), 0x01fd)

	// the stack pointer wraps inside the stack page
	sp.Load(0x00)
	sp.Add(0xff)
	test.Equate(t, sp.Address(), 0x01ff)
}

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatusRegister()

	// power-on state
	test.Equate(t, sr.Value(), 0b00100100)
	test.ExpectedSuccess(t, sr.InterruptDisable)
	test.ExpectedSuccess(t, sr.Break2)
	test.Equate(t, sr.String(), "svUbdIzc")

	sr.Carry = true
	sr.Sign = true
	test.Equate(t, sr.Value(), 0b10100101)
	test.Equate(t, sr.String(), "SvUbdIzC")

	// unpacking a value updates every flag
	sr.FromValue(0b01000010)
	test.ExpectedSuccess(t, sr.Overflow)
	test.ExpectedSuccess(t, sr.Zero)
	test.ExpectedFailure(t, sr.Carry)
	test.ExpectedFailure(t, sr.Break2)
	test.Equate(t, sr.Value(), 0b01000010)
}
