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

import "strings"

// StatusRegister is the status register of the CPU, with each flag stored as
// a plain bool. The packed representation only exists when required, via the
// Value() and FromValue() functions.
//
// Break2 is bit 5 of the packed register. On the silicon it always reads as
// set but it is stored here so the stack behaviour of PHP/PLP/RTI can be
// expressed directly.
type StatusRegister struct {
	Carry            bool
	Zero             bool
	InterruptDisable bool
	DecimalMode      bool
	Break            bool
	Break2           bool
	Overflow         bool
	Sign             bool
}

// NewStatusRegister is the preferred method of initialisation for the
// StatusRegister type.
func NewStatusRegister() StatusRegister {
	sr := StatusRegister{}
	sr.Reset()
	return sr
}

// String returns the state of the flags as an 8 rune string. An upper case
// rune indicates the flag is set. Bit 5 is rendered as 'U' for unused.
func (sr StatusRegister) String() string {
	s := strings.Builder{}

	render := func(set bool, r rune) {
		if set {
			s.WriteRune(r)
		} else {
			s.WriteRune(r + 0x20)
		}
	}

	render(sr.Sign, 'S')
	render(sr.Overflow, 'V')
	render(sr.Break2, 'U')
	render(sr.Break, 'B')
	render(sr.DecimalMode, 'D')
	render(sr.InterruptDisable, 'I')
	render(sr.Zero, 'Z')
	render(sr.Carry, 'C')

	return s.String()
}

// Reset status flags to the power-on state.
func (sr *StatusRegister) Reset() {
	sr.FromValue(0b00100100)
}

// Value converts the StatusRegister to the packed representation seen by
// running programs.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Carry {
		v |= 0x01
	}
	if sr.Zero {
		v |= 0x02
	}
	if sr.InterruptDisable {
		v |= 0x04
	}
	if sr.DecimalMode {
		v |= 0x08
	}
	if sr.Break {
		v |= 0x10
	}
	if sr.Break2 {
		v |= 0x20
	}
	if sr.Overflow {
		v |= 0x40
	}
	if sr.Sign {
		v |= 0x80
	}

	return v
}

// FromValue unpacks v into the status flags.
func (sr *StatusRegister) FromValue(v uint8) {
	sr.Carry = v&0x01 == 0x01
	sr.Zero = v&0x02 == 0x02
	sr.InterruptDisable = v&0x04 == 0x04
	sr.DecimalMode = v&0x08 == 0x08
	sr.Break = v&0x10 == 0x10
	sr.Break2 = v&0x20 == 0x20
	sr.Overflow = v&0x40 == 0x40
	sr.Sign = v&0x80 == 0x80
}
