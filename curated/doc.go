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

// Package curated is a helper package for the plain Go language error type.
// Errors created with Errorf() can be tested for identity without string
// comparison at the call site.
//
// The Is() function checks if an error is a specific curated error. For
// example, to check if an error from the CPU is an unrecognised opcode:
//
//	if curated.Is(err, cpu.UnrecognizedOpcode) {
//		...
//	}
//
// The IsAny() function checks if the error is a curated error of any kind.
// The Has() function meanwhile, checks the chain of wrapped errors for the
// specified pattern.
//
// Generally, if an error is being passed upwards through a calling chain, the
// wrapping function should add context:
//
//	return curated.Errorf("debugger: %v", err)
//
// When the message is formatted with Error(), duplicate adjacent parts of the
// message are removed. This keeps messages concise even when the same context
// has been added at more than one point in the chain.
package curated
