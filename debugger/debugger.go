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

// Package debugger implements a small single-key terminal debugger for the
// CPU. The terminal is placed in cbreak mode so commands take effect without
// waiting for a newline.
package debugger

import (
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/debugger/easyterm"
	"github.com/jetsetilly/gopher6502/disassembly"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/logger"
)

// StateDumpFile is the file the v command writes the machine state graph to,
// in graphviz dot format.
const StateDumpFile = "cpu_state.dot"

// Debugger is the container for the debugging session.
type Debugger struct {
	mc   *cpu.CPU
	ram  *memory.RAM
	term easyterm.Terminal
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type. The program is loaded and the CPU reset, ready for the first step.
func NewDebugger(program []uint8) (*Debugger, error) {
	dbg := &Debugger{
		ram: memory.NewRAM(),
	}
	dbg.mc = cpu.NewCPU(dbg.ram)

	if err := dbg.mc.Load(program); err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}
	dbg.mc.Reset()

	return dbg, nil
}

// Start the interactive session. Returns when the program halts, when the
// user quits, or on a CPU error.
func (dbg *Debugger) Start() error {
	if err := dbg.term.Initialise(os.Stdin, os.Stdout); err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()
	dbg.term.CBreakMode()

	dbg.term.Print("single-key commands: [s]tep [r]un [v]iz [l]og [q]uit\r\n")

	running := false
	for !dbg.mc.HasHalted() {
		if !running {
			dbg.term.Print("%s\r\n  %v\r\n", disassembly.FromMemory(dbg.mc, dbg.mc.PC.Address()), dbg.mc)

			k, err := dbg.term.ReadRune()
			if err != nil {
				return curated.Errorf("debugger: %v", err)
			}

			switch k {
			case 'q':
				logger.Log("debugger", "session ended before the program halted")
				return nil
			case 'r':
				running = true
				continue
			case 'v':
				if err := dbg.dumpState(); err != nil {
					dbg.term.Print("%v\r\n", err)
				} else {
					dbg.term.Print("machine state written to %s\r\n", StateDumpFile)
				}
				continue
			case 'l':
				logger.Tail(os.Stdout, 10)
				continue
			case 's', ' ', '\n', '\r':
				// fall through to the step
			default:
				continue
			}
		}

		if err := dbg.mc.ExecuteInstruction(nil); err != nil {
			logger.Logf("debugger", "%v", err)
			return err
		}
	}

	dbg.term.Print("halted\r\n  %v\r\n", dbg.mc)

	return nil
}

// the shape of the machine state as it appears in the dot file. the full CPU
// type is unsuitable for graphing because of the memory it hangs on to.
type machineState struct {
	Registers string
	Status    string
	Next      string
	Stack     []uint8
}

func (dbg *Debugger) dumpState() error {
	state := &machineState{
		Registers: dbg.mc.String(),
		Status:    dbg.mc.Status.String(),
		Next:      disassembly.FromMemory(dbg.mc, dbg.mc.PC.Address()).String(),
	}

	// the in-use portion of the stack, top of the stack first
	for i := uint16(dbg.mc.SP.Value()) + 1; i <= 0xff; i++ {
		state.Stack = append(state.Stack, dbg.mc.Peek(0x0100|i))
	}

	f, err := os.Create(StateDumpFile)
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer f.Close()

	memviz.Map(f, state)
	logger.Logf("debugger", "state graph written to %s", StateDumpFile)

	return nil
}
