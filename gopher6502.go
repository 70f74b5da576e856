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

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/jetsetilly/gopher6502/debugger"
	"github.com/jetsetilly/gopher6502/disassembly"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/logger"
	"github.com/jetsetilly/gopher6502/performance"
	"github.com/jetsetilly/gopher6502/statsview"
)

// the program run when no file is given on the command line. loads $c0 into
// the accumulator, transfers it to X and increments
var demoProgram = []uint8{0xa9, 0xc0, 0xaa, 0xe8, 0x00}

func main() {
	mode := "RUN"
	args := os.Args[1:]

	if len(args) > 0 {
		switch strings.ToUpper(args[0]) {
		case "RUN", "DEBUG", "DISASM", "PERFORMANCE":
			mode = strings.ToUpper(args[0])
			args = args[1:]
		}
	}

	var err error
	switch mode {
	case "RUN":
		err = emulate(args)
	case "DEBUG":
		err = debug(args)
	case "DISASM":
		err = disasm(args)
	case "PERFORMANCE":
		err = perform(args)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		os.Exit(10)
	}
}

// loadProgram reads the program file named in the remaining arguments,
// falling back to the demonstration program when there is none.
func loadProgram(flags *flag.FlagSet) ([]uint8, error) {
	if flags.NArg() == 0 {
		logger.Log("main", "no program file, using demonstration program")
		return demoProgram, nil
	}

	program, err := os.ReadFile(flags.Arg(0))
	if err != nil {
		return nil, fmt.Errorf("main: %v", err)
	}
	return program, nil
}

func emulate(args []string) error {
	flags := flag.NewFlagSet("run", flag.ExitOnError)
	trace := flags.Bool("trace", false, "write an execution trace to stdout")
	echoLog := flags.Bool("log", false, "echo log entries to stderr")
	flags.Parse(args)

	if *echoLog {
		logger.SetEcho(os.Stderr)
	}

	program, err := loadProgram(flags)
	if err != nil {
		return err
	}

	ram := memory.NewRAM()
	mc := cpu.NewCPU(ram)
	if err := mc.Load(program); err != nil {
		return err
	}
	mc.Reset()

	if *trace {
		err = mc.RunWithObserver(disassembly.NewTracer(os.Stdout))
	} else {
		err = mc.Run()
	}
	if err != nil {
		return err
	}

	fmt.Println(mc)

	return nil
}

func debug(args []string) error {
	flags := flag.NewFlagSet("debug", flag.ExitOnError)
	flags.Parse(args)

	program, err := loadProgram(flags)
	if err != nil {
		return err
	}

	dbg, err := debugger.NewDebugger(program)
	if err != nil {
		return err
	}

	return dbg.Start()
}

func disasm(args []string) error {
	flags := flag.NewFlagSet("disasm", flag.ExitOnError)
	flags.Parse(args)

	program, err := loadProgram(flags)
	if err != nil {
		return err
	}

	return disassembly.Write(os.Stdout, program)
}

func perform(args []string) error {
	flags := flag.NewFlagSet("performance", flag.ExitOnError)
	duration := flags.String("duration", "5s", "run duration")
	profile := flags.Bool("profile", false, "write cpu and memory profiles")
	stats := flags.Bool("statsview", false, "run stats server")
	flags.Parse(args)

	program, err := loadProgram(flags)
	if err != nil {
		return err
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("statsview not available. compile with statsview build tag.")
		}
	}

	return performance.Check(os.Stdout, *profile, program, *duration)
}
