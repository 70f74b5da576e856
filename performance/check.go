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

// Package performance contains the rough and ready performance measurement
// for the emulation, along with functions to profile such measurements.
package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/memory"
)

// PerformanceError is the error pattern for all performance problems.
const PerformanceError = "performance: %v"

// Check measures how many instructions per second the emulation achieves
// with the supplied program. The program is run to its halt repeatedly until
// the duration has elapsed, with a reset between each run.
func Check(output io.Writer, profile bool, program []uint8, runTime string) error {
	duration, err := time.ParseDuration(runTime)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	ram := memory.NewRAM()
	mc := cpu.NewCPU(ram)
	if err := mc.Load(program); err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	instructions := 0
	counter := cpu.ObserverFunc(func(_ *cpu.CPU) {
		instructions++
	})

	timesUp := make(chan bool, 1)

	err = cpuProfile(profile, "cpu.profile", func() error {
		time.AfterFunc(duration, func() {
			timesUp <- true
		})

		for {
			select {
			case <-timesUp:
				return nil
			default:
			}

			mc.Reset()
			if err := mc.RunWithObserver(counter); err != nil {
				return err
			}
		}
	})
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	fmt.Fprintf(output, "%.0f instructions/sec (%d instructions in %.2f seconds)\n",
		float64(instructions)/duration.Seconds(), instructions, duration.Seconds())

	return memProfile(profile, "mem.profile")
}
