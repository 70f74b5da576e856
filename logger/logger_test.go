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

package logger_test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/logger"
	"github.com/jetsetilly/gopher6502/test"
)

func TestLogger(t *testing.T) {
	logger.Clear()

	tw := &test.Writer{}

	logger.Write(tw)
	test.ExpectedSuccess(t, tw.Compare(""))

	logger.Log("test", "this is a test")
	logger.Write(tw)
	test.ExpectedSuccess(t, tw.Compare("test: this is a test\n"))

	// clear the test.Writer buffer before continuing, makes comparisons
	// easier to manage
	tw.Clear()

	logger.Log("test2", "this is another test")
	logger.Write(tw)
	test.ExpectedSuccess(t, tw.Compare("test: this is a test\ntest2: this is another test\n"))

	// asking for too many entries in a Tail() should be okay
	tw.Clear()
	logger.Tail(tw, 100)
	test.ExpectedSuccess(t, tw.Compare("test: this is a test\ntest2: this is another test\n"))

	// asking for exactly the correct number of entries is okay
	tw.Clear()
	logger.Tail(tw, 2)
	test.ExpectedSuccess(t, tw.Compare("test: this is a test\ntest2: this is another test\n"))

	// asking for fewer entries is okay too
	tw.Clear()
	logger.Tail(tw, 1)
	test.ExpectedSuccess(t, tw.Compare("test2: this is another test\n"))

	// and no entries
	tw.Clear()
	logger.Tail(tw, 0)
	test.ExpectedSuccess(t, tw.Compare(""))
}

func TestRepeatFolding(t *testing.T) {
	logger.Clear()

	tw := &test.Writer{}

	logger.Log("cpu", "same entry")
	logger.Log("cpu", "same entry")
	logger.Log("cpu", "same entry")
	logger.Write(tw)
	test.ExpectedSuccess(t, tw.Compare("cpu: same entry (repeat x3)\n"))

	// a different tag breaks the fold even with the same detail
	tw.Clear()
	logger.Log("mem", "same entry")
	logger.Write(tw)
	test.ExpectedSuccess(t, tw.Compare("cpu: same entry (repeat x3)\nmem: same entry\n"))
}
