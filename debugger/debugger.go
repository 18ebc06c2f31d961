// This file is part of appleie.
//
// appleie is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// appleie is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with appleie.  If not, see <https://www.gnu.org/licenses/>.

package debugger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/appleie/appleie/curated"
	"github.com/appleie/appleie/debugger/terminal"
	"github.com/appleie/appleie/hardware"
)

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	m    *hardware.Machine
	term terminal.Terminal

	// print every instruction during RUN
	trace bool

	// interrupt signals from the operating system. checked between
	// instructions during RUN
	intEvents chan os.Signal

	// the debugger will quit at the end of the current command
	quit bool
}

// NewDebugger creates and initialises everything required for a new debugging
// session of the machine.
func NewDebugger(m *hardware.Machine, term terminal.Terminal) (*Debugger, error) {
	if m == nil {
		return nil, curated.Errorf("debugger: a machine is required")
	}
	if term == nil {
		return nil, curated.Errorf("debugger: a terminal is required")
	}

	return &Debugger{
		m:    m,
		term: term,
	}, nil
}

// AllowLogging implements the logger.Permission interface.
func (dbg *Debugger) AllowLogging() bool {
	return true
}

// Start the main debugger sequence. Returns when the QUIT command is received,
// when the input is exhausted or on an unrecoverable terminal error.
func (dbg *Debugger) Start() error {
	if err := dbg.term.Initialise(); err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	dbg.intEvents = make(chan os.Signal, 1)
	signal.Notify(dbg.intEvents, os.Interrupt)
	defer signal.Stop(dbg.intEvents)

	fmt.Fprintln(dbg.writer(terminal.StyleFeedback), dbg.m.Mem)

	return dbg.inputLoop()
}

func (dbg *Debugger) inputLoop() error {
	buffer := make([]byte, 256)

	for !dbg.quit {
		n, err := dbg.term.TermRead(buffer, dbg.prompt())
		if err != nil {
			if errors.Is(err, io.EOF) || curated.Is(err, terminal.UserInterrupt) {
				return nil
			}
			if curated.Is(err, terminal.LineTooLong) {
				dbg.printLine(terminal.StyleError, "%v", err)
				continue
			}
			return curated.Errorf("debugger: %v", err)
		}

		input := string(buffer[:n])
		dbg.printLine(terminal.StyleEcho, "%s", input)

		if err := dbg.ParseCommand(input); err != nil {
			dbg.printLine(terminal.StyleError, "%v", err)
		}
	}

	return nil
}

// prompt shows the address of the next instruction.
func (dbg *Debugger) prompt() terminal.Prompt {
	return terminal.Prompt{
		Content: fmt.Sprintf("%04x", dbg.m.CPU.PC.Address()),
		Halted:  dbg.m.CPU.Halted(),
	}
}

// interrupted returns true if an interrupt signal has been received.
func (dbg *Debugger) interrupted() bool {
	select {
	case <-dbg.intEvents:
		return true
	default:
	}
	return false
}
