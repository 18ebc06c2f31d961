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
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/appleie/appleie/curated"
	"github.com/appleie/appleie/debugger/terminal"
	"github.com/appleie/appleie/disassembly"
	"github.com/appleie/appleie/hardware/cpu/execution"
	"github.com/appleie/appleie/logger"
	"github.com/appleie/appleie/translate"
)

// list of commands.
const (
	cmdStep   = "STEP"
	cmdRun    = "RUN"
	cmdTrace  = "TRACE"
	cmdRegs   = "REGS"
	cmdMem    = "MEM"
	cmdPoke   = "POKE"
	cmdDisasm = "DISASM"
	cmdReset  = "RESET"
	cmdMemviz = "MEMVIZ"
	cmdLog    = "LOG"
	cmdPrefs  = "PREFS"
	cmdHelp   = "HELP"
	cmdQuit   = "QUIT"
)

// help text for each command. the first line is the template of the command.
var help = map[string]string{
	cmdStep:   "STEP [n]\nexecute the next n instructions. the default is one instruction",
	cmdRun:    "RUN\nexecute instructions until the CPU halts or an error occurs",
	cmdTrace:  "TRACE [ON|OFF]\nprint every instruction executed by RUN",
	cmdRegs:   "REGS\nshow the CPU registers and the number of cycles executed",
	cmdMem:    "MEM address [length]\nhex dump of memory. the default length is 16 bytes",
	cmdPoke:   "POKE address value\nchange the contents of memory. ROM can be poked",
	cmdDisasm: "DISASM [address] [n]\ndisassemble n instructions from address. the default is ten instructions from the PC",
	cmdReset:  "RESET\nreset the CPU, clear RAM and point the PC at the origin address",
	cmdMemviz: "MEMVIZ filename\nwrite a graphviz description of the CPU to file",
	cmdLog:    "LOG [n]\nshow the last n entries in the log. the default is ten entries",
	cmdPrefs:  "PREFS\nlist the machine preferences",
	cmdHelp:   "HELP [command]\nlist commands or show help for a single command",
	cmdQuit:   "QUIT\nexit the debugger",
}

// sentinel patterns.
const (
	CommandError = "debugger: %s: %v"
)

// ParseCommand executes a single line of input. An empty line is the same as
// the STEP command.
func (dbg *Debugger) ParseCommand(input string) error {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		tokens = []string{cmdStep}
	}

	cmd := strings.ToUpper(tokens[0])
	args := tokens[1:]

	var err error

	switch cmd {
	case cmdStep:
		n := 1
		if len(args) > 0 {
			n, err = strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return curated.Errorf(CommandError, cmd, "number of steps must be a positive number")
			}
		}
		err = dbg.step(n)

	case cmdRun:
		err = dbg.run()

	case cmdTrace:
		if len(args) > 0 {
			switch strings.ToUpper(args[0]) {
			case "ON":
				dbg.trace = true
			case "OFF":
				dbg.trace = false
			default:
				return curated.Errorf(CommandError, cmd, "argument must be ON or OFF")
			}
		} else {
			dbg.trace = !dbg.trace
		}
		if dbg.trace {
			dbg.printLine(terminal.StyleFeedback, "trace is on")
		} else {
			dbg.printLine(terminal.StyleFeedback, "trace is off")
		}

	case cmdRegs:
		dbg.printLine(terminal.StyleInstrument, "%s", dbg.m)

	case cmdMem:
		if len(args) == 0 {
			return curated.Errorf(CommandError, cmd, "an address is required")
		}
		addr, err := parseAddress(args[0])
		if err != nil {
			return curated.Errorf(CommandError, cmd, err)
		}
		length := 16
		if len(args) > 1 {
			length, err = strconv.Atoi(args[1])
			if err != nil || length < 1 {
				return curated.Errorf(CommandError, cmd, "length must be a positive number")
			}
		}
		dbg.printLine(terminal.StyleInstrument, "%s", dbg.m.Mem.Dump(addr, length))

	case cmdPoke:
		if len(args) != 2 {
			return curated.Errorf(CommandError, cmd, "an address and a value are required")
		}
		addr, err := parseAddress(args[0])
		if err != nil {
			return curated.Errorf(CommandError, cmd, err)
		}
		v, err := parseValue(args[1], 8)
		if err != nil {
			return curated.Errorf(CommandError, cmd, err)
		}
		if err := dbg.m.Mem.Poke(addr, uint8(v)); err != nil {
			return curated.Errorf(CommandError, cmd, err)
		}

	case cmdDisasm:
		addr := dbg.m.CPU.PC.Address()
		n := 10
		if len(args) > 0 {
			addr, err = parseAddress(args[0])
			if err != nil {
				return curated.Errorf(CommandError, cmd, err)
			}
		}
		if len(args) > 1 {
			n, err = strconv.Atoi(args[1])
			if err != nil || n < 1 {
				return curated.Errorf(CommandError, cmd, "number of instructions must be a positive number")
			}
		}
		dsm, err := disassembly.FromMemory(dbg.m.Mem, addr, n)
		if err != nil {
			return curated.Errorf(CommandError, cmd, err)
		}
		return dsm.Write(dbg.writer(terminal.StyleFeedback), disassembly.WriteAttr{ByteCode: true, FlowInfo: true})

	case cmdReset:
		dbg.m.Reset()
		dbg.printLine(terminal.StyleFeedback, "machine reset")

	case cmdMemviz:
		if len(args) != 1 {
			return curated.Errorf(CommandError, cmd, "a filename is required")
		}
		f, err := os.Create(args[0])
		if err != nil {
			return curated.Errorf(CommandError, cmd, err)
		}
		defer f.Close()
		memviz.Map(f, dbg.m.CPU)
		dbg.printLine(terminal.StyleFeedback, "cpu written to %s", args[0])

	case cmdLog:
		n := 10
		if len(args) > 0 {
			n, err = strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return curated.Errorf(CommandError, cmd, "number of entries must be a positive number")
			}
		}
		logger.Tail(dbg.writer(terminal.StyleFeedback), n)

	case cmdPrefs:
		fmt.Fprint(dbg.writer(terminal.StyleFeedback), dbg.m.Prefs)

	case cmdHelp:
		if len(args) > 0 {
			h, ok := help[strings.ToUpper(args[0])]
			if !ok {
				return curated.Errorf(CommandError, cmd, fmt.Sprintf("no help for %s", args[0]))
			}
			fmt.Fprint(dbg.writer(terminal.StyleHelp), h)
			return nil
		}
		cmds := make([]string, 0, len(help))
		for k := range help {
			cmds = append(cmds, k)
		}
		slices.Sort(cmds)
		dbg.printLine(terminal.StyleHelp, "%s", strings.Join(cmds, " "))

	case cmdQuit:
		dbg.quit = true

	default:
		return curated.Errorf("debugger: %s", strings.TrimSpace(translate.From("unrecognized command: %s\n", tokens[0])))
	}

	return err
}

// step the machine n times, printing each instruction.
func (dbg *Debugger) step(n int) error {
	for range n {
		r, err := dbg.m.Step()
		if err != nil {
			logger.Log(dbg, "debugger", err)
			return err
		}
		dbg.printLine(terminal.StyleCPUStep, "%s", r)
		if dbg.m.CPU.Halted() {
			break
		}
	}
	return nil
}

// run the machine until it halts.
func (dbg *Debugger) run() error {
	if dbg.m.CPU.Halted() {
		return curated.Errorf(CommandError, cmdRun, "cpu is halted")
	}

	err := dbg.m.Run(func(r *execution.Result) error {
		if dbg.trace {
			dbg.printLine(terminal.StyleCPUStep, "%s", r)
		}
		if dbg.interrupted() {
			return curated.Errorf(terminal.UserInterrupt)
		}
		return nil
	})

	if err != nil {
		if !curated.Is(err, terminal.UserInterrupt) {
			logger.Log(dbg, "debugger", err)
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "run interrupted")
	} else if !dbg.trace {
		// the final instruction has already been printed if trace is on
		dbg.printLine(terminal.StyleCPUStep, "%s", dbg.m.CPU.LastResult)
	}

	dbg.printLine(terminal.StyleInstrument, "%s", dbg.m)

	return nil
}

// parseAddress accepts decimal, 0x prefixed or $ prefixed hexadecimal values.
func parseAddress(s string) (uint16, error) {
	v, err := parseValue(s, 16)
	return uint16(v), err
}

func parseValue(s string, bits int) (uint64, error) {
	if strings.HasPrefix(s, "$") {
		s = "0x" + s[1:]
	}
	v, err := strconv.ParseUint(s, 0, bits)
	if err != nil {
		return 0, fmt.Errorf("%s is not a %d bit value", s, bits)
	}
	return v, nil
}
