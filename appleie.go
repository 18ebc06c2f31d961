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

package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/appleie/appleie/assembler"
	"github.com/appleie/appleie/debugger"
	"github.com/appleie/appleie/debugger/terminal"
	"github.com/appleie/appleie/debugger/terminal/colorterm"
	"github.com/appleie/appleie/debugger/terminal/plainterm"
	"github.com/appleie/appleie/disassembly"
	"github.com/appleie/appleie/hardware"
	"github.com/appleie/appleie/hardware/cpu/execution"
	"github.com/appleie/appleie/hardware/memory/memorymap"
	"github.com/appleie/appleie/hardware/preferences"
	"github.com/appleie/appleie/logger"
	"github.com/appleie/appleie/modalflag"
	"github.com/appleie/appleie/performance"
	"github.com/appleie/appleie/prefs"
	"github.com/appleie/appleie/script"
	"github.com/appleie/appleie/statsview"
	"github.com/appleie/appleie/version"
)

// the program assembled when no source file is given to the RUN or DEBUG
// modes.
const defaultProgram = "LDA #$c0\nTAX\nINX\nADC #$c4\nBRK\n"

// exit values.
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	os.Exit(launch(os.Stdout, os.Args[1:]))
}

// launch parses the arguments and runs the selected mode. the return value
// is suitable for os.Exit().
func launch(output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "ASSEMBLE", "DISASM", "DEBUG", "SCRIPT", "PERFORMANCE")
	ver := md.AddBool("version", false, "print version information and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	if *ver {
		fmt.Fprintln(output, version.String())
		return exitOK
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "ASSEMBLE":
		err = assemble(md)

	case "DISASM":
		err = disasm(md)

	case "DEBUG":
		err = debug(md)

	case "SCRIPT":
		err = runScript(md)

	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitModeError
	}

	return exitOK
}

// machineFlags are the flags common to all modes that create a machine.
type machineFlags struct {
	origin *uint16
	limit  *int
	prefs  *string
}

func addMachineFlags(md *modalflag.Modes) machineFlags {
	return machineFlags{
		origin: md.AddAddress("origin", memorymap.DefaultOrigin, "load address of the program"),
		limit:  md.AddInt("limit", 0, "maximum number of instructions in a run. zero for no limit"),
		prefs:  md.AddString("prefs", "", "preferences for this session. eg. \"memory.ramsize::4096\""),
	}
}

// newMachine creates a machine using the preferences on disk, as overridden
// by the -prefs flag. the -origin and -limit flags take priority over both
// if they have been set.
func newMachine(md *modalflag.Modes, fl machineFlags) (*hardware.Machine, error) {
	prefs.PushCommandLineStack(*fl.prefs)
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewPreferences()
	if err != nil {
		return nil, err
	}

	var setErr error
	md.Visit(func(flg string) {
		if setErr != nil {
			return
		}
		switch flg {
		case "origin":
			setErr = p.Origin.Set(int(*fl.origin))
		case "limit":
			setErr = p.Limit.Set(*fl.limit)
		}
	})
	if setErr != nil {
		return nil, setErr
	}

	return hardware.NewMachine(p)
}

// assembleSource assembles the named source file, or the default program if
// filename is empty.
func assembleSource(filename string) ([]uint8, error) {
	if filename == "" {
		return assembler.Assemble(defaultProgram)
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return assembler.AssembleReader(f)
}

// loadSource assembles the source file and loads it into the machine at the
// origin address.
func loadSource(m *hardware.Machine, filename string) error {
	prog, err := assembleSource(filename)
	if err != nil {
		return err
	}
	return m.Load(m.Prefs.OriginAddress(), prog)
}

// setupLogging echoes the log to the output if requested. the output is
// colorized if it is a terminal. echoed entries are prefixed with the date,
// time and tag if timestamps is true.
func setupLogging(output io.Writer, echo bool, timestamps bool) {
	if !echo {
		logger.SetEcho(nil, false)
		return
	}

	if f, ok := output.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		logger.SetEcho(logger.NewColorizer(output), timestamps)
		return
	}

	logger.SetEcho(output, timestamps)
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	fl := addMachineFlags(md)
	log := md.AddString("log", "", "write the log to file on completion")
	echo := md.AddBool("echo", false, "echo log to stdout")
	stamps := md.AddBool("timestamps", false, "prefix echoed log entries with the date and time")
	trace := md.AddBool("trace", false, "log every instruction")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setupLogging(md.Output, *echo, *stamps)

	if stats != nil && *stats {
		statsview.Launch(md.Output)
	}

	var filename string
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		filename = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *log != "" {
		defer func() {
			if err := logger.WriteFile(*log); err != nil {
				fmt.Fprintf(md.Output, "* log: %v\n", err)
			}
		}()
	}

	logger.Logf(logger.Allow, "appleie", "logging initialised")

	m, err := newMachine(md, fl)
	if err != nil {
		logger.Log(logger.Allow, "appleie", err)
		return err
	}

	prog, err := assembleSource(filename)
	if err != nil {
		logger.Log(logger.Allow, "appleie", err)
		return err
	}
	logger.Logf(logger.Allow, "appleie", "program assembled (%d bytes)", len(prog))

	origin := m.Prefs.OriginAddress()
	err = m.Load(origin, prog)
	if err != nil {
		logger.Log(logger.Allow, "appleie", err)
		return err
	}
	logger.Logf(logger.Allow, "appleie", "program loaded into memory at $%04x", origin)

	var count int
	err = m.Run(func(r *execution.Result) error {
		count++
		if *trace {
			logger.Logf(logger.Allow, "trace", "%02x %-20s %s", r.Defn.OpCode, r, m.CPU)
		}
		return nil
	})

	if err != nil {
		logger.Logf(logger.Allow, "appleie", "run ended after %d instructions: %v", count, err)
	} else {
		logger.Logf(logger.Allow, "appleie", "cpu halted after %d instructions (%d cycles)", count, m.CPU.Clock)
	}

	// the final state of the machine is useful even if the run has failed
	fmt.Fprintln(md.Output, m)

	return err
}

func assemble(md *modalflag.Modes) error {
	md.NewMode()

	out := md.AddString("o", "", "write assembled bytes to file")
	listing := md.AddBool("listing", false, "print a listing of the assembled program")
	origin := md.AddAddress("origin", memorymap.DefaultOrigin, "address used in the listing")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("source file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	f, err := os.Open(md.GetArg(0))
	if err != nil {
		return err
	}
	defer f.Close()

	program, err := assembler.Parse(f)
	if err != nil {
		return err
	}

	var data []uint8
	address := *origin
	for _, ins := range program {
		b := ins.Bytes()
		if *listing {
			fmt.Fprintf(md.Output, "%04x  %-8s  %s\n", address, hexBytes(b), ins)
		}
		address += uint16(len(b))
		data = append(data, b...)
	}

	if *out != "" {
		return os.WriteFile(*out, data, 0o644)
	}

	if !*listing {
		fmt.Fprintln(md.Output, hexBytes(data))
	}

	return nil
}

func hexBytes(b []uint8) string {
	s := make([]string, len(b))
	for i, v := range b {
		s[i] = fmt.Sprintf("%02x", v)
	}
	return strings.Join(s, " ")
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	origin := md.AddAddress("origin", memorymap.DefaultOrigin, "address of the first byte")
	bytecode := md.AddBool("bytecode", true, "include bytecode in disassembly")
	flow := md.AddBool("flow", false, "include branch destinations and cycle counts")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("binary file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	data, err := os.ReadFile(md.GetArg(0))
	if err != nil {
		return err
	}

	attr := disassembly.WriteAttr{
		ByteCode: *bytecode,
		FlowInfo: *flow,
	}

	entries, err := disassembly.FromBytes(*origin, data)

	// print what disassembly output we do have even if there was an error
	dsm := &disassembly.Disassembly{Entries: entries}
	if werr := dsm.Write(md.Output, attr); werr != nil && err == nil {
		err = werr
	}

	return err
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	fl := addMachineFlags(md)
	raw := md.AddBool("raw", false, "use raw terminal mode. a single key press steps the CPU")
	echo := md.AddBool("echo", false, "echo log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setupLogging(md.Output, *echo, false)

	var filename string
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		filename = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	m, err := newMachine(md, fl)
	if err != nil {
		return err
	}

	err = loadSource(m, filename)
	if err != nil {
		return err
	}

	var trm terminal.Terminal
	if *raw {
		trm = &colorterm.ColorTerminal{}
	} else {
		trm = plainterm.NewPlainTerminal(os.Stdin, md.Output)
	}

	dbg, err := debugger.NewDebugger(m, trm)
	if err != nil {
		return err
	}

	return dbg.Start()
}

func runScript(md *modalflag.Modes) error {
	md.NewMode()

	fl := addMachineFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("script file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	m, err := newMachine(md, fl)
	if err != nil {
		return err
	}

	return script.Run(m, md.GetArg(0), nil, md.Output)
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	fl := addMachineFlags(md)
	duration := md.AddString("duration", "2s", "run duration")
	profile := md.AddBool("profile", false, "produce cpu and memory profiling reports")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var filename string
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		filename = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	d, err := time.ParseDuration(*duration)
	if err != nil {
		return err
	}

	prog, err := assembleSource(filename)
	if err != nil {
		return err
	}

	m, err := newMachine(md, fl)
	if err != nil {
		return err
	}

	check := func() error {
		_, err := performance.Check(md.Output, m, prog, d)
		return err
	}

	if !*profile {
		return check()
	}

	err = performance.ProfileCPU("performance.cpu.profile", check)
	if err != nil {
		return err
	}

	return performance.ProfileMem("performance.mem.profile")
}
