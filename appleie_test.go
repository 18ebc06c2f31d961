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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/appleie/appleie/logger"
	"github.com/appleie/appleie/resources"
	"github.com/appleie/appleie/statsview"
	"github.com/appleie/appleie/test"
)

// writeFile creates a file in a temporary directory and returns its path.
func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o600))
	return fn
}

func TestRunDefaultProgram(t *testing.T) {
	t.Setenv(resources.EnvHome, t.TempDir())

	var out test.CompareWriter
	test.ExpectEquality(t, launch(&out, []string{}), exitOK)
	test.ExpectEquality(t, out.String(), "PC=0807 A=84 X=c1 Y=00 SP=00 SR=Sv-BdizC cycles=15\n")

	// RUN is the default mode but can be named explicitly
	out.Clear()
	test.ExpectEquality(t, launch(&out, []string{"run"}), exitOK)
	test.ExpectEquality(t, out.String(), "PC=0807 A=84 X=c1 Y=00 SP=00 SR=Sv-BdizC cycles=15\n")
}

func TestRunFile(t *testing.T) {
	t.Setenv(resources.EnvHome, t.TempDir())

	fn := writeFile(t, "prog.s", []byte("LDX #$02\nDEX\nBNE $fd\nBRK\n"))

	var out test.CompareWriter
	test.ExpectEquality(t, launch(&out, []string{"RUN", "-origin", "0x1000", fn}), exitOK)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "PC=1006 A=00 X=00"), out.String())

	// origin from the preferences command line
	out.Clear()
	test.ExpectEquality(t, launch(&out, []string{"RUN", "-prefs", "machine.origin::0x0900", fn}), exitOK)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "PC=0906"), out.String())
}

func TestRunLog(t *testing.T) {
	t.Setenv(resources.EnvHome, t.TempDir())

	fn := filepath.Join(t.TempDir(), "appleie.log")

	var out test.CompareWriter
	test.ExpectEquality(t, launch(&out, []string{"RUN", "-log", fn}), exitOK)
	test.ExpectEquality(t, out.String(), "PC=0807 A=84 X=c1 Y=00 SP=00 SR=Sv-BdizC cycles=15\n")

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)

	log := string(data)
	test.ExpectSuccess(t, strings.HasPrefix(log, "["), log)
	test.ExpectSuccess(t, strings.Contains(log, "[appleie] program assembled (7 bytes)"), log)
	test.ExpectSuccess(t, strings.Contains(log, "[appleie] program loaded into memory at $0800"), log)
	test.ExpectSuccess(t, strings.Contains(log, "[appleie] cpu halted after 5 instructions (15 cycles)"), log)

	// the log is written even if the program does not assemble
	src := writeFile(t, "bad.s", []byte("LDA #$1\n"))
	test.ExpectEquality(t, launch(&out, []string{"RUN", "-log", fn, src}), exitModeError)
	data, err = os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "malformed operand"), string(data))
}

func TestRunEcho(t *testing.T) {
	t.Setenv(resources.EnvHome, t.TempDir())
	defer logger.SetEcho(nil, false)

	var out test.CompareWriter
	test.ExpectEquality(t, launch(&out, []string{"RUN", "-echo", "-trace"}), exitOK)
	test.ExpectSuccess(t, strings.Contains(out.String(), "appleie: program assembled (7 bytes)\n"), out.String())
	test.ExpectSuccess(t, strings.Contains(out.String(), "trace: a9 0800 LDA #$c0"), out.String())
	test.ExpectSuccess(t, strings.Contains(out.String(), "trace: 00 0806 BRK"), out.String())

	out.Clear()
	test.ExpectEquality(t, launch(&out, []string{"RUN", "-echo", "-timestamps"}), exitOK)
	test.ExpectSuccess(t, strings.Contains(out.String(), "][appleie] program assembled (7 bytes)\n"), out.String())
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "["), out.String())
}

func TestRunStatsviewFlag(t *testing.T) {
	t.Setenv(resources.EnvHome, t.TempDir())

	// the flag is only available when the stats server has been built in
	var out test.CompareWriter
	exit := launch(&out, []string{"RUN", "-statsview=false"})
	if statsview.Available() {
		test.ExpectEquality(t, exit, exitOK)
	} else {
		test.ExpectEquality(t, exit, exitModeError)
	}
}

func TestRunLimit(t *testing.T) {
	t.Setenv(resources.EnvHome, t.TempDir())

	fn := writeFile(t, "loop.s", []byte("JMP $0800\n"))

	var out test.CompareWriter
	test.ExpectEquality(t, launch(&out, []string{"RUN", "-limit", "3", fn}), exitModeError)
	test.ExpectSuccess(t, strings.Contains(out.String(), "instruction limit reached (3)"), out.String())
}

func TestRunErrors(t *testing.T) {
	t.Setenv(resources.EnvHome, t.TempDir())

	var out test.CompareWriter
	test.ExpectEquality(t, launch(&out, []string{"RUN", "-nope"}), exitModeError)

	out.Clear()
	fn := writeFile(t, "bad.s", []byte("LDA #$1\n"))
	test.ExpectEquality(t, launch(&out, []string{"RUN", fn}), exitModeError)
	test.ExpectSuccess(t, strings.Contains(out.String(), "malformed operand"), out.String())

	out.Clear()
	test.ExpectEquality(t, launch(&out, []string{"RUN", "a", "b"}), exitModeError)
	test.ExpectSuccess(t, strings.Contains(out.String(), "too many arguments"), out.String())
}

func TestAssemble(t *testing.T) {
	fn := writeFile(t, "prog.s", []byte("; scenario\nLDA #$c0\nBRK\n"))

	var out test.CompareWriter
	test.ExpectEquality(t, launch(&out, []string{"ASSEMBLE", fn}), exitOK)
	test.ExpectEquality(t, out.String(), "a9 c0 00\n")

	out.Clear()
	test.ExpectEquality(t, launch(&out, []string{"ASSEMBLE", "-listing", fn}), exitOK)
	test.ExpectEquality(t, out.String(), "0800  a9 c0     LDA #$c0\n0802  00        BRK\n")

	bin := filepath.Join(t.TempDir(), "prog.bin")
	out.Clear()
	test.ExpectEquality(t, launch(&out, []string{"ASSEMBLE", "-o", bin, fn}), exitOK)
	test.ExpectEquality(t, out.String(), "")

	data, err := os.ReadFile(bin)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), string([]byte{0xa9, 0xc0, 0x00}))

	out.Clear()
	test.ExpectEquality(t, launch(&out, []string{"ASSEMBLE"}), exitModeError)
}

func TestDisasm(t *testing.T) {
	fn := writeFile(t, "prog.bin", []byte{0xa9, 0xc0, 0x00})

	var out test.CompareWriter
	test.ExpectEquality(t, launch(&out, []string{"DISASM", fn}), exitOK)
	test.ExpectEquality(t, out.String(), "0800 a9 c0     LDA #$c0\n0802 00        BRK\n")

	// truncated operand. the complete entries are still printed
	fn = writeFile(t, "trunc.bin", []byte{0xea, 0xad, 0x00})
	out.Clear()
	test.ExpectEquality(t, launch(&out, []string{"DISASM", "-bytecode=false", fn}), exitModeError)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "0800 NOP\n"), out.String())
}

func TestScript(t *testing.T) {
	t.Setenv(resources.EnvHome, t.TempDir())

	fn := writeFile(t, "prog.star", []byte(`
load_program(0x0800, assemble("LDY #$07\nINY\nBRK"))
print(run(), reg("Y"))
`))

	var out test.CompareWriter
	test.ExpectEquality(t, launch(&out, []string{"SCRIPT", fn}), exitOK)
	test.ExpectEquality(t, out.String(), "3 8\n")
}

func TestDebug(t *testing.T) {
	t.Setenv(resources.EnvHome, t.TempDir())

	// the plain terminal reads from stdin. with no further input the
	// debugger ends without error
	r, w, err := os.Pipe()
	test.DemandSuccess(t, err)
	_, err = w.WriteString("REGS\nQUIT\n")
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, w.Close())

	stdin := os.Stdin
	os.Stdin = r
	defer func() {
		os.Stdin = stdin
	}()

	var out test.CompareWriter
	test.ExpectEquality(t, launch(&out, []string{"DEBUG"}), exitOK)
	test.ExpectSuccess(t, strings.Contains(out.String(), "PC=0800"), out.String())
}

func TestPerformance(t *testing.T) {
	t.Setenv(resources.EnvHome, t.TempDir())

	var out test.CompareWriter
	test.ExpectEquality(t, launch(&out, []string{"PERFORMANCE", "-duration", "10ms"}), exitOK)
	test.ExpectSuccess(t, strings.Contains(out.String(), "instructions"), out.String())

	out.Clear()
	test.ExpectEquality(t, launch(&out, []string{"PERFORMANCE", "-duration", "soon"}), exitModeError)
}

func TestVersion(t *testing.T) {
	var out test.CompareWriter
	test.ExpectEquality(t, launch(&out, []string{"-version"}), exitOK)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "appleie "), out.String())
}
