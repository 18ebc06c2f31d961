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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/appleie/appleie/curated"
	"github.com/appleie/appleie/hardware"
	"github.com/appleie/appleie/hardware/cpu/execution"
)

// CheckError is the pattern used for errors returned by Check().
const CheckError = "performance: check: %v"

// clock speed of a 6502 in a typical machine of the period.
const nominalHz = 1_000_000

// Report is the summary of a call to Check().
type Report struct {
	Duration     time.Duration
	Runs         int
	Instructions int
	Cycles       uint64
}

// MHz returns the effective clock speed of the emulated CPU.
func (r Report) MHz() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(r.Cycles) / r.Duration.Seconds() / 1_000_000
}

// Accuracy compares the effective clock speed to that of a 1MHz 6502. A
// value of 100 means the emulation runs at the same speed as the real CPU.
func (r Report) Accuracy() float64 {
	return r.MHz() * 1_000_000 / nominalHz * 100
}

func (r Report) String() string {
	return fmt.Sprintf("%d runs, %d instructions, %d cycles in %v (%.2f MHz, %.0f%%)",
		r.Runs, r.Instructions, r.Cycles, r.Duration.Round(time.Millisecond), r.MHz(), r.Accuracy())
}

// Check loads and runs the program repeatedly until the duration has
// elapsed. The machine is reset before every run and the program is loaded
// at the machine's current origin. The program must halt.
//
// The report is written to output if it is not nil.
func Check(output io.Writer, m *hardware.Machine, program []uint8, duration time.Duration) (Report, error) {
	var rep Report

	origin := m.Origin()
	start := time.Now()
	deadline := start.Add(duration)

	for time.Now().Before(deadline) {
		m.Reset()
		if err := m.Load(origin, program); err != nil {
			return rep, curated.Errorf(CheckError, err)
		}

		var count int
		err := m.Run(func(_ *execution.Result) error {
			count++

			// the deadline is otherwise only checked between runs
			if count&0xfff == 0 && time.Now().After(deadline) {
				return curated.Errorf(CheckError, "program did not halt before the deadline")
			}
			return nil
		})

		rep.Instructions += count
		rep.Cycles += m.CPU.Clock

		if err != nil {
			rep.Duration = time.Since(start)
			return rep, err
		}

		rep.Runs++
	}

	rep.Duration = time.Since(start)

	if output != nil {
		fmt.Fprintln(output, rep)
	}

	return rep, nil
}
