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
	"strings"

	"github.com/appleie/appleie/debugger/terminal"
)

// printLine formats and prints a single line of output with the style.
func (dbg *Debugger) printLine(style terminal.Style, s string, a ...any) {
	dbg.term.TermPrintLine(style, fmt.Sprintf(s, a...))
}

// styleWriter is an io.Writer that sends every line of output to the
// terminal with the same style.
type styleWriter struct {
	dbg   *Debugger
	style terminal.Style
}

func (w styleWriter) Write(p []byte) (int, error) {
	for l := range strings.SplitSeq(strings.TrimRight(string(p), "\n"), "\n") {
		w.dbg.term.TermPrintLine(w.style, l)
	}
	return len(p), nil
}

func (dbg *Debugger) writer(style terminal.Style) styleWriter {
	return styleWriter{dbg: dbg, style: style}
}
