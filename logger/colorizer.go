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

package logger

import (
	"io"
	"strings"

	"github.com/appleie/appleie/debugger/terminal/easyterm/ansi"
)

// Colorizer applies basic coloring rules to logging output. The tag of each
// entry is written in a bright pen and the detail in the normal pen.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (n int, err error) {
	s := string(p)

	// stamped entries begin with a bracket. colour everything up to and
	// including the final closing bracket. plain entries are coloured up to
	// the first colon
	var split int
	if strings.HasPrefix(s, "[") {
		split = strings.LastIndex(s, "]") + 1
	} else {
		split = strings.Index(s, ":") + 1
	}

	if split <= 0 {
		return c.out.Write(p)
	}

	_, err = io.WriteString(c.out, ansi.Pens["cyan"])
	if err != nil {
		return n, err
	}

	m, err := io.WriteString(c.out, s[:split])
	n += m
	if err != nil {
		return n, err
	}

	_, err = io.WriteString(c.out, ansi.NormalPen)
	if err != nil {
		return n, err
	}

	m, err = io.WriteString(c.out, s[split:])
	n += m

	return n, err
}
