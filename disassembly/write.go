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

package disassembly

import (
	"fmt"
	"io"
	"strings"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
	FlowInfo bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	for _, e := range dsm.Entries {
		if err := WriteEntry(output, attr, e); err != nil {
			return err
		}
	}
	return nil
}

// WriteEntry writes a single entry to io.Writer.
func WriteEntry(output io.Writer, attr WriteAttr, e Entry) error {
	s := fmt.Sprintf("%04x ", e.Address)

	if attr.ByteCode {
		s = fmt.Sprintf("%s%-8s  ", s, e.BytecodeString())
	}

	s = fmt.Sprintf("%s%-9s", s, e)

	if attr.FlowInfo {
		if dest, ok := e.BranchDestination(); ok {
			s = fmt.Sprintf("%s ; -> %04x", s, dest)
		} else {
			s = fmt.Sprintf("%s ; %d cycles", s, e.Defn.Cycles)
		}
	}

	_, err := io.WriteString(output, fmt.Sprintf("%s\n", strings.TrimRight(s, " ")))
	return err
}
