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

//go:build unix

package colorterm

import (
	"bytes"
	"unicode"
	"unicode/utf8"

	"github.com/appleie/appleie/curated"
	"github.com/appleie/appleie/debugger/terminal"
	"github.com/appleie/appleie/debugger/terminal/easyterm"
	"github.com/appleie/appleie/debugger/terminal/easyterm/ansi"
)

// the command returned when the space key is pressed on an empty line
const stepCommand = "STEP"

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(input []byte, prompt terminal.Prompt) (int, error) {
	if err := ct.RawMode(); err != nil {
		return 0, err
	}
	defer ct.CanonicalMode()

	// er is used to store encoded runes (length of 4 should be enough)
	er := make([]byte, 4)

	n := 0
	cursor := 0
	history := len(ct.commandHistory)

	// buffInput is used to store the latest input when we scroll through
	// history - we don't want to lose what we've typed in case the user wants
	// to resume where we left off
	buffInput := make([]byte, cap(input))
	buffN := 0

	p := prompt.String()

	for {
		// redraw the line and place the cursor
		ct.EasyTerm.TermPrint(ansi.ClearLine)
		ct.TermPrintLine(terminal.StylePrompt, p)
		ct.EasyTerm.TermPrint(string(input[:n]))
		ct.EasyTerm.TermPrint(ansi.CursorMove(cursor - n))

		r, _, err := ct.reader.ReadRune()
		if err != nil {
			return n, err
		}

		switch r {
		case easyterm.KeyInterrupt:
			ct.EasyTerm.TermPrint("\n")
			return 0, curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeySuspend:
			_ = ct.CanonicalMode()
			easyterm.SuspendProcess()
			_ = ct.RawMode()

		case easyterm.KeySpace:
			if n == 0 {
				ct.EasyTerm.TermPrint("\n")
				return copy(input, stepCommand), nil
			}
			n, cursor = ct.insert(input, n, cursor, r, er)

		case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			// add input to the history list if it is not the same as the
			// previous entry
			if n > 0 {
				l := len(ct.commandHistory)
				if l == 0 || !bytes.Equal(ct.commandHistory[l-1], input[:n]) {
					ct.commandHistory = append(ct.commandHistory, bytes.Clone(input[:n]))
				}
			}

			ct.EasyTerm.TermPrint("\n")
			return n, nil

		case easyterm.KeyEsc:
			// ESCAPE SEQUENCE BEGIN
			r, _, err := ct.reader.ReadRune()
			if err != nil {
				return n, err
			}
			if r != easyterm.EscCursor {
				continue
			}

			r, _, err = ct.reader.ReadRune()
			if err != nil {
				return n, err
			}

			switch r {
			case easyterm.CursorUp:
				// move up through command history
				if history > 0 {
					// if we're at the end of the command history then store
					// the current input in buffInput for possible later editing
					if history == len(ct.commandHistory) {
						copy(buffInput, input[:n])
						buffN = n
					}
					history--
					n = copy(input, ct.commandHistory[history])
					cursor = n
				}

			case easyterm.CursorDown:
				// move down through command history
				if history < len(ct.commandHistory)-1 {
					history++
					n = copy(input, ct.commandHistory[history])
					cursor = n
				} else if history == len(ct.commandHistory)-1 {
					history++
					n = copy(input, buffInput[:buffN])
					cursor = n
				}

			case easyterm.CursorForward:
				if cursor < n {
					cursor++
				}

			case easyterm.CursorBackward:
				if cursor > 0 {
					cursor--
				}

			case easyterm.EscDelete:
				// the delete sequence is terminated by a tilde
				_, _, _ = ct.reader.ReadRune()
				if cursor < n {
					copy(input[cursor:], input[cursor+1:n])
					n--
					history = len(ct.commandHistory)
				}
			}

		case easyterm.KeyBackspace, easyterm.KeyCtrlH:
			if cursor > 0 {
				copy(input[cursor-1:], input[cursor:n])
				cursor--
				n--
				history = len(ct.commandHistory)
			}

		default:
			if unicode.IsPrint(r) {
				n, cursor = ct.insert(input, n, cursor, r, er)
				history = len(ct.commandHistory)
			}
		}
	}
}

// insert the rune into the input at the cursor position. the new length of
// the input and cursor position are returned.
func (ct *ColorTerminal) insert(input []byte, n int, cursor int, r rune, er []byte) (int, int) {
	m := utf8.EncodeRune(er, r)
	if n+m > len(input) {
		return n, cursor
	}
	copy(input[cursor+m:], input[cursor:n])
	copy(input[cursor:], er[:m])
	return n + m, cursor + m
}
