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

// Package translate prepares user-facing messages for the locale of the
// user. Messages are keyed by their en-US format string and are formatted
// with the number formatting rules of the matched language.
package translate

import (
	"fmt"
	"io"

	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/appleie/appleie/logger"
)

var printer *message.Printer

// messages with a British English variant. messages not in this list are
// printed using the en-US key for all languages.
var british = map[string]string{
	"unrecognized command: %s\n":   "unrecognised command: %s\n",
	"unrecognized register: %s":    "unrecognised register: %s",
	"unrecognized status flag: %s": "unrecognised status flag: %s",
}

func init() {
	for k, v := range british {
		_ = message.SetString(language.BritishEnglish, k, v)
	}

	locales, err := locale.GetLocales()
	if err != nil {
		logger.Logf(logger.Allow, "translate", "locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// Fprintf writes the translated message to the io.Writer.
func Fprintf(w io.Writer, key message.Reference, args ...any) (int, error) {
	return printer.Fprintf(w, key, args...)
}

// Error returns an error with a translated message.
func Error(key message.Reference, args ...any) error {
	return fmt.Errorf("%s", printer.Sprintf(key, args...))
}
