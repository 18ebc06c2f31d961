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

// Package logger is the central log repository for appleie. Entries are tagged
// and consecutive identical entries are collapsed into a single entry with a
// repeat count.
//
// Whether a log entry is made is decided by a Permission implementation. The
// Allow value should be used when an entry should always be made.
//
// The core emulation packages do not log. They return errors and execution
// results and it is up to the caller to decide what, if anything, to log.
package logger
