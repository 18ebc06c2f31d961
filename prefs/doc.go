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

// Package prefs facilitates the storage of preferential values in the
// appleie system. Values are typed and can optionally call a hook function
// just before and just after the value is changed.
//
// Values are associated with a Disk instance by a key and can be saved to and
// loaded from a file in the resources directory. The file format is a list of
// "key :: value" lines, sorted by key, beneath a short warning. Entries in the
// file that are not known to the Disk instance are preserved when saving.
//
// Values can be overridden for the duration of the program by the command
// line stack. See PushCommandLineStack() for the format of a command line
// group.
package prefs
