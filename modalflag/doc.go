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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas, with flag.FlagSet you call Parse() with the array of strings as
// the only argument, with modalflag you first NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("run", "assemble", "disasm", "debug", "script")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// Sub-mode comparisons are case insensitive and the first sub-mode is the
// default. If the first argument after the flags is not a sub-mode then the
// default sub-mode is selected and the argument remains available through
// RemainingArgs().
//
// Once the mode has been decided, NewMode() prepares the Modes instance for
// the flags of that mode:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		origin := md.AddAddress("origin", 0x0800, "load address")
//		trace := md.AddBool("trace", false, "log every instruction")
//		p, err := md.Parse()
//		...
//	}
//
// Modes can be chained as deep as required.
package modalflag
