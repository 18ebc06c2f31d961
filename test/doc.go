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

// Package test bundles a number of helper functions, useful for testing
// purposes in conjunction with the standard go test harness.
//
// The Expect*() functions test a value and report failure with t.Errorf(). The
// Demand*() functions are the same but report failure with t.Fatalf(). Demand
// functions should be used when later parts of the test depend on the value
// being correct.
//
// The ExpectSuccess() and ExpectFailure() functions test for success and
// failure under generic conditions. The documentation for those functions
// describe the currently supported types.
//
// It is worth describing how the "success" functions handle the nil type
// because it is not obvious. The nil type is considered a success and
// consequently will cause ExpectFailure to fail and ExpectSuccess to succeed.
// This is because a nil error indicates that no error has occurred.
//
// The CompareWriter type implements the io.Writer interface and should be used
// to capture output. The Compare() function can then be used to test for
// equality.
package test
