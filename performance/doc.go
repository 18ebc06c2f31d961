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

// Package performance contains helper functions for profiling the emulation.
//
// ProfileCPU() runs a function while collecting a CPU profile. ProfileMem()
// writes a heap profile. Both profiles can be examined with "go tool pprof".
//
// Check() runs a program repeatedly for a fixed duration and reports the
// effective speed of the emulated CPU.
package performance
