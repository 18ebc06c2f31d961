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

// Package resources contains functions to prepare paths for appleie
// resources, such as the preferences file and the log file.
//
// The JoinPath() function returns the correct path to the resource
// directory/file specified in the arguments. It handles the creation of
// directories as required but does not otherwise touch or create files.
//
// By default the base path is rooted in the current working directory:
//
//	.appleie
//
// If the APPLEIE_HOME environment variable is set then that directory is used
// as the base path instead. When the variable is set to the special value
// "user" the base path is rooted in the user's configuration directory. On
// modern Linux systems the full path would be something like:
//
//	/home/user/.config/appleie/
package resources
