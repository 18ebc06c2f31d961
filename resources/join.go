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

package resources

import (
	"fmt"
	"os"
	"path/filepath"
)

const baseDir = ".appleie"

// EnvHome is the name of the environment variable that overrides the base
// path.
const EnvHome = "APPLEIE_HOME"

// JoinPath prepends the supplied path with the base path.
//
// The function creates all folders necessary to reach the end of sub-path. It
// does not otherwise touch or create the file. The final element of the path
// is assumed to be a file.
func JoinPath(path ...string) (string, error) {
	b, err := basePath()
	if err != nil {
		return "", fmt.Errorf("resources: %w", err)
	}

	p := filepath.Join(append([]string{b}, path...)...)

	// create directories leading to the file
	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		return "", fmt.Errorf("resources: %w", err)
	}

	return p, nil
}

func basePath() (string, error) {
	switch h := os.Getenv(EnvHome); h {
	case "":
		return baseDir, nil
	case "user":
		cnf, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(cnf, "appleie"), nil
	default:
		return h, nil
	}
}
