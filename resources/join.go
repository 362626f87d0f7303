// This file is part of Mimiki.
//
// Mimiki is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Mimiki is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Mimiki.  If not, see <https://www.gnu.org/licenses/>.

package resources

import (
	"os"
	"path/filepath"
)

// the base path for all resources on the device image. note that we don't use
// this value directly except in the basePath() function. that function should
// be used instead.
const baseResourcePath = "/usr/share/mimiki"

// the environment variable that overrides baseResourcePath when set.
const baseResourceEnv = "MIMIKI_RESOURCES"

// JoinPath returns the resource string (representing the resource to be
// loaded) prepended with the resource base path.
//
// The function does not touch or create the file. Callers should expect that
// the returned path may not exist.
func JoinPath(resource ...string) string {
	p := make([]string, 0, len(resource)+1)
	p = append(p, basePath())
	p = append(p, resource...)
	return filepath.Join(p...)
}

// basePath() returns the resource path root. the environment variable takes
// precedence, making it easy to run against local assets during development.
func basePath() string {
	if p := os.Getenv(baseResourceEnv); p != "" {
		return p
	}
	return baseResourcePath
}
