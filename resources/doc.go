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

// Package resources contains functions to prepare paths for mimiki resources.
//
// The JoinPath() function returns the correct path to the resource
// directory/file specified in the arguments. Resources are read-only assets
// baked into the device image (the menu font atlas, sound effects, etc.) so
// unlike a desktop application there is no per-user configuration directory
// to consider and no directories are ever created.
//
// On the device the base path is /usr/share/mimiki. For development away
// from the device the MIMIKI_RESOURCES environment variable overrides the
// base path:
//
//	MIMIKI_RESOURCES=./share go run .
package resources
