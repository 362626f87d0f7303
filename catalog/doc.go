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

// Package catalog discovers the games available on the device.
//
// Games are plain files under a per-system sub-directory of each ROM root.
// With the default roots, games for the n64 system live in:
//
//	/mnt/games/n64
//	/mnt/games2/n64
//
// Scan() walks the roots once and returns a Catalog. Scanning is entirely
// read-only and never fails: a missing root, an unreadable directory or a
// file with the wrong extension simply contributes nothing. The result is
// sorted for presentation and capped so that a wild directory cannot grow
// the menu without bound.
package catalog
