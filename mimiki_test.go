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

package main_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/mimiki/launcher/catalog"
	"github.com/mimiki/launcher/menu"
)

// ComposeFrame runs ten times a second for as long as the menu is on screen
// so it needs to be comfortably quick on the device.
func BenchmarkComposeFrame(b *testing.B) {
	dir := filepath.Join(b.TempDir(), "n64")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		panic(fmt.Errorf("error preparing ROM directory: %s", err))
	}
	for i := 0; i < 25; i++ {
		f := filepath.Join(dir, fmt.Sprintf("game%02d.z64", i))
		if err := os.WriteFile(f, []byte{}, 0o644); err != nil {
			panic(fmt.Errorf("error preparing ROM directory: %s", err))
		}
	}

	cat := catalog.Scan(catalog.Profiles(), []string{filepath.Dir(dir)})

	st := menu.State{Focus: menu.FocusGames, System: 0, Game: 17}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = menu.ComposeFrame(cat, st)
	}
}
