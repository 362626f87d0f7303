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

package menu

import (
	"fmt"

	"github.com/mimiki/launcher/catalog"
	"github.com/mimiki/launcher/gui"
)

// the layout targets a 640x480 display and the fixed-width menu font.
const (
	screenWidth = 640
	charWidth   = 16
)

const titleY = 40

// layout of the system list.
const (
	systemListY   = 120
	systemRowStep = 50
	systemMarkerX = 120
	systemNameX   = 150
	systemCountX  = 400
)

// layout of the game list.
const (
	gameListY   = 80
	gameRowStep = 30
	gameMarkerX = 80
	gameNameX   = 110
)

// footers sit below both lists.
const (
	footerX       = 120
	footerY       = 396
	footerSecondY = 420
)

// GamesPerPage is the number of games visible at once in the game list.
const GamesPerPage = 10

// ComposeFrame returns the draw list for the menu state. Composition is pure;
// it changes neither the state nor the catalog.
func ComposeFrame(cat *catalog.Catalog, st State) gui.Frame {
	if st.Focus == FocusGames {
		return composeGameFrame(cat, st)
	}
	return composeSystemFrame(cat, st)
}

func composeSystemFrame(cat *catalog.Catalog, st State) gui.Frame {
	var frame gui.Frame

	frame = append(frame, centreText(titleY, "MIMIKI", false))

	y := systemListY
	for i, prof := range cat.Profiles() {
		selected := i == st.System

		if selected {
			frame = append(frame, gui.DrawText{X: systemMarkerX, Y: y, Text: ">", Selected: true})
		}

		frame = append(frame, gui.DrawText{X: systemNameX, Y: y, Text: prof.Name, Selected: selected})

		frame = append(frame, gui.DrawText{
			X:    systemCountX,
			Y:    y,
			Text: fmt.Sprintf("(%d games)", len(cat.Games(prof))),
		})

		y += systemRowStep
	}

	frame = append(frame, gui.DrawText{X: footerX, Y: footerY, Text: "D-PAD: Navigate  A: Select"})

	return frame
}

func composeGameFrame(cat *catalog.Catalog, st State) gui.Frame {
	var frame gui.Frame

	prof := cat.Profiles()[st.System]
	games := cat.Games(prof)

	frame = append(frame, centreText(titleY, prof.Name, false))

	// only the page holding the highlighted game is drawn
	start := (st.Game / GamesPerPage) * GamesPerPage

	y := gameListY
	for i := start; i < start+GamesPerPage && i < len(games); i++ {
		selected := i == st.Game

		if selected {
			frame = append(frame, gui.DrawText{X: gameMarkerX, Y: y, Text: ">", Selected: true})
		}

		frame = append(frame, gui.DrawText{X: gameNameX, Y: y, Text: games[i].Name, Selected: selected})

		y += gameRowStep
	}

	frame = append(frame, gui.DrawText{X: footerX, Y: footerY, Text: "D-PAD: Navigate  A: Launch"})

	// the page indicator takes the place of the back hint once there is
	// more than one page
	if len(games) > GamesPerPage {
		frame = append(frame, gui.DrawText{
			X:    footerX,
			Y:    footerSecondY,
			Text: fmt.Sprintf("PAGE : %s", PageLabel(st.Game, len(games))),
		})
	} else {
		frame = append(frame, gui.DrawText{X: footerX, Y: footerSecondY, Text: "                 B:  Back"})
	}

	return frame
}

// centreText centres a string horizontally for the fixed-width menu font.
func centreText(y int, text string, selected bool) gui.DrawText {
	x := (screenWidth - len(text)*charWidth) / 2
	return gui.DrawText{X: x, Y: y, Text: text, Selected: selected}
}

// PageLabel describes the page holding the indexed entry, eg. "2/3".
func PageLabel(index int, count int) string {
	page := index/GamesPerPage + 1
	pages := (count + GamesPerPage - 1) / GamesPerPage
	return fmt.Sprintf("%d/%d", page, pages)
}
