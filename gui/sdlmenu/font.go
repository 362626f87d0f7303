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

package sdlmenu

import (
	"image"
	"image/draw"
	"image/png"
	"os"

	"github.com/mimiki/launcher/curated"
	"github.com/mimiki/launcher/gui"
	"github.com/mimiki/launcher/logger"
	"github.com/mimiki/launcher/resources"

	"github.com/veandco/go-sdl2/sdl"
)

// geometry of the glyph atlas. glyphs for the printable ASCII range are
// arranged in rows of sixteen, starting with the space character.
const (
	fontFirstChar  = 32
	fontLastChar   = 126
	fontAtlasCols  = 16
	fontCharWidth  = 16
	fontCharHeight = 16
)

// colour of selected text. everything else is drawn white.
const (
	selectedR = 100
	selectedG = 255
	selectedB = 100
)

type fontAtlas struct {
	texture *sdl.Texture
}

// loadFontAtlas reads the glyph atlas from the resource path and uploads
// it to the renderer.
//
// MUST ONLY be called from the #mainthread
func loadFontAtlas(renderer *sdl.Renderer) (*fontAtlas, error) {
	path := resources.JoinPath("assets", "font.png")

	f, err := os.Open(path)
	if err != nil {
		return nil, curated.Errorf("sdlmenu: font: %v", err)
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return nil, curated.Errorf("sdlmenu: font: %v", err)
	}

	// no conversion needed if image is an *image.RGBA
	img, ok := src.(*image.RGBA)
	if !ok {
		img = image.NewRGBA(src.Bounds())
		draw.Draw(img, img.Bounds(), src, src.Bounds().Min, draw.Src)
	}

	surf, err := sdl.CreateRGBSurfaceWithFormat(0,
		int32(img.Bounds().Dx()), int32(img.Bounds().Dy()),
		32, sdl.PIXELFORMAT_ABGR8888)
	if err != nil {
		return nil, curated.Errorf("sdlmenu: font: %v", err)
	}
	defer surf.Free()

	copy(surf.Pixels(), img.Pix)

	texture, err := renderer.CreateTextureFromSurface(surf)
	if err != nil {
		return nil, curated.Errorf("sdlmenu: font: %v", err)
	}

	logger.Logf("sdl", "font atlas: %s", path)

	return &fontAtlas{texture: texture}, nil
}

func (fnt *fontAtlas) destroy() {
	if fnt.texture != nil {
		fnt.texture.Destroy()
		fnt.texture = nil
	}
}

// drawText renders a string at a fixed pixel position. characters outside
// the atlas range advance the cursor without drawing anything.
//
// MUST ONLY be called from the #mainthread
func (fnt *fontAtlas) drawText(renderer *sdl.Renderer, t gui.DrawText) {
	if t.Selected {
		fnt.texture.SetColorMod(selectedR, selectedG, selectedB)
	} else {
		fnt.texture.SetColorMod(255, 255, 255)
	}

	x := int32(t.X)
	y := int32(t.Y)

	for _, ch := range []byte(t.Text) {
		if ch < fontFirstChar || ch > fontLastChar {
			x += fontCharWidth
			continue
		}

		idx := int32(ch - fontFirstChar)
		src := sdl.Rect{
			X: (idx % fontAtlasCols) * fontCharWidth,
			Y: (idx / fontAtlasCols) * fontCharHeight,
			W: fontCharWidth,
			H: fontCharHeight,
		}
		dst := sdl.Rect{X: x, Y: y, W: fontCharWidth, H: fontCharHeight}

		renderer.Copy(fnt.texture, &src, &dst)

		x += fontCharWidth
	}

	fnt.texture.SetColorMod(255, 255, 255)
}
