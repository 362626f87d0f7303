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
	"github.com/mimiki/launcher/gui"
	"github.com/mimiki/launcher/logger"
	"github.com/mimiki/launcher/resources"

	"github.com/veandco/go-sdl2/mix"
	"github.com/veandco/go-sdl2/sdl"
)

type sound struct {
	opened bool
	chunks map[gui.Sound]*mix.Chunk
}

// newSound loads the navigation feedback samples. an unavailable audio
// device or missing sample files leave the corresponding sounds silent.
// the menu is perfectly usable without them.
func newSound() *sound {
	snd := &sound{chunks: make(map[gui.Sound]*mix.Chunk)}

	// prerequisite: SDL_INIT_AUDIO must be included in the call to sdl.Init()
	err := mix.OpenAudio(22050, sdl.AUDIO_S16SYS, 2, 640)
	if err != nil {
		logger.Logf("sdl", "mixer: %v", err)
		return snd
	}
	snd.opened = true

	for s, file := range map[gui.Sound]string{
		gui.SoundMove:   "move.wav",
		gui.SoundSelect: "select.wav",
		gui.SoundBack:   "back.wav",
	} {
		p := resources.JoinPath("assets", "sounds", file)

		chunk, err := mix.LoadWAV(p)
		if err != nil {
			logger.Logf("sdl", "mixer: %s: %v", file, err)
			continue
		}

		snd.chunks[s] = chunk
	}

	return snd
}

func (snd *sound) play(s gui.Sound) {
	if chunk, ok := snd.chunks[s]; ok {
		chunk.Play(-1, 0)
	}
}

func (snd *sound) destroy() {
	for _, chunk := range snd.chunks {
		chunk.Free()
	}
	snd.chunks = make(map[gui.Sound]*mix.Chunk)

	if snd.opened {
		mix.CloseAudio()
		snd.opened = false
	}
}
