package skymemory

import "github.com/vovakirdan/sky-memory/internal/core"

// sprite is how a token skin is drawn in the terminal.
type sprite struct {
	glyph rune
	color core.Color
}

var sprites = map[string]sprite{
	"player_plane": {'✈', core.ColorBrightWhite},
	"red_baron":    {'✈', core.ColorBrightRed},
	"stealth":      {'▲', core.ColorGray},
	"bumblebee":    {'✈', core.ColorBrightYellow},
}

// spriteFor returns the sprite for a skin id, falling back to the default
// plane for ids the terminal does not know.
func spriteFor(id string) sprite {
	if s, ok := sprites[id]; ok {
		return s
	}
	return sprites["player_plane"]
}
