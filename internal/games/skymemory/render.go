package skymemory

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/sky-memory/internal/core"
	"github.com/vovakirdan/sky-memory/internal/session"
)

// Render draws the session into dst. The screen is pre-cleared.
func (g *Game) Render(dst *core.Screen) {
	if g.sess == nil {
		msg := "Cannot start level"
		if g.err != nil {
			msg = g.err.Error()
		}
		dst.DrawTextColored(0, dst.Height()/2, msg, core.ColorRed)
		return
	}

	snap := g.sess.Snapshot()
	g.renderBoard(dst, snap)
	g.renderHUD(dst, snap)
	g.renderBanner(dst, snap)
}

// shakeOffset is the cosmetic horizontal jitter in cells.
func (g *Game) shakeOffset() int {
	if g.shake <= 0 {
		return 0
	}
	if g.frame%2 == 0 {
		return 1
	}
	return -1
}

// renderBoard samples every board cell through the same resolver taps
// use, so what is drawn is exactly what a tap would hit.
func (g *Game) renderBoard(dst *core.Screen, snap session.Snapshot) {
	grid := g.sess.Grid()
	shake := g.shakeOffset()

	highlighted := make(map[session.Cell]float64, len(snap.Overlays))
	for _, o := range snap.Overlays {
		highlighted[o.Cell] = o.Alpha
	}

	for cy := g.view.top; cy < g.view.top+g.view.rows; cy++ {
		for cx := 0; cx < g.view.cols; cx++ {
			p := g.view.toScene(cx, cy)

			if p.Y < snap.Hazard {
				dst.SetColored(cx, cy, hazardRune(cx, g.frame), core.ColorBrightRed)
				continue
			}

			cell, ok := g.sess.TileAt(p.X, p.Y)
			if !ok {
				continue
			}
			// Leave a seam on the right and top edge of tiles big enough
			// to spare a cell.
			r := grid.TileRect(cell)
			if grid.TileSize >= 3 && p.X >= r.Right()-1 {
				continue
			}
			if grid.TileSize >= 3*cellAspect && p.Y >= r.Top()-cellAspect {
				continue
			}

			color, _ := core.ParseColor(grid.TileID(cell))
			glyph := '█'
			if alpha, ok := highlighted[cell]; ok && alpha > 0 {
				glyph, color = overlayRune(alpha), core.ColorBrightWhite
			}
			dst.SetColored(cx+shake, cy, glyph, color)
		}
	}

	// Launch pad under the first row.
	if snap.Token.OwnerRow == session.LaunchRow {
		pad := core.NewRect(grid.StartX, grid.StartY-grid.TileSize, grid.Width(), grid.TileSize)
		x0, y := g.view.toCell(core.Pt(pad.X, pad.Y+grid.TileSize*0.25))
		x1, _ := g.view.toCell(core.Pt(pad.Right(), pad.Y))
		if g.view.contains(x0, y) {
			dst.DrawHLine(x0, y, x1-x0, '▔', core.ColorGray)
		}
	}

	// Token
	sp := spriteFor(snap.Token.SpriteID)
	tx, ty := g.view.toCell(snap.TokenRect.Center())
	if snap.Token.OwnerRow != session.LaunchRow {
		tx += shake
	}
	ty = core.Clamp(ty, g.view.top, g.view.top+g.view.rows-1)
	dst.SetColored(tx, ty, sp.glyph, sp.color)
}

// overlayRune fades the path highlight with its alpha.
func overlayRune(alpha float64) rune {
	switch {
	case alpha > 0.66:
		return '█'
	case alpha > 0.33:
		return '▓'
	default:
		return '░'
	}
}

// hazardRune animates the surface of the hazard.
func hazardRune(x, frame int) rune {
	if (x+frame/8)%3 == 0 {
		return '≈'
	}
	return '~'
}

func (g *Game) renderHUD(dst *core.Screen, snap session.Snapshot) {
	lives := strings.Repeat("♥", snap.Lives) + strings.Repeat("♡", core.Max(snap.MaxLives-snap.Lives, 0))
	stars := strings.Repeat("★", snap.Stars) + strings.Repeat("☆", core.Max(snap.MaxLives-snap.Stars, 0))

	dst.DrawTextColored(1, 0, g.levelLabel(), core.ColorBrightCyan)

	right := fmt.Sprintf("%s  %s  ◎ %d  %d/%d", lives, stars, snap.LevelCoins, snap.Index, snap.PathLen)
	dst.DrawTextRight(0, 1, right, core.ColorBrightYellow)

	status := ""
	switch snap.State {
	case session.StateReveal:
		status = "Memorise the path..."
	case session.StatePlayable:
		if len(snap.Overlays) > 0 {
			status = "Go!"
		} else {
			status = fmt.Sprintf("Climb  %.1fs", snap.Elapsed)
		}
	}
	dst.DrawTextColored(1, 1, status, core.ColorGray)

	// Keyboard aim marker above the board.
	if snap.State == session.StatePlayable && snap.Index < snap.PathLen {
		ax, _ := g.view.toCell(g.aimPoint())
		dst.SetColored(ax, 1, '▼', core.ColorBrightGreen)
	}
}

func (g *Game) renderBanner(dst *core.Screen, snap session.Snapshot) {
	var lines []string
	color := core.ColorBrightWhite

	switch snap.State {
	case session.StatePaused:
		lines = []string{"PAUSED", "P to resume"}
	case session.StateWon:
		color = core.ColorBrightGreen
		out := g.sess.Outcome()
		lines = []string{
			"LEVEL COMPLETE",
			strings.Repeat("★", out.Stars) + strings.Repeat("☆", core.Max(snap.MaxLives-out.Stars, 0)),
			fmt.Sprintf("+%d coins", out.Reward),
		}
		if out.CreditErr != nil {
			lines = append(lines, "wallet unavailable, reward not saved")
		}
		if g.HasNextLevel() {
			lines = append(lines, "N next level · R retry")
		} else {
			lines = append(lines, "Campaign complete! R retry")
		}
	case session.StateLost:
		color = core.ColorBrightRed
		title := "CAUGHT!"
		if snap.Lives == 0 {
			title = "OUT OF LIVES"
		}
		lines = []string{title, "R retry"}
	default:
		return
	}

	top := g.view.top + (g.view.rows-len(lines))/2
	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}
	boxW := width + 4
	boxX := (dst.Width() - boxW) / 2
	dst.DrawPanel(boxX, top-1, boxW, len(lines)+2, color)
	for i, l := range lines {
		dst.DrawTextCenteredIn(boxX, boxW, top+i, l, color)
	}
}
