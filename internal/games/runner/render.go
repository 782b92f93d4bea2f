package runner

import (
	"fmt"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Visual characters for rendering
const (
	RunnerBody = '█'
	RunnerHead = '◆'
	RunnerLeg1 = '╱'
	RunnerLeg2 = '╲'
	GroundChar = '═'
)

// hudRows is the number of screen rows above the field.
const hudRows = 2

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.snap, g.legFrame)
}

// RenderSnapshot draws a snapshot as a text grid: a HUD line, the field
// with the ground line beneath it, and a banner for non-running phases.
// The field is centered horizontally; lane 0 sits directly above the ground.
func RenderSnapshot(dst *core.Screen, s Snapshot, legFrame int) {
	dst.Clear()

	offX := core.Max(0, (dst.Width()-s.FieldWidth)/2)
	groundRow := hudRows + s.FieldHeight
	rowFor := func(lane int) int { return groundRow - 1 - lane }

	dst.DrawHLine(offX, groundRow, s.FieldWidth, GroundChar, core.ColorGround)

	for _, o := range s.Obstacles {
		color := core.ColorCactus
		if o.Kind.Airborne() {
			color = core.ColorBird
		}
		i := 0
		for _, r := range o.Kind.Glyph() {
			x := o.X + i
			i++
			if x < 0 || x >= s.FieldWidth {
				continue
			}
			dst.SetColored(offX+x, rowFor(o.Y), r, color)
		}
	}

	drawPlayer(dst, s.Player, offX, rowFor, legFrame)

	hud := fmt.Sprintf(" Score: %05d  Best: %05d  Speed: x%.1f ", s.Score, s.HighScore, s.SpeedMultiplier)
	if s.NightMode {
		hud += "☾ "
	}
	dst.DrawTextColored(offX, 0, hud, core.ColorHUD)

	switch s.Phase {
	case PhaseIdle:
		drawCenteredMessage(dst, offX, s.FieldWidth, groundRow, "OBSTACLE RUNNER", "Space: jump  P: pause")
	case PhasePaused:
		drawCenteredMessage(dst, offX, s.FieldWidth, groundRow, "PAUSED", "Press P to resume")
	case PhaseOver:
		drawCenteredMessage(dst, offX, s.FieldWidth, groundRow, "GAME OVER", fmt.Sprintf("Score: %d | P: again", s.Score))
	}
}

// drawPlayer renders the runner. The head faces right on the top row and
// the legs alternate on the bottom row while grounded.
func drawPlayer(dst *core.Screen, p PlayerView, offX int, rowFor func(int) int, legFrame int) {
	for dy := 0; dy < p.Height; dy++ {
		row := rowFor(p.Y + dy)
		for dx := 0; dx < p.Width; dx++ {
			r := RunnerBody
			switch {
			case dy == p.Height-1 && dx == p.Width-1:
				r = RunnerHead
			case dy == 0 && p.Height > 1:
				r = legRune(dx, p.Airborne, legFrame)
			}
			dst.SetColored(offX+p.X+dx, row, r, core.ColorPlayer)
		}
	}
}

func legRune(dx int, airborne bool, legFrame int) rune {
	even := dx%2 == 0
	if !airborne && legFrame >= 5 {
		even = !even
	}
	if even {
		return RunnerLeg1
	}
	return RunnerLeg2
}

// drawCenteredMessage draws a message box centered over the field.
func drawCenteredMessage(dst *core.Screen, offX, fieldW, groundRow int, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := offX + (fieldW-boxW)/2
	boxY := core.Max(hudRows-1, (groundRow-boxH)/2+1)

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBanner)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBanner)
	dst.DrawTextColored(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorBanner)
}
