package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// PlayerRect returns the player's collision box: fixed column and size,
// vertical origin at the current lane.
func PlayerRect(p Player, pc config.PlayerConfig) core.Rect {
	return core.NewRect(pc.X, p.Row(), pc.Width, pc.Height)
}

// Collides reports whether the player box overlaps any live obstacle.
func Collides(player core.Rect, obstacles []Obstacle) bool {
	for _, o := range obstacles {
		if player.Intersects(o.Rect()) {
			return true
		}
	}
	return false
}
