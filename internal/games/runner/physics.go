package runner

import (
	"math"
	"time"
)

// Player is the runner's vertical state. Its horizontal position and box
// size are fixed by configuration.
type Player struct {
	HeightOffset float64   // 0 = grounded, never above the jump ceiling
	Velocity     float64   // Positive = rising
	LastJump     time.Time // Time of the last accepted jump; zero if none
}

// Grounded reports whether the player stands on the ground.
func (p Player) Grounded() bool {
	return p.HeightOffset <= 0
}

// Row returns the integer lane the bottom of the player occupies.
func (p Player) Row() int {
	return int(math.Floor(p.HeightOffset))
}

// Physics holds the constants of the jump arc.
type Physics struct {
	Gravity       float64
	JumpImpulse   float64
	MaxJumpHeight float64
}

// Step integrates one tick of vertical motion. It is pure: the same input
// always yields the same output.
//
// A grounded player at rest is returned unchanged. At the ceiling any
// residual upward velocity is dropped before integrating; on or below the
// ground the player snaps to rest without bouncing.
func Step(p Player, phys Physics) Player {
	if p.HeightOffset <= 0 && p.Velocity <= 0 {
		p.HeightOffset = 0
		p.Velocity = 0
		return p
	}

	if p.HeightOffset >= phys.MaxJumpHeight && p.Velocity > 0 {
		p.Velocity = 0
	}

	p.HeightOffset += p.Velocity
	p.Velocity -= phys.Gravity

	if p.HeightOffset > phys.MaxJumpHeight {
		p.HeightOffset = phys.MaxJumpHeight
	}
	if p.HeightOffset <= 0 {
		p.HeightOffset = 0
		p.Velocity = 0
	}
	return p
}
