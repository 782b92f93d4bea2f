package config

import (
	"errors"
	"fmt"
)

// BirdTopLane is the highest airborne lane an obstacle may occupy.
const BirdTopLane = 3

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid runner config")

// Validate checks the construction invariants of a runner config.
func (c RunnerConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("%w: field must be positive, got %dx%d", ErrInvalidConfig, c.Field.Width, c.Field.Height)
	case c.Field.Height <= BirdTopLane:
		return fmt.Errorf("%w: field height %d leaves no room for lane %d", ErrInvalidConfig, c.Field.Height, BirdTopLane)
	case c.Physics.Gravity <= 0:
		return fmt.Errorf("%w: gravity must be positive, got %g", ErrInvalidConfig, c.Physics.Gravity)
	case c.Physics.JumpImpulse <= 0:
		return fmt.Errorf("%w: jump impulse must be positive, got %g", ErrInvalidConfig, c.Physics.JumpImpulse)
	case c.Physics.MaxJumpHeight <= 0:
		return fmt.Errorf("%w: max jump height must be positive, got %d", ErrInvalidConfig, c.Physics.MaxJumpHeight)
	case c.Physics.JumpCooldownMs < 0:
		return fmt.Errorf("%w: jump cooldown must not be negative, got %dms", ErrInvalidConfig, c.Physics.JumpCooldownMs)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player box must be positive, got %dx%d", ErrInvalidConfig, c.Player.Width, c.Player.Height)
	case c.Player.X < 0 || c.Player.X+c.Player.Width > c.Field.Width:
		return fmt.Errorf("%w: player x %d outside field width %d", ErrInvalidConfig, c.Player.X, c.Field.Width)
	case c.Physics.MaxJumpHeight+c.Player.Height > c.Field.Height:
		return fmt.Errorf("%w: jump ceiling %d exceeds field height %d", ErrInvalidConfig, c.Physics.MaxJumpHeight+c.Player.Height, c.Field.Height)
	case c.Spawn.Rate < 1:
		return fmt.Errorf("%w: spawn rate must be at least 1, got %d", ErrInvalidConfig, c.Spawn.Rate)
	case c.Spawn.ObstacleSpeed < 1:
		return fmt.Errorf("%w: obstacle speed must be at least 1, got %d", ErrInvalidConfig, c.Spawn.ObstacleSpeed)
	case c.Difficulty.SpeedStep <= 0:
		return fmt.Errorf("%w: speed step must be positive, got %d", ErrInvalidConfig, c.Difficulty.SpeedStep)
	case c.Difficulty.SpeedIncrement < 0:
		return fmt.Errorf("%w: speed increment must not be negative, got %g", ErrInvalidConfig, c.Difficulty.SpeedIncrement)
	case c.Difficulty.NightInterval <= 0:
		return fmt.Errorf("%w: night interval must be positive, got %d", ErrInvalidConfig, c.Difficulty.NightInterval)
	}
	return nil
}
