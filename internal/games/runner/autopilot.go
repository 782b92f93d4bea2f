package runner

// ShouldJump reports whether a simple look-ahead pilot would jump on the
// coming tick: the player is grounded and a ground obstacle will reach the
// player's front edge within two ticks of scrolling. Birds are ignored
// because a grounded player passes under both bird lanes.
func ShouldJump(s Snapshot, baseSpeed int) bool {
	if s.Player.Airborne {
		return false
	}

	lead := 2 * ScrollStep(baseSpeed, s.SpeedMultiplier)
	front := s.Player.X + s.Player.Width
	for _, o := range s.Obstacles {
		if o.Y != GroundLane || o.X+o.Width <= s.Player.X {
			continue
		}
		if o.X-front < lead {
			return true
		}
	}
	return false
}
