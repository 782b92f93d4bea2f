package runner

// PlayerView is the player's projection in a snapshot.
type PlayerView struct {
	X, Y          int
	Width, Height int
	Airborne      bool
}

// ObstacleView is an obstacle's projection in a snapshot.
type ObstacleView struct {
	Kind  Kind
	X, Y  int
	Width int
}

// Snapshot is an immutable, renderer-agnostic description of one frame.
// Its Obstacles slice is never shared with the engine.
type Snapshot struct {
	Score           int
	HighScore       int
	Phase           Phase
	NightMode       bool
	SpeedMultiplier float64
	Player          PlayerView
	Obstacles       []ObstacleView
	FieldWidth      int
	FieldHeight     int
}

// Snapshot projects the current engine state.
func (e *Engine) Snapshot() Snapshot {
	obstacles := make([]ObstacleView, len(e.obstacles))
	for i, o := range e.obstacles {
		obstacles[i] = ObstacleView{
			Kind:  o.Kind,
			X:     o.X,
			Y:     o.Y,
			Width: o.Width(),
		}
	}

	return Snapshot{
		Score:           e.score,
		HighScore:       e.highScore,
		Phase:           e.phase,
		NightMode:       e.night,
		SpeedMultiplier: e.speed,
		Player: PlayerView{
			X:        e.cfg.Player.X,
			Y:        e.player.Row(),
			Width:    e.cfg.Player.Width,
			Height:   e.cfg.Player.Height,
			Airborne: !e.player.Grounded(),
		},
		Obstacles:   obstacles,
		FieldWidth:  e.cfg.Field.Width,
		FieldHeight: e.cfg.Field.Height,
	}
}
