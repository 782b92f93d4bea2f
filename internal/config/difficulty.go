package config

// DifficultyScaler derives the speed multiplier and the day/night cycle
// from the cumulative score. All methods are pure.
type DifficultyScaler struct {
	cfg DifficultyConfig
}

// NewDifficultyScaler creates a scaler for the given settings.
func NewDifficultyScaler(cfg DifficultyConfig) *DifficultyScaler {
	return &DifficultyScaler{cfg: cfg}
}

// IsEnabled returns whether speed progression is active.
func (d *DifficultyScaler) IsEnabled() bool {
	return d.cfg.Enabled
}

// SpeedMultiplier returns 1.0 + floor(score/step) * increment.
// It is a monotonically non-decreasing step function of score.
func (d *DifficultyScaler) SpeedMultiplier(score int) float64 {
	if !d.cfg.Enabled || d.cfg.SpeedStep <= 0 || score <= 0 {
		return 1.0
	}
	steps := score / d.cfg.SpeedStep
	return 1.0 + float64(steps)*d.cfg.SpeedIncrement
}

// IsNightToggle reports whether the night flag flips on this score.
func (d *DifficultyScaler) IsNightToggle(score int) bool {
	return d.cfg.NightInterval > 0 && score > 0 && score%d.cfg.NightInterval == 0
}

// NightModeAt returns the night flag a run holds after reaching score,
// starting from day at score 0.
func (d *DifficultyScaler) NightModeAt(score int) bool {
	if d.cfg.NightInterval <= 0 || score <= 0 {
		return false
	}
	return (score/d.cfg.NightInterval)%2 == 1
}
