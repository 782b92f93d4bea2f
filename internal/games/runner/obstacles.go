package runner

import (
	"unicode/utf8"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Kind enumerates the obstacle variants. The set is closed.
type Kind int

const (
	SmallCactus Kind = iota
	MediumCactus
	LargeCactus
	Bird

	kindCount = 4
)

// Lanes an obstacle may occupy.
const (
	GroundLane   = 0
	lowBirdLane  = 2
	highBirdLane = 3
)

var kindGlyphs = [kindCount]string{
	SmallCactus:  "┃",
	MediumCactus: "┣┫",
	LargeCactus:  "┣╋┫",
	Bird:         "◥◤",
}

var kindNames = [kindCount]string{
	SmallCactus:  "small-cactus",
	MediumCactus: "medium-cactus",
	LargeCactus:  "large-cactus",
	Bird:         "bird",
}

// String returns the kind's name.
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

// Glyph returns the text used to draw the kind.
func (k Kind) Glyph() string {
	if k < 0 || k >= kindCount {
		return "?"
	}
	return kindGlyphs[k]
}

// Width returns the kind's width in cells, one per glyph rune.
func (k Kind) Width() int {
	return utf8.RuneCountInString(k.Glyph())
}

// Airborne reports whether the kind flies in an upper lane.
func (k Kind) Airborne() bool {
	return k == Bird
}

// Obstacle is a live obstacle scrolling towards the player.
type Obstacle struct {
	Kind Kind
	X    int // Left edge
	Y    int // Lane
}

// ObstacleHeight is the height of every obstacle box.
const ObstacleHeight = 1

// Width returns the obstacle's width, derived from its kind.
func (o Obstacle) Width() int {
	return o.Kind.Width()
}

// Rect returns the collision box for this obstacle.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.Width(), ObstacleHeight)
}

// Spawner procedurally creates obstacles at the right edge of the field.
type Spawner struct {
	rng      Source
	baseRate int
	spawnX   int
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng Source, baseRate, fieldWidth int) *Spawner {
	return &Spawner{
		rng:      rng,
		baseRate: baseRate,
		spawnX:   fieldWidth,
	}
}

// Interval returns the upper bound of the per-tick spawn draw for the
// given speed multiplier. It never drops below 2.
func (s *Spawner) Interval(multiplier float64) int {
	if multiplier < 1 {
		multiplier = 1
	}
	return core.Max(2, int(float64(s.baseRate)/multiplier))
}

// Next performs one tick's spawn draw. A draw of exactly 1 out of
// [1, Interval] creates an obstacle with a uniformly random kind;
// birds pick one of the two airborne lanes.
func (s *Spawner) Next(multiplier float64) (Obstacle, bool) {
	if s.rng.Intn(s.Interval(multiplier))+1 != 1 {
		return Obstacle{}, false
	}

	kind := Kind(s.rng.Intn(kindCount))
	lane := GroundLane
	if kind.Airborne() {
		lane = lowBirdLane + s.rng.Intn(highBirdLane-lowBirdLane+1)
	}

	return Obstacle{Kind: kind, X: s.spawnX, Y: lane}, true
}

// ScrollStep returns how many cells obstacles move per tick.
func ScrollStep(baseSpeed int, multiplier float64) int {
	return core.Max(1, int(float64(baseSpeed)*multiplier))
}

// advanceObstacles moves every obstacle left by step and drops the ones
// that have fully left the field. The slice is filtered in place.
func advanceObstacles(obstacles []Obstacle, step int) []Obstacle {
	live := obstacles[:0]
	for _, o := range obstacles {
		o.X -= step
		if o.X+o.Width() > 0 {
			live = append(live, o)
		}
	}
	return live
}
