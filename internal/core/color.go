package core

// Color is a palette slot for a screen cell. Front-ends map slots to real
// colors, which lets a day and a night palette share one screen buffer.
type Color uint8

// Palette slots used by the runner renderer.
const (
	ColorDefault Color = iota
	ColorPlayer
	ColorCactus
	ColorBird
	ColorGround
	ColorHUD
	ColorBanner
)
