package sim

import "github.com/milk9111/stomper/common"

// Platform is a static rectangle the player can land on from above. Slice
// order in Level decides which platform catches the player when more than
// one matches in the same tick.
type Platform common.Rect

// Level is the fixed world layout: platform geometry, initial enemy
// placements, world extent, and the spawn point. Built once from the
// viewport size and never mutated afterward.
type Level struct {
	Platforms  []Platform
	Enemies    []*Enemy
	WorldWidth float64
	SpawnX     float64
	SpawnY     float64

	ViewportWidth  float64
	ViewportHeight float64
}

const worldWidth = 3200 // pixels

// BuildLevel constructs the single hard-coded level. Ground slabs run along
// the bottom of the viewport with two pits between them, and the floating
// platforms sit one jump above the ground.
func BuildLevel(viewportW, viewportH float64, cfg Config) *Level {
	groundY := viewportH - 40

	platforms := []Platform{
		{X: 0, Y: groundY, Width: 700, Height: 40},
		{X: 800, Y: groundY, Width: 900, Height: 40},
		{X: 1820, Y: groundY, Width: worldWidth - 1820, Height: 40},

		{X: 350, Y: groundY - 120, Width: 160, Height: 16},
		{X: 720, Y: groundY - 90, Width: 160, Height: 16},
		{X: 1050, Y: groundY - 140, Width: 160, Height: 16},
		{X: 1440, Y: groundY - 100, Width: 140, Height: 16},
		{X: 1690, Y: groundY - 90, Width: 140, Height: 16},
		{X: 2100, Y: groundY - 130, Width: 160, Height: 16},
		{X: 2600, Y: groundY - 110, Width: 140, Height: 16},
	}

	ew, eh := cfg.EnemyWidth, cfg.EnemyHeight
	enemies := []*Enemy{
		NewEnemy(500, groundY-eh, ew, eh, cfg.EnemyPace, 70),
		NewEnemy(1200, groundY-eh, ew, eh, 1.5*cfg.EnemyPace, 140),
		NewEnemy(2300, groundY-eh, ew, eh, 2*cfg.EnemyPace, 180),
	}

	return &Level{
		Platforms:      platforms,
		Enemies:        enemies,
		WorldWidth:     worldWidth,
		SpawnX:         100,
		SpawnY:         viewportH - 150,
		ViewportWidth:  viewportW,
		ViewportHeight: viewportH,
	}
}
