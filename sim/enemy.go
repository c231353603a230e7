package sim

import "github.com/milk9111/stomper/common"

// Enemy patrols horizontally between StartX and StartX+MoveRange, ignoring
// gravity and platforms. A stomped enemy is removed for the rest of the
// session.
type Enemy struct {
	common.Rect
	VelocityX float64
	StartX    float64
	MoveRange float64
}

func NewEnemy(x, y, width, height, speed, moveRange float64) *Enemy {
	return &Enemy{
		Rect: common.Rect{
			X:      x,
			Y:      y,
			Width:  width,
			Height: height,
		},
		VelocityX: speed,
		StartX:    x,
		MoveRange: moveRange,
	}
}

// advance moves the enemy one tick. The bound check runs on the post-move
// position, so a patrol overshoots by up to one step before turning.
func (e *Enemy) advance() {
	e.X += e.VelocityX
	if e.X+e.Width >= e.StartX+e.MoveRange || e.X < e.StartX {
		e.VelocityX = -e.VelocityX
	}
}
