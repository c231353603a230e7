package sim

import "github.com/milk9111/stomper/common"

// Player is the single controllable entity. Jumping is true whenever the
// player is not resting on a platform, including at spawn.
type Player struct {
	common.Rect
	VelocityX float64
	VelocityY float64
	Jumping   bool

	StartX, StartY float64
}

func NewPlayer(x, y, width, height float64) *Player {
	return &Player{
		Rect: common.Rect{
			X:      x,
			Y:      y,
			Width:  width,
			Height: height,
		},
		StartX:  x,
		StartY:  y,
		Jumping: true,
	}
}

// Reset returns the player to spawn. Used both when an enemy lands a hit
// and when the player falls out of the world.
func (p *Player) Reset() {
	p.X = p.StartX
	p.Y = p.StartY
	p.VelocityY = 0
	p.Jumping = true
}
