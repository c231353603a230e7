package sim

import "github.com/milk9111/stomper/common"

// Camera is the horizontal view offset. It is a pure function of the player
// position, recomputed at the end of every tick; it never feeds back into
// gameplay.
type Camera struct {
	X float64

	viewportWidth float64
	worldWidth    float64
}

func NewCamera(viewportWidth, worldWidth float64) *Camera {
	return &Camera{viewportWidth: viewportWidth, worldWidth: worldWidth}
}

// Follow centers the view on the player, clamped to the world bounds.
func (c *Camera) Follow(p *Player) {
	c.X = common.Clamp(p.X-c.viewportWidth/2+p.Width/2, 0, c.worldWidth-c.viewportWidth)
}
