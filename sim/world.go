package sim

// Config holds the motion tuning. Distances are in pixels; one tick is one
// frame of the fixed-rate update loop.
type Config struct {
	MoveSpeed float64
	JumpForce float64 // upward impulse, negative since y grows downward
	Gravity   float64

	PlayerWidth  float64
	PlayerHeight float64

	EnemyWidth  float64
	EnemyHeight float64
	EnemyPace   float64 // slowest patrol speed; placements scale it
}

// DefaultConfig returns the reference tuning, mirroring the embedded prefab
// files.
func DefaultConfig() Config {
	return Config{
		MoveSpeed:    5,
		JumpForce:    -15,
		Gravity:      0.8,
		PlayerWidth:  32,
		PlayerHeight: 48,
		EnemyWidth:   32,
		EnemyHeight:  32,
		EnemyPace:    1,
	}
}

// StepEvents reports what a tick did so the shell can react, e.g. with
// audio cues, without the simulation knowing about output devices.
type StepEvents struct {
	Jumped  bool
	Stomped int  // enemies removed this tick
	Reset   bool // player went back to spawn, by enemy hit or fall-out
}

// World is the whole simulation state: the player, the fixed platforms, the
// live enemy set, the current input snapshot, and the camera. The frame
// loop owns a single World and calls Step once per tick.
type World struct {
	Config    Config
	Player    *Player
	Platforms []Platform
	Enemies   []*Enemy
	Input     Input
	Camera    *Camera

	viewportHeight float64
}

// NewWorld assembles a world from a built level. Enemy entities are copied
// so one level can seed more than one world.
func NewWorld(cfg Config, level *Level) *World {
	enemies := make([]*Enemy, len(level.Enemies))
	for i, e := range level.Enemies {
		clone := *e
		enemies[i] = &clone
	}

	return &World{
		Config:         cfg,
		Player:         NewPlayer(level.SpawnX, level.SpawnY, cfg.PlayerWidth, cfg.PlayerHeight),
		Platforms:      level.Platforms,
		Enemies:        enemies,
		Camera:         NewCamera(level.ViewportWidth, level.WorldWidth),
		viewportHeight: level.ViewportHeight,
	}
}

// Step advances the world by one tick and reports what happened. The phase
// order is fixed: horizontal intent, jump, integration (gravity lands after
// the move), platform landing, enemy patrol and contact, left bound,
// fall-out, camera. Reordering changes the motion curves.
func (w *World) Step() StepEvents {
	var events StepEvents
	p := w.Player

	if w.Input.Left {
		p.VelocityX = -w.Config.MoveSpeed
	} else if w.Input.Right {
		p.VelocityX = w.Config.MoveSpeed
	} else {
		p.VelocityX = 0
	}

	if w.Input.Up && !p.Jumping {
		p.VelocityY = w.Config.JumpForce
		p.Jumping = true
		events.Jumped = true
	}

	p.X += p.VelocityX
	p.Y += p.VelocityY
	p.VelocityY += w.Config.Gravity

	w.landOnPlatform(p)

	// Enemies move and resolve contact in one reverse pass, so a stomped
	// enemy disappears without disturbing the indices still to visit and
	// cannot also land a hit.
	for i := len(w.Enemies) - 1; i >= 0; i-- {
		e := w.Enemies[i]
		e.advance()
		if !p.Intersects(&e.Rect) {
			continue
		}
		if p.VelocityY > 0 && p.Y+p.Height-p.VelocityY <= e.Y {
			w.Enemies = append(w.Enemies[:i], w.Enemies[i+1:]...)
			p.VelocityY = w.Config.JumpForce / 2
			events.Stomped++
		} else {
			p.Reset()
			events.Reset = true
		}
	}

	if p.X < 0 {
		p.X = 0
	}

	if p.Y > w.viewportHeight {
		p.Reset()
		events.Reset = true
	}

	w.Camera.Follow(p)

	return events
}

// landOnPlatform runs the one-sided landing check: a platform catches the
// player only while moving downward and only when the bottom edge crossed
// the platform top during this tick's move. The first platform in slice
// order wins; failing all of them marks the player airborne.
func (w *World) landOnPlatform(p *Player) {
	for i := range w.Platforms {
		pl := &w.Platforms[i]
		if p.VelocityY >= 0 &&
			p.X < pl.X+pl.Width &&
			p.X+p.Width > pl.X &&
			p.Y+p.Height >= pl.Y &&
			p.Y+p.Height-p.VelocityY <= pl.Y {
			p.Y = pl.Y - p.Height
			p.VelocityY = 0
			p.Jumping = false
			return
		}
	}
	p.Jumping = true
}
