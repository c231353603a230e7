package sim

import "testing"

func TestBuildLevelReferenceLayout(t *testing.T) {
	cfg := DefaultConfig()
	level := BuildLevel(960, 540, cfg)

	if level.WorldWidth != 3200 {
		t.Fatalf("world width = %v, want 3200", level.WorldWidth)
	}
	if level.SpawnX != 100 {
		t.Fatalf("spawn x = %v, want 100", level.SpawnX)
	}
	if level.SpawnY >= level.ViewportHeight {
		t.Fatalf("spawn y = %v is below the viewport", level.SpawnY)
	}
	if len(level.Enemies) != 3 {
		t.Fatalf("enemy count = %d, want 3", len(level.Enemies))
	}

	ref := level.Enemies[0]
	if ref.StartX != 500 || ref.MoveRange != 70 || ref.VelocityX != 1 {
		t.Fatalf("first patrol start=%v range=%v vx=%v, want 500/70/1", ref.StartX, ref.MoveRange, ref.VelocityX)
	}

	for i, pl := range level.Platforms {
		if pl.X < 0 || pl.X+pl.Width > level.WorldWidth {
			t.Fatalf("platform %d extends outside the world: %+v", i, pl)
		}
	}

	for i, e := range level.Enemies {
		onSurface := false
		for _, pl := range level.Platforms {
			if e.Y+e.Height == pl.Y && e.X >= pl.X && e.X+e.Width <= pl.X+pl.Width {
				onSurface = true
				break
			}
		}
		if !onSurface {
			t.Fatalf("enemy %d does not stand on a platform: %+v", i, e.Rect)
		}
	}
}

func TestBuildLevelDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	a := BuildLevel(960, 540, cfg)
	b := BuildLevel(960, 540, cfg)

	if len(a.Platforms) != len(b.Platforms) || len(a.Enemies) != len(b.Enemies) {
		t.Fatalf("layouts differ in size")
	}
	for i := range a.Platforms {
		if a.Platforms[i] != b.Platforms[i] {
			t.Fatalf("platform %d differs: %+v vs %+v", i, a.Platforms[i], b.Platforms[i])
		}
	}
	for i := range a.Enemies {
		if a.Enemies[i].Rect != b.Enemies[i].Rect || a.Enemies[i].VelocityX != b.Enemies[i].VelocityX {
			t.Fatalf("enemy %d differs", i)
		}
	}
}
