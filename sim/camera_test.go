package sim

import "testing"

func TestCameraFollowsAndClamps(t *testing.T) {
	cases := []struct {
		name    string
		playerX float64
		want    float64
	}{
		{"left_edge", 0, 0},
		{"spawn", 100, 0},
		{"mid_world", 1600, 1136},
		{"right_edge", 3150, 2240},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cam := NewCamera(960, 3200)
			p := NewPlayer(c.playerX, 0, 32, 48)
			cam.Follow(p)
			if cam.X != c.want {
				t.Fatalf("camera x = %v, want %v", cam.X, c.want)
			}
		})
	}
}
