package common

import "testing"

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 10, Y: 10, Width: 20, Height: 20}

	cases := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", Rect{X: 20, Y: 20, Width: 20, Height: 20}, true},
		{"contained", Rect{X: 15, Y: 15, Width: 5, Height: 5}, true},
		{"touching_right_edge", Rect{X: 30, Y: 10, Width: 10, Height: 10}, false},
		{"touching_bottom_edge", Rect{X: 10, Y: 30, Width: 10, Height: 10}, false},
		{"horizontal_overlap_only", Rect{X: 15, Y: 50, Width: 10, Height: 10}, false},
		{"disjoint", Rect{X: 100, Y: 100, Width: 5, Height: 5}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := base.Intersects(&c.other); got != c.want {
				t.Fatalf("Intersects(%+v) = %t, want %t", c.other, got, c.want)
			}
			if got := c.other.Intersects(&base); got != c.want {
				t.Fatalf("reverse Intersects(%+v) = %t, want %t", c.other, got, c.want)
			}
		})
	}
}
