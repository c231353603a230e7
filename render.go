package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/stomper/sim"
)

// renderer owns one flat-color image per entity kind. The level geometry never
// changes after build, so the platform images are sized once up front.
type renderer struct {
	playerImg    *ebiten.Image
	enemyImg     *ebiten.Image
	platformImgs []*ebiten.Image
}

func newRenderer(w *sim.World) *renderer {
	r := &renderer{
		playerImg: ebiten.NewImage(int(w.Player.Width), int(w.Player.Height)),
		enemyImg:  ebiten.NewImage(int(w.Config.EnemyWidth), int(w.Config.EnemyHeight)),
	}
	r.playerImg.Fill(colornames.Crimson)
	r.enemyImg.Fill(colornames.Darkorange)

	for _, pl := range w.Platforms {
		img := ebiten.NewImage(int(pl.Width), int(pl.Height))
		img.Fill(colornames.Forestgreen)
		r.platformImgs = append(r.platformImgs, img)
	}
	return r
}

func (r *renderer) Draw(screen *ebiten.Image, w *sim.World, debug bool) {
	screen.Fill(colornames.Skyblue)

	camX := w.Camera.X

	for i, pl := range w.Platforms {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(pl.X-camX, pl.Y)
		screen.DrawImage(r.platformImgs[i], op)
	}

	for _, e := range w.Enemies {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(e.X-camX, e.Y)
		screen.DrawImage(r.enemyImg, op)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(w.Player.X-camX, w.Player.Y)
	screen.DrawImage(r.playerImg, op)

	if debug {
		r.drawOutlines(screen, w, camX)
	}
}

func (r *renderer) drawOutlines(screen *ebiten.Image, w *sim.World, camX float64) {
	outline := color.RGBA{255, 255, 0, 255}

	vector.StrokeRect(screen,
		float32(w.Player.X-camX), float32(w.Player.Y),
		float32(w.Player.Width), float32(w.Player.Height),
		1.0, outline, false)

	for _, e := range w.Enemies {
		vector.StrokeRect(screen,
			float32(e.X-camX), float32(e.Y),
			float32(e.Width), float32(e.Height),
			1.0, outline, false)
	}

	for _, pl := range w.Platforms {
		vector.StrokeRect(screen,
			float32(pl.X-camX), float32(pl.Y),
			float32(pl.Width), float32(pl.Height),
			1.0, outline, false)
	}
}
