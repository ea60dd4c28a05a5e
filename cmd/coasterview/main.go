// Command coasterview shows a coaster scene in a window with the chain
// lifts running.
//
// Keys: Space pauses, Up/Down change the chain speed.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/coaster"
	ebitensurface "github.com/gogpu/coaster/backend/ebiten"
	"github.com/gogpu/coaster/scene"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type Game struct {
	scene    *scene.Scene
	renderer *coaster.Renderer
	surface  *ebitensurface.Surface

	tick   float64
	speed  float64
	paused bool
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.speed += 0.25
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) && g.speed > 0.25 {
		g.speed -= 0.25
	}
	if !g.paused {
		g.tick += g.speed
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.scene.Background.Color())
	g.surface.SetTarget(screen)
	if err := g.scene.Draw(g.renderer, g.surface, g.tick); err != nil {
		coaster.Logger().Error("coasterview: draw failed", "err", err)
	}

	status := fmt.Sprintf("tick %.1f  speed %.2f", g.tick, g.speed)
	if g.paused {
		status += "  (paused)"
	}
	ebitenutil.DebugPrintAt(screen, status, 8, 8)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.scene.Width, g.scene.Height
}

func main() {
	var (
		scenePath = flag.String("scene", "", "scene file (yaml, json or toml); empty for the demo ride")
		speed     = flag.Float64("speed", 0.5, "chain ticks per frame")
		verbose   = flag.Bool("v", false, "log debug output")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	coaster.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	s, err := scene.Load(*scenePath)
	if err != nil {
		log.Fatalf("coasterview: %v", err)
	}
	r, err := s.NewRenderer()
	if err != nil {
		log.Fatalf("coasterview: %v", err)
	}

	game := &Game{
		scene:    s,
		renderer: r,
		surface:  ebitensurface.New(nil),
		speed:    *speed,
	}

	ebiten.SetWindowSize(s.Width, s.Height)
	ebiten.SetWindowTitle("coaster")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
