// Command coasterdemo renders a coaster scene to a PNG file.
//
// Usage:
//
//	coasterdemo [-scene ride.yaml] [-output coaster.png] [-backend software] [-tick 0] [-labels] [-v]
//
// Without -scene the built-in demo ride is drawn. Build with -tags gpu to
// let gg rasterize on the GPU.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/coaster"
	"github.com/gogpu/coaster/backend"
	"github.com/gogpu/coaster/scene"
	"github.com/gogpu/gg"
)

func main() {
	var (
		scenePath = flag.String("scene", "", "scene file (yaml, json or toml); empty for the demo ride")
		output    = flag.String("output", "coaster.png", "output file")
		backendID = flag.String("backend", "", fmt.Sprintf("output backend %v; empty for the best available", backend.Available()))
		tick      = flag.Float64("tick", 0, "animation tick for chain lifts")
		labels    = flag.Bool("labels", false, "label every piece with its shape")
		verbose   = flag.Bool("v", false, "log debug output")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	coaster.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(*scenePath, *output, *backendID, *tick, *labels); err != nil {
		log.Fatalf("coasterdemo: %v", err)
	}
}

func run(scenePath, output, backendID string, tick float64, labels bool) error {
	s, err := scene.Load(scenePath)
	if err != nil {
		return err
	}
	r, err := s.NewRenderer()
	if err != nil {
		return err
	}
	b, err := backend.Lookup(backendID)
	if err != nil {
		return err
	}

	c, err := b.NewCanvas(s.Width, s.Height, s.Background)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	if err := s.Draw(r, c, tick); err != nil {
		return err
	}
	if labels {
		drawLabels(s, r, c)
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := c.EncodePNG(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", output, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	log.Printf("Scene saved to %s (%dx%d, %d pieces, backend %s)", output, s.Width, s.Height, len(s.Pieces), b.Name())
	return nil
}

// drawLabels writes each piece's shape under its tile. Canvases without
// text support are skipped.
func drawLabels(s *scene.Scene, r *coaster.Renderer, c backend.Canvas) {
	l, ok := c.(backend.Labeler)
	if !ok {
		coaster.Logger().Warn("coasterdemo: backend cannot draw labels")
		return
	}
	a := r.Projector()
	for _, p := range s.Pieces {
		o := s.CellOrigin(r, p)
		at := a.Anchors(o, 0).Center.Add(gg.Pt(0, a.TileHeight()/2+backend.LabelSize))
		if err := l.Label(p.Shape.String(), at.X, at.Y, gg.Hex("#333333")); err != nil {
			coaster.Logger().Warn("coasterdemo: label failed", "err", err)
			return
		}
	}
}
