package render

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/reindeer/gridgraph"
)

// Image draws mz with the cells in marked highlighted. Marked cells that are
// walls or out of bounds are ignored.
// Complexity: O(W×H + len(marked)) draw calls.
func Image(mz *gridgraph.Maze, marked []gridgraph.Coordinates, opts ...Option) (image.Image, error) {
	dc, err := draw(mz, marked, opts)
	if err != nil {
		return nil, err
	}

	return dc.Image(), nil
}

// PNG draws mz like Image and encodes the result to w.
func PNG(w io.Writer, mz *gridgraph.Maze, marked []gridgraph.Coordinates, opts ...Option) error {
	dc, err := draw(mz, marked, opts)
	if err != nil {
		return err
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("render: encoding png: %w", err)
	}

	return nil
}

func draw(mz *gridgraph.Maze, marked []gridgraph.Coordinates, opts []Option) (*gg.Context, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if mz == nil || mz.Grid == nil {
		return nil, ErrNilMaze
	}

	g, s := mz.Grid, float64(cfg.Scale)
	dc := gg.NewContext(g.Width*cfg.Scale, g.Height*cfg.Scale)
	dc.SetColor(cfg.Wall)
	dc.Clear()

	cell := func(c gridgraph.Coordinates) {
		dc.DrawRectangle(float64(c.X)*s, float64(c.Y)*s, s, s)
		dc.Fill()
	}
	dc.SetColor(cfg.Floor)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if c := gridgraph.Pt(x, y); g.IsOpen(c) {
				cell(c)
			}
		}
	}
	dc.SetColor(cfg.Path)
	for _, c := range marked {
		if g.IsOpen(c) {
			cell(c)
		}
	}

	marker := func(c gridgraph.Coordinates, col color.Color) {
		dc.SetColor(col)
		dc.DrawCircle(float64(c.X)*s+s/2, float64(c.Y)*s+s/2, s*0.4)
		dc.Fill()
	}
	marker(mz.Start, cfg.Start)
	marker(mz.End, cfg.End)

	return dc, nil
}
