package render

import (
	"errors"
	"fmt"
	"image/color"
)

// Sentinel errors for rendering.
var (
	// ErrNilMaze indicates a nil maze or a maze without a grid.
	ErrNilMaze = errors.New("render: maze is nil")

	// ErrBadScale indicates a non-positive cell size.
	ErrBadScale = errors.New("render: scale must be positive")
)

// DefaultScale is the default edge length of one cell in pixels.
const DefaultScale = 8

// Default palette.
var (
	DefaultWall  = color.RGBA{R: 0x20, G: 0x20, B: 0x28, A: 0xff}
	DefaultFloor = color.RGBA{R: 0xf4, G: 0xf1, B: 0xe8, A: 0xff}
	DefaultPath  = color.RGBA{R: 0xe0, G: 0x9f, B: 0x3e, A: 0xff}
	DefaultStart = color.RGBA{R: 0x2e, G: 0x8b, B: 0x57, A: 0xff}
	DefaultEnd   = color.RGBA{R: 0xb2, G: 0x22, B: 0x22, A: 0xff}
)

// Options configures PNG and Image.
type Options struct {
	// Scale is the cell edge in pixels. Must be > 0.
	Scale int

	Wall, Floor, Path color.Color
	Start, End        color.Color

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring rendering.
type Option func(*Options)

// DefaultOptions returns Options with DefaultScale and the default palette.
func DefaultOptions() Options {
	return Options{
		Scale: DefaultScale,
		Wall:  DefaultWall,
		Floor: DefaultFloor,
		Path:  DefaultPath,
		Start: DefaultStart,
		End:   DefaultEnd,
	}
}

// WithScale sets the cell edge in pixels.
//
//	px > 0:  used as is
//	px <= 0: invalid option → ErrBadScale
func WithScale(px int) Option {
	return func(o *Options) {
		if px <= 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadScale, px)
			return
		}
		o.Scale = px
	}
}

// WithPalette overrides the wall, floor and highlight colors. Nil colors keep
// their current value.
func WithPalette(wall, floor, path color.Color) Option {
	return func(o *Options) {
		if wall != nil {
			o.Wall = wall
		}
		if floor != nil {
			o.Floor = floor
		}
		if path != nil {
			o.Path = path
		}
	}
}

// WithMarkers overrides the start and end marker colors. Nil colors keep
// their current value.
func WithMarkers(start, end color.Color) Option {
	return func(o *Options) {
		if start != nil {
			o.Start = start
		}
		if end != nil {
			o.End = end
		}
	}
}
