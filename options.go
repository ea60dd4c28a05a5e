package coaster

import (
	"image/color"

	"github.com/gogpu/gg"
)

// Option configures a Renderer during creation.
//
// Example:
//
//	r, err := coaster.NewRenderer(
//	    coaster.WithTileWidth(96),
//	    coaster.WithHeightUnit(24),
//	)
type Option func(*Renderer)

// WithTileWidth sets the screen width of one tile. The tile height is
// always 0.6 of the width.
func WithTileWidth(w float64) Option {
	return func(r *Renderer) {
		r.proj.TileWidth = w
	}
}

// WithHeightUnit sets the screen rise of one height unit.
func WithHeightUnit(u float64) Option {
	return func(r *Renderer) {
		r.proj.HeightUnit = u
	}
}

// WithTrackWidth sets the distance between the two rails.
func WithTrackWidth(w float64) Option {
	return func(r *Renderer) {
		r.trackWidth = w
	}
}

// WithTieSpacing sets the nominal distance between crossties on straight
// and sloped segments.
func WithTieSpacing(d float64) Option {
	return func(r *Renderer) {
		r.tieSpacing = d
	}
}

// DrawOption adjusts a single draw call.
type DrawOption func(*drawOptions)

// DefaultTrackColor is the steel grey used for rails when no colour is given.
var DefaultTrackColor = gg.Hex("#8C9099")

type drawOptions struct {
	track gg.RGBA
	style StrutStyle
}

func resolveDrawOptions(opts []DrawOption) drawOptions {
	o := drawOptions{track: DefaultTrackColor, style: Metal}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithTrackColor sets the rail colour. Nil keeps the default.
func WithTrackColor(c color.Color) DrawOption {
	return func(o *drawOptions) {
		if c != nil {
			o.track = gg.FromColor(c)
		}
	}
}

// WithStrutStyle selects wood or metal supports.
func WithStrutStyle(s StrutStyle) DrawOption {
	return func(o *drawOptions) {
		o.style = s
	}
}
