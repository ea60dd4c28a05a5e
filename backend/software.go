package backend

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// Backend name constants.
const (
	// Software is the name of the gg raster backend.
	Software = "software"
	// Recording is the name of the record-then-replay backend.
	Recording = "recording"
)

// LabelSize is the font size used by Label.
const LabelSize = 11.0

func init() {
	Register(Software, func() Backend {
		return &SoftwareBackend{}
	})
}

// SoftwareBackend draws directly onto a gg.Context. When gg has a GPU
// accelerator registered, gg uses it transparently.
type SoftwareBackend struct{}

// NewSoftwareBackend creates a new software backend.
func NewSoftwareBackend() *SoftwareBackend {
	return &SoftwareBackend{}
}

// Name returns the backend identifier.
func (b *SoftwareBackend) Name() string {
	return Software
}

// NewCanvas creates a gg-backed canvas.
func (b *SoftwareBackend) NewCanvas(width, height int, background gg.RGBA) (Canvas, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	dc := gg.NewContext(width, height)
	dc.ClearWithColor(background)
	return &softwareCanvas{Context: dc}, nil
}

// softwareCanvas is a gg.Context with text labels.
type softwareCanvas struct {
	*gg.Context
}

var _ Labeler = (*softwareCanvas)(nil)

// labelFont is parsed once and shared by every canvas.
var labelFont = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// Label draws s centred on (x, y).
func (c *softwareCanvas) Label(s string, x, y float64, col gg.RGBA) error {
	src, err := labelFont()
	if err != nil {
		return fmt.Errorf("backend: load label font: %w", err)
	}
	c.SetFont(src.Face(LabelSize))
	c.SetColor(col.Color())
	c.DrawStringAnchored(s, x, y, 0.5, 0.5)
	return nil
}
