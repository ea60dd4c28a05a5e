package scene

import (
	"fmt"

	"github.com/gogpu/coaster"
	"github.com/gogpu/gg"
	"github.com/spf13/viper"
)

const (
	defaultBackground = "#DCE8D2"
	defaultTrackColor = "#8C9099"
)

// pieceConfig is one entry of the pieces list in a scene file.
type pieceConfig struct {
	Col         int     `mapstructure:"col"`
	Row         int     `mapstructure:"row"`
	Shape       string  `mapstructure:"shape"`
	Entry       string  `mapstructure:"entry"`
	Exit        string  `mapstructure:"exit"`
	StartHeight float64 `mapstructure:"startHeight"`
	EndHeight   float64 `mapstructure:"endHeight"`
	ChainLift   bool    `mapstructure:"chainLift"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("tileWidth", coaster.DefaultTileWidth)
	v.SetDefault("heightUnit", coaster.DefaultHeightUnit)
	v.SetDefault("trackWidth", coaster.DefaultTrackWidth)
	v.SetDefault("strutStyle", "metal")
	v.SetDefault("trackColor", defaultTrackColor)
	v.SetDefault("background", defaultBackground)

	v.SetDefault("canvas.width", 960)
	v.SetDefault("canvas.height", 640)

	v.SetDefault("origin.x", 560)
	v.SetDefault("origin.y", 200)
}

// Load reads a scene file. The format follows the file extension (yaml,
// json, toml). Keys missing from the file take their defaults; a file
// without pieces gets the built-in demo ride. An empty path returns
// Default().
func Load(path string) (*Scene, error) {
	if path == "" {
		return Default(), nil
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("scene: error reading config file: %w", err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Scene, error) {
	style, err := coaster.ParseStrutStyle(v.GetString("strutStyle"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}
	track, err := parseColor(v.GetString("trackColor"))
	if err != nil {
		return nil, err
	}
	bg, err := parseColor(v.GetString("background"))
	if err != nil {
		return nil, err
	}

	s := &Scene{
		TileWidth:  v.GetFloat64("tileWidth"),
		HeightUnit: v.GetFloat64("heightUnit"),
		TrackWidth: v.GetFloat64("trackWidth"),
		Style:      style,
		TrackColor: track,
		Background: bg,
		Width:      v.GetInt("canvas.width"),
		Height:     v.GetInt("canvas.height"),
		Origin:     gg.Pt(v.GetFloat64("origin.x"), v.GetFloat64("origin.y")),
	}
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("%w: canvas %dx%d", ErrInvalidScene, s.Width, s.Height)
	}
	if _, err := s.NewRenderer(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}

	var raw []pieceConfig
	if err := v.UnmarshalKey("pieces", &raw); err != nil {
		return nil, fmt.Errorf("%w: pieces: %v", ErrInvalidScene, err)
	}
	if len(raw) == 0 {
		coaster.Logger().Debug("scene: no pieces in file, using demo ride")
		s.Pieces = DefaultPieces()
		return s, nil
	}
	for i, pc := range raw {
		p, err := pc.piece()
		if err != nil {
			return nil, fmt.Errorf("%w: piece %d: %v", ErrInvalidScene, i, err)
		}
		s.Pieces = append(s.Pieces, p)
	}
	return s, nil
}

func (pc pieceConfig) piece() (Piece, error) {
	shape, err := coaster.ParseShape(pc.Shape)
	if err != nil {
		return Piece{}, err
	}
	exit, err := coaster.ParseDirection(pc.Exit)
	if err != nil {
		return Piece{}, fmt.Errorf("exit: %w", err)
	}
	// Entry defaults to the edge opposite the exit, which is right for
	// everything except turns.
	entry := exit.Opposite()
	if pc.Entry != "" {
		if entry, err = coaster.ParseDirection(pc.Entry); err != nil {
			return Piece{}, fmt.Errorf("entry: %w", err)
		}
	}
	end := pc.EndHeight
	if shape == coaster.Straight || shape == coaster.TurnLeft || shape == coaster.TurnRight {
		end = pc.StartHeight
	}
	return Piece{
		Col: pc.Col,
		Row: pc.Row,
		TrackSegment: coaster.TrackSegment{
			Shape:       shape,
			Entry:       entry,
			Exit:        exit,
			StartHeight: pc.StartHeight,
			EndHeight:   end,
			ChainLift:   pc.ChainLift,
		},
	}, nil
}
