package config

import (
	"image/color"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// CaseMode selects the word case transform applied before layout.
type CaseMode string

const (
	CaseAsIs  CaseMode = "as-is"
	CaseUpper CaseMode = "upper"
	CaseLower CaseMode = "lower"
	CaseTitle CaseMode = "title"
)

// Style is the full set of subtitle styling options. It is a plain value:
// every rendering call receives it explicitly, nothing is held globally.
// Colors are "#RRGGBB" strings paired with 0-100 opacity percentages; an
// opacity of 0 suppresses drawing the element entirely.
type Style struct {
	WordCase         CaseMode `toml:"word_case"`
	Font             string   `toml:"font"`
	FontSize         int      `toml:"font_size"`
	YPositionPercent int      `toml:"y_position_percent"`
	XOffset          int      `toml:"x_offset"`
	AreaWidthPercent int      `toml:"area_width_percent"`

	NormalColor            string `toml:"normal_color"`
	NormalOpacity          int    `toml:"normal_opacity"`
	NormalOutlineColor     string `toml:"normal_outline_color"`
	NormalOutlineOpacity   int    `toml:"normal_outline_opacity"`
	NormalOutlineThickness int    `toml:"normal_outline_thickness"`

	ActiveDisabled         bool    `toml:"active_disabled"`
	ActiveColor            string  `toml:"active_color"`
	ActiveOpacity          int     `toml:"active_opacity"`
	ActiveOutlineColor     string  `toml:"active_outline_color"`
	ActiveOutlineOpacity   int     `toml:"active_outline_opacity"`
	ActiveOutlineThickness int     `toml:"active_outline_thickness"`
	ActiveSizeScale        float64 `toml:"active_size_scale"`
	ActiveBgColor          string  `toml:"active_bg_color"`
	ActiveBgOpacity        int     `toml:"active_bg_opacity"`
	ActiveBgCornerRadius   int     `toml:"active_bg_corner_radius"`

	BgColor        string `toml:"bg_color"`
	BgOpacity      int    `toml:"bg_opacity"`
	BgCornerRadius int    `toml:"bg_corner_radius"`
}

// Palette holds every style color resolved to RGBA. Resolution happens once,
// before the frame loop starts, so the per-frame path never parses colors and
// never sees a color error.
type Palette struct {
	NormalFill    color.NRGBA
	NormalOutline color.NRGBA
	ActiveFill    color.NRGBA
	ActiveOutline color.NRGBA
	ActiveBg      color.NRGBA
	BlockBg       color.NRGBA
}

// DefaultStyle returns the baseline styling used when no preset or style
// file is given.
func DefaultStyle() Style {
	return Style{
		WordCase:         CaseAsIs,
		Font:             "Arial",
		FontSize:         48,
		YPositionPercent: 80,
		XOffset:          0,
		AreaWidthPercent: 80,

		NormalColor:            "#FFFFFF",
		NormalOpacity:          100,
		NormalOutlineColor:     "#000000",
		NormalOutlineOpacity:   100,
		NormalOutlineThickness: 3,

		ActiveColor:            "#5096FF",
		ActiveOpacity:          100,
		ActiveOutlineColor:     "#000000",
		ActiveOutlineOpacity:   100,
		ActiveOutlineThickness: 3,
		ActiveSizeScale:        1.0,
		ActiveBgColor:          "#34DD00",
		ActiveBgOpacity:        90,
		ActiveBgCornerRadius:   10,

		BgColor:        "#000000",
		BgOpacity:      0,
		BgCornerRadius: 0,
	}
}

// Load reads a TOML style file over the given base style. Only keys present
// in the file override the base.
func Load(path string, base Style) (Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, errors.Wrap(err, "failed to read style file")
	}
	s := base
	if err := toml.Unmarshal(data, &s); err != nil {
		return base, errors.Wrap(err, "failed to parse style file")
	}
	return s, nil
}

// Validate normalizes ranges and resolves all colors. A malformed color
// fails here, before any drawing begins.
func (s *Style) Validate() (Palette, error) {
	switch s.WordCase {
	case CaseAsIs, CaseUpper, CaseLower, CaseTitle:
	case "":
		s.WordCase = CaseAsIs
	default:
		return Palette{}, errors.Errorf("unknown word case %q", s.WordCase)
	}
	if s.FontSize <= 0 {
		return Palette{}, errors.Errorf("font size must be positive, got %d", s.FontSize)
	}
	if s.AreaWidthPercent <= 0 || s.AreaWidthPercent > 100 {
		return Palette{}, errors.Errorf("subtitle area width must be in (0,100], got %d", s.AreaWidthPercent)
	}
	if s.YPositionPercent < 0 || s.YPositionPercent > 100 {
		return Palette{}, errors.Errorf("vertical position must be in [0,100], got %d", s.YPositionPercent)
	}
	if s.ActiveSizeScale <= 0 {
		s.ActiveSizeScale = 1.0
	}
	if s.NormalOutlineThickness < 0 {
		s.NormalOutlineThickness = 0
	}
	if s.ActiveOutlineThickness < 0 {
		s.ActiveOutlineThickness = 0
	}

	var p Palette
	var err error
	if p.NormalFill, err = ParseHexColor(s.NormalColor, s.NormalOpacity); err != nil {
		return Palette{}, errors.Wrap(err, "normal text color")
	}
	if p.NormalOutline, err = ParseHexColor(s.NormalOutlineColor, s.NormalOutlineOpacity); err != nil {
		return Palette{}, errors.Wrap(err, "normal outline color")
	}
	if p.ActiveFill, err = ParseHexColor(s.ActiveColor, s.ActiveOpacity); err != nil {
		return Palette{}, errors.Wrap(err, "active text color")
	}
	if p.ActiveOutline, err = ParseHexColor(s.ActiveOutlineColor, s.ActiveOutlineOpacity); err != nil {
		return Palette{}, errors.Wrap(err, "active outline color")
	}
	if p.ActiveBg, err = ParseHexColor(s.ActiveBgColor, s.ActiveBgOpacity); err != nil {
		return Palette{}, errors.Wrap(err, "active word background color")
	}
	if p.BlockBg, err = ParseHexColor(s.BgColor, s.BgOpacity); err != nil {
		return Palette{}, errors.Wrap(err, "block background color")
	}
	return p, nil
}
