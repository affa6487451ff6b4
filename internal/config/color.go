package config

import (
	"image/color"
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// ErrInvalidColorFormat is returned for color strings that are not exactly
// six hex digits after an optional leading '#'.
var ErrInvalidColorFormat = errors.New("invalid hex color format")

// ParseHexColor converts a "#RRGGBB" string and an opacity percentage into a
// single RGBA value. Opacity is clamped to [0,100] and mapped to
// round(255*pct/100).
func ParseHexColor(hex string, opacityPercent int) (color.NRGBA, error) {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return color.NRGBA{}, errors.Wrapf(ErrInvalidColorFormat, "%q", hex)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, errors.Wrapf(ErrInvalidColorFormat, "%q", hex)
	}
	if opacityPercent < 0 {
		opacityPercent = 0
	} else if opacityPercent > 100 {
		opacityPercent = 100
	}
	a := uint8(math.Round(255 * float64(opacityPercent) / 100))
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: a,
	}, nil
}
