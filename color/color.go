// Package color implements the handful of CSS color operations the sketch
// pad needs.
package color

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
)

// SRGB is a non-premultiplied sRGB color with channels in [0, 1].
type SRGB struct {
	R float32
	G float32
	B float32
	A float32
}

var (
	Black = color.NRGBA{A: 0xFF}
	White = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

func FromNRGBA(c color.NRGBA) SRGB {
	return SRGB{
		R: float32(c.R) / 0xFF,
		G: float32(c.G) / 0xFF,
		B: float32(c.B) / 0xFF,
		A: float32(c.A) / 0xFF,
	}
}

func (c SRGB) NRGBA() color.NRGBA {
	round := func(f float32) uint8 {
		return uint8(math.Round(float64(clamp01(f) * 0xFF)))
	}
	return color.NRGBA{R: round(c.R), G: round(c.G), B: round(c.B), A: round(c.A)}
}

// HSL converts a CSS hsl() color to sRGB. h is in degrees, s and l are
// percentages. Out of range saturation and lightness are clamped, the hue
// wraps around.
func HSL(h, s, l float32) color.NRGBA {
	h = float32(math.Mod(float64(h), 360))
	if h < 0 {
		h += 360
	}
	s = clamp01(s / 100)
	l = clamp01(l / 100)

	// See https://www.w3.org/TR/css-color-4/#hsl-to-rgb
	f := func(n float32) float32 {
		k := float32(math.Mod(float64(n+h/30), 12))
		a := s * min(l, 1-l)
		return l - a*max(-1, min(k-3, 9-k, 1))
	}
	return SRGB{f(0), f(8), f(4), 1}.NRGBA()
}

// Brightness applies the CSS brightness() filter function, scaling each
// color channel by amount. Alpha is left alone.
func Brightness(c color.NRGBA, amount float32) color.NRGBA {
	if amount == 1 {
		return c
	}
	if amount < 0 {
		amount = 0
	}
	s := FromNRGBA(c)
	s.R *= amount
	s.G *= amount
	s.B *= amount
	return s.NRGBA()
}

var errBadHex = errors.New("malformed hex color")

// ParseHex parses colors of the forms #rgb, #rrggbb and #rrggbbaa.
func ParseHex(s string) (color.NRGBA, error) {
	if len(s) == 0 || s[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("%q: %w", s, errBadHex)
	}
	s = s[1:]
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) == 6 {
		s += "ff"
	}
	if len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("%q: %w", "#"+s, errBadHex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%q: %w", "#"+s, errBadHex)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

func MustParseHex(s string) color.NRGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func clamp01(f float32) float32 {
	return max(0, min(f, 1))
}
