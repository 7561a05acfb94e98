package app

import (
	"image/color"
	"math"
)

// ColorTheme selects the gradient used for power density.
type ColorTheme string

const (
	ClassicTheme   ColorTheme = "classic"   // blue to red
	GrayscaleTheme ColorTheme = "grayscale" // black to white
	ThermalTheme   ColorTheme = "thermal"   // black to red to yellow to white

	defaultColorMapSize = 256
)

// DensityMapper maps a power density onto a pre-computed gradient. The
// bounds are fixed at construction; densities are mapped on a log scale
// because exposure falls off over several orders of magnitude.
type DensityMapper struct {
	colors   []color.Color
	logMin   float64
	logRange float64
}

// NewDensityMapper builds a mapper for densities between min and max,
// both in W/m^2 and positive.
func NewDensityMapper(theme ColorTheme, min, max float64) *DensityMapper {
	themeFn := colorThemeFunc(theme)
	m := &DensityMapper{
		colors:   make([]color.Color, defaultColorMapSize),
		logMin:   math.Log10(min),
		logRange: math.Log10(max) - math.Log10(min),
	}
	for i := range m.colors {
		m.colors[i] = themeFn(float64(i) / float64(len(m.colors)-1))
	}
	return m
}

// Normalize maps a density onto [0, 1] along the log scale.
func (m *DensityMapper) Normalize(density float64) float64 {
	if density <= 0 {
		return 0
	}
	n := (math.Log10(density) - m.logMin) / m.logRange
	return math.Max(0, math.Min(1, n))
}

// Color returns the gradient color for a density.
func (m *DensityMapper) Color(density float64) color.Color {
	idx := int(m.Normalize(density) * float64(len(m.colors)-1))
	return m.colors[idx]
}

// hsv is a color in hue/saturation/value space.
type hsv struct {
	h float64 // degrees, 0-360
	s float64 // 0-1
	v float64 // 0-1
}

func (c hsv) rgb() color.Color {
	if c.s <= 0 {
		v := uint8(c.v * 255)
		return color.RGBA{R: v, G: v, B: v, A: 255}
	}

	h := c.h
	if h >= 360 {
		h -= 360
	}
	h /= 60

	i := int(h)
	f := h - float64(i)

	v := uint8(c.v * 255)
	p := uint8((c.v * (1 - c.s)) * 255)
	q := uint8((c.v * (1 - c.s*f)) * 255)
	t := uint8((c.v * (1 - c.s*(1-f))) * 255)

	switch i {
	case 0:
		return color.RGBA{R: v, G: t, B: p, A: 255}
	case 1:
		return color.RGBA{R: q, G: v, B: p, A: 255}
	case 2:
		return color.RGBA{R: p, G: v, B: t, A: 255}
	case 3:
		return color.RGBA{R: p, G: q, B: v, A: 255}
	case 4:
		return color.RGBA{R: t, G: p, B: v, A: 255}
	default:
		return color.RGBA{R: v, G: p, B: q, A: 255}
	}
}

func colorThemeFunc(theme ColorTheme) func(float64) color.Color {
	switch theme {
	case GrayscaleTheme:
		return func(n float64) color.Color {
			v := uint8(math.Pow(n, 0.7) * 255)
			return color.RGBA{R: v, G: v, B: v, A: 255}
		}

	case ThermalTheme:
		return func(n float64) color.Color {
			switch {
			case n < 0.33:
				return color.RGBA{R: uint8(n * 3 * 255), A: 255}
			case n < 0.66:
				return color.RGBA{R: 255, G: uint8((n - 0.33) * 3 * 255), A: 255}
			default:
				return color.RGBA{R: 255, G: 255, B: uint8((n - 0.66) * 3 * 255), A: 255}
			}
		}

	default: // ClassicTheme
		return func(n float64) color.Color {
			return hsv{
				h: 240 - n*240,
				s: 0.9 + n*0.1,
				v: math.Pow(n, 0.7),
			}.rgb()
		}
	}
}
