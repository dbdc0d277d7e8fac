package effect

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// FallbackHex is the color used for "none" and for any effect name that is not registered.
const FallbackHex = "#00FF41"

// Color is a hue/saturation/lightness triple, or a fixed hex value when Fixed is set.
// H is in degrees, S and L are percentages.
type Color struct {
	H, S, L float64
	Fixed   string
}

// HSL builds a triple color.
func HSL(h, s, l float64) Color {
	return Color{H: h, S: s, L: l}
}

// FromHex builds a fixed color. Input without a leading '#' is accepted.
func FromHex(hex string) (Color, error) {
	hex = strings.TrimSpace(hex)
	if hex == "" {
		return Color{}, fmt.Errorf("empty color")
	}
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if _, err := colorful.Hex(hex); err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return Color{Fixed: strings.ToUpper(hex)}, nil
}

// Fallback returns the fixed fallback color.
func Fallback() Color {
	return Color{Fixed: FallbackHex}
}

// IsZero reports whether c was never set.
func (c Color) IsZero() bool {
	return c == Color{}
}

// Hex returns the color as "#RRGGBB".
func (c Color) Hex() string {
	if c.Fixed != "" {
		return c.Fixed
	}
	return strings.ToUpper(c.colorful().Clamped().Hex())
}

// CSS returns a value usable in a style attribute.
func (c Color) CSS() string {
	if c.Fixed != "" {
		return c.Fixed
	}
	return fmt.Sprintf("hsl(%s, %s%%, %s%%)", trimFloat(c.H), trimFloat(c.S), trimFloat(c.L))
}

func (c Color) colorful() colorful.Color {
	if c.Fixed != "" {
		col, err := colorful.Hex(c.Fixed)
		if err == nil {
			return col
		}
	}
	return colorful.Hsl(wrapHue(c.H), clampPercent(c.S)/100, clampPercent(c.L)/100)
}

func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	return strings.TrimSuffix(s, ".0")
}
