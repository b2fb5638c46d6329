package district

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette parameters for Colors.
const (
	// GoldenAngle is the hue step between consecutive districts, in degrees.
	GoldenAngle = 137.508

	ColorSaturation = 0.7
	ColorLightness  = 0.6
)

// Colors returns n distinct "#rrggbb" colours; district i+1 gets entry i.
// Hues advance by the golden angle so neighbouring IDs never look alike.
func Colors(n int) []string {
	if n <= 0 {
		return []string{}
	}
	out := make([]string, n)
	for i := range out {
		hue := math.Mod(float64(i)*GoldenAngle, 360)
		out[i] = colorful.Hsl(hue, ColorSaturation, ColorLightness).Clamped().Hex()
	}

	return out
}
