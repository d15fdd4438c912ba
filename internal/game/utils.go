package game

import (
	"image/color"
	"math"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampRange(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	return math.Max(lo, math.Min(hi, v))
}

// rgbA builds a straight-alpha colour from an RGB triple and an opacity in [0, 1].
func rgbA(rgb [3]uint8, alpha float64) color.NRGBA {
	return color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: uint8(math.Round(clamp01(alpha) * 255))}
}
