package particle

import "github.com/iburimskiy/particle-field/internal/config"

// LinearMap maps v from [in0, in1] onto [out0, out1]. Inputs outside the
// range hold at the nearest output bound.
func LinearMap(v, in0, in1, out0, out1 float64) float64 {
	if in0 == in1 {
		return out0
	}
	t := clamp01((v - in0) / (in1 - in0))
	return out0 + t*(out1-out0)
}

// ParallaxOffset is the vertical offset of the canvas for a page scroll
// position.
func ParallaxOffset(scrollY float64) float64 {
	return LinearMap(scrollY, 0, config.ParallaxScrollMax, 0, config.ParallaxOffsetMax)
}
