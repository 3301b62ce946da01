package gfx

import colorful "github.com/lucasb-eyer/go-colorful"

// Gradient returns n colors blended from a to b in Luv space.
//
// Cold-path helper for splash screens and diagnostics; flush never calls into
// this package beyond Color.RGB888.
func Gradient(a, b Color, n int) []Color {
	if n <= 0 {
		return nil
	}
	out := make([]Color, n)
	if n == 1 {
		out[0] = a
		return out
	}

	ca := toColorful(a)
	cb := toColorful(b)
	for i := range out {
		t := float64(i) / float64(n-1)
		out[i] = fromColorful(ca.BlendLuv(cb, t))
	}
	return out
}

// Shade darkens c by the given factor in [0,1]; 0 leaves the color unchanged.
func Shade(c Color, factor float64) Color {
	if factor <= 0 {
		return c
	}
	if factor > 1 {
		factor = 1
	}
	h, s, v := toColorful(c).Hsv()
	out := fromColorful(colorful.Hsv(h, s, v*(1-factor)))
	out.A = c.A
	return out
}

func toColorful(c Color) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func fromColorful(c colorful.Color) Color {
	cl := c.Clamped()
	return RGB(
		uint8(cl.R*255+0.5),
		uint8(cl.G*255+0.5),
		uint8(cl.B*255+0.5),
	)
}
