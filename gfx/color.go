package gfx

// Color is the kernel-wide pixel value: an RGBA color in 8-bit channels.
//
// Display drivers never store Colors in device memory directly; they ask for
// the truecolor triple via RGB888 and encode it in whatever layout the
// hardware negotiated. RGB888 sits on the per-pixel flush path and must stay
// allocation-free and infallible.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color     { return Color{R: r, G: g, B: b, A: 0xFF} }
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

// RGB888 returns the three 8-bit intensity channels of the color. Lossless
// for truecolor targets.
func (c Color) RGB888() (r, g, b uint8) {
	return c.R, c.G, c.B
}

// Common bring-up colors.
var (
	Black = RGB(0x00, 0x00, 0x00)
	White = RGB(0xFF, 0xFF, 0xFF)

	// BootBorder is the default fill for a freshly allocated backing buffer.
	BootBorder = RGB(0x10, 0x14, 0x1C)
)
