package gfx

import "testing"

func TestColorRGB888(t *testing.T) {
	c := RGBA(0x12, 0x34, 0x56, 0x80)
	r, g, b := c.RGB888()
	if r != 0x12 || g != 0x34 || b != 0x56 {
		t.Fatalf("RGB888() = (%#x, %#x, %#x), want (0x12, 0x34, 0x56)", r, g, b)
	}
}

func TestGradientEndpoints(t *testing.T) {
	a := RGB(0xFF, 0x00, 0x00)
	b := RGB(0x00, 0x00, 0xFF)

	g := Gradient(a, b, 8)
	if len(g) != 8 {
		t.Fatalf("len(Gradient) = %d, want 8", len(g))
	}
	if g[0] != a {
		t.Fatalf("Gradient[0] = %+v, want %+v", g[0], a)
	}
	if g[7] != b {
		t.Fatalf("Gradient[7] = %+v, want %+v", g[7], b)
	}
}

func TestGradientDegenerate(t *testing.T) {
	if g := Gradient(White, Black, 0); g != nil {
		t.Fatalf("Gradient(n=0) = %v, want nil", g)
	}
	g := Gradient(White, Black, 1)
	if len(g) != 1 || g[0] != White {
		t.Fatalf("Gradient(n=1) = %v, want [White]", g)
	}
}

func TestShadeKeepsAlpha(t *testing.T) {
	c := RGBA(0x80, 0x80, 0x80, 0x42)
	s := Shade(c, 0.5)
	if s.A != 0x42 {
		t.Fatalf("Shade alpha = %#x, want 0x42", s.A)
	}
	if s.R >= c.R && s.G >= c.G && s.B >= c.B && s != c {
		t.Fatalf("Shade(%+v, 0.5) = %+v, expected darker color", c, s)
	}
	if Shade(c, 0) != c {
		t.Fatalf("Shade(c, 0) changed the color")
	}
}
