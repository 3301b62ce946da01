package pixfmt

import (
	"bytes"
	"testing"

	"github.com/cockroachdb/errors"
)

func truecolorDesc(bpp uint8, rs, gs, bs uint8) Descriptor {
	return Descriptor{
		Base:         0xFD000000,
		Width:        640,
		Height:       480,
		BitsPerPixel: bpp,
		Stride:       640 * uint32(bpp) / 8,
		Red:          Channel{MaskSize: 8, Shift: rs},
		Green:        Channel{MaskSize: 8, Shift: gs},
		Blue:         Channel{MaskSize: 8, Shift: bs},
	}
}

func TestResolve_SupportedLayouts(t *testing.T) {
	const r, g, b = 0x11, 0x22, 0x33

	tests := []struct {
		name       string
		bpp        uint8
		rs, gs, bs uint8
		want       []byte
	}{
		{"32bpp RGBX", 32, 0, 8, 16, []byte{0x11, 0x22, 0x33, 0x00}},
		{"32bpp XRGB", 32, 16, 8, 0, []byte{0x33, 0x22, 0x11, 0x00}},
		{"32bpp shifted RGBX", 32, 8, 16, 24, []byte{0x00, 0x11, 0x22, 0x33}},
		{"32bpp shifted XRGB", 32, 24, 16, 8, []byte{0x00, 0x33, 0x22, 0x11}},
		{"24bpp RGB", 24, 0, 8, 16, []byte{0x11, 0x22, 0x33}},
		{"24bpp BGR", 24, 16, 8, 0, []byte{0x33, 0x22, 0x11}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Resolve(truecolorDesc(tt.bpp, tt.rs, tt.gs, tt.bs))
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if want := uint32(tt.bpp) / 8; res.BytesPerPixel != want {
				t.Fatalf("BytesPerPixel = %d, want %d", res.BytesPerPixel, want)
			}

			dst := make([]byte, res.BytesPerPixel)
			res.Encode(dst, r, g, b)
			if !bytes.Equal(dst, tt.want) {
				t.Fatalf("Encode(%#x, %#x, %#x) = % x, want % x", r, g, b, dst, tt.want)
			}
		})
	}
}

func TestResolve_CarriesGeometry(t *testing.T) {
	desc := truecolorDesc(32, 16, 8, 0)
	desc.Stride = 4096 // padded rows

	res, err := Resolve(desc)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if res.Base != desc.Base || res.Width != desc.Width || res.Height != desc.Height {
		t.Fatalf("geometry not carried through: %+v", res)
	}
	if res.Stride != 4096 {
		t.Fatalf("Stride = %d, want 4096 (reported stride must be preserved)", res.Stride)
	}
}

func TestResolve_RejectsNonTruecolor(t *testing.T) {
	for _, size := range []uint8{0, 1, 4, 5, 6, 7, 9} {
		desc := truecolorDesc(32, 16, 8, 0)
		desc.Green.MaskSize = size
		if _, err := Resolve(desc); !errors.Is(err, ErrUnsupported) {
			t.Fatalf("Resolve(mask size %d) error = %v, want ErrUnsupported", size, err)
		}
	}

	// 5:6:5 style report.
	desc := truecolorDesc(16, 11, 5, 0)
	desc.Red.MaskSize, desc.Green.MaskSize, desc.Blue.MaskSize = 5, 6, 5
	if _, err := Resolve(desc); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("Resolve(5:6:5) error = %v, want ErrUnsupported", err)
	}
}

func TestResolve_RejectsUnknownShifts(t *testing.T) {
	tests := []struct {
		bpp        uint8
		rs, gs, bs uint8
	}{
		{32, 0, 16, 8},
		{32, 8, 0, 16},
		{32, 0, 8, 24},
		{24, 8, 16, 24},
		{24, 8, 0, 16},
	}
	for _, tt := range tests {
		if _, err := Resolve(truecolorDesc(tt.bpp, tt.rs, tt.gs, tt.bs)); !errors.Is(err, ErrUnsupported) {
			t.Fatalf("Resolve(%dbpp %d/%d/%d) error = %v, want ErrUnsupported",
				tt.bpp, tt.rs, tt.gs, tt.bs, err)
		}
	}
}

func TestResolve_Rejects16bpp(t *testing.T) {
	// 16bpp truecolor layouts are deliberately unimplemented, even with
	// 8-bit channel reports.
	if _, err := Resolve(truecolorDesc(16, 0, 8, 16)); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("Resolve(16bpp) error = %v, want ErrUnsupported", err)
	}
	if _, err := Resolve(truecolorDesc(8, 0, 0, 0)); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("Resolve(8bpp) error = %v, want ErrUnsupported", err)
	}
}

func TestResolve_QuirkZeroDescriptor(t *testing.T) {
	desc := Descriptor{
		Base:         0xE0000000,
		Width:        1024,
		Height:       768,
		BitsPerPixel: 32,
		// Stride and all channel fields zero: the known buggy firmware
		// signature.
	}

	res, err := Resolve(desc)
	if err != nil {
		t.Fatalf("Resolve(quirk) error = %v", err)
	}
	if res.Stride != 4*desc.Width {
		t.Fatalf("Stride = %d, want %d (reported zero stride must be overridden)", res.Stride, 4*desc.Width)
	}
	if res.BytesPerPixel != 4 {
		t.Fatalf("BytesPerPixel = %d, want 4", res.BytesPerPixel)
	}

	// The assumed layout is XRGB: red at bit 16, green at 8, blue at 0.
	dst := make([]byte, 4)
	res.Encode(dst, 0xAA, 0xBB, 0xCC)
	if want := []byte{0xCC, 0xBB, 0xAA, 0x00}; !bytes.Equal(dst, want) {
		t.Fatalf("quirk Encode = % x, want % x", dst, want)
	}
}

func TestResolve_QuirkStrideOverflow(t *testing.T) {
	// At the widest representable quirk surface the stride computation must
	// not wrap; one pixel beyond it must be rejected.
	desc := Descriptor{Width: maxQuirkWidth, Height: 1, BitsPerPixel: 32}
	res, err := Resolve(desc)
	if err != nil {
		t.Fatalf("Resolve(width=max) error = %v", err)
	}
	if res.Stride != 4*maxQuirkWidth {
		t.Fatalf("Stride = %d, want %d", res.Stride, 4*maxQuirkWidth)
	}

	desc.Width = maxQuirkWidth + 1
	if _, err := Resolve(desc); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("Resolve(width=max+1) error = %v, want ErrUnsupported", err)
	}
}

func TestResolve_QuirkRequiresFullSignature(t *testing.T) {
	// A zeroed channel description with a non-zero stride is not the quirk;
	// it is a plain unsupported (likely indexed) mode.
	desc := Descriptor{Width: 640, Height: 480, BitsPerPixel: 32, Stride: 2560}
	if _, err := Resolve(desc); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("Resolve(zero channels, stride set) error = %v, want ErrUnsupported", err)
	}

	// Same all-zero signature at 24bpp is not the quirk either.
	desc = Descriptor{Width: 640, Height: 480, BitsPerPixel: 24}
	if _, err := Resolve(desc); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("Resolve(zero channels, 24bpp) error = %v, want ErrUnsupported", err)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	layouts := []struct {
		bpp        uint8
		rs, gs, bs uint8
	}{
		{32, 0, 8, 16},
		{32, 16, 8, 0},
		{32, 8, 16, 24},
		{32, 24, 16, 8},
		{24, 0, 8, 16},
		{24, 16, 8, 0},
	}
	triples := [][3]uint8{
		{0x00, 0x00, 0x00},
		{0xFF, 0xFF, 0xFF},
		{0x12, 0x34, 0x56},
		{0xFF, 0x00, 0x7F},
	}

	for _, l := range layouts {
		res, err := Resolve(truecolorDesc(l.bpp, l.rs, l.gs, l.bs))
		if err != nil {
			t.Fatalf("Resolve(%dbpp %d/%d/%d) error = %v", l.bpp, l.rs, l.gs, l.bs, err)
		}
		for _, tr := range triples {
			dst := make([]byte, res.BytesPerPixel)
			res.Encode(dst, tr[0], tr[1], tr[2])

			var word uint32
			for i := int(res.BytesPerPixel) - 1; i >= 0; i-- {
				word = word<<8 | uint32(dst[i])
			}
			r := uint8(word >> l.rs)
			g := uint8(word >> l.gs)
			b := uint8(word >> l.bs)
			if r != tr[0] || g != tr[1] || b != tr[2] {
				t.Fatalf("%dbpp %d/%d/%d: round trip of %v = (%#x, %#x, %#x)",
					l.bpp, l.rs, l.gs, l.bs, tr, r, g, b)
			}
		}
	}
}
