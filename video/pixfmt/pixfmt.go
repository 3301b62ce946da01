// Package pixfmt negotiates raw hardware pixel layouts.
//
// A firmware-reported framebuffer description is resolved once, at display
// bring-up, into a concrete per-pixel encoding routine. All layout decisions
// (pixel word width, channel bit positions) are frozen into that routine so
// the flush loop never branches on format.
package pixfmt

import "github.com/cockroachdb/errors"

// ErrUnsupported reports a pixel layout with no matching encoder: wrong
// per-channel depth, unrecognized shift combination, or an unsupported
// bits-per-pixel value (indexed, palette and 16bpp modes included).
var ErrUnsupported = errors.New("pixfmt: unsupported framebuffer layout")

// Channel describes where one color channel lives inside a packed pixel word.
type Channel struct {
	// MaskSize is the number of bits the channel occupies.
	MaskSize uint8
	// Shift is the bit position of the channel's least significant bit.
	Shift uint8
}

// Descriptor is the raw, untrusted description of a physical display surface
// as reported by firmware or a bootloader. Nothing in it may be assumed
// valid before Resolve has accepted it.
type Descriptor struct {
	// Base is the physical address of scanline 0.
	Base uint64

	// Width and Height are the resolution in pixels, hardware-reported and
	// unchecked.
	Width, Height uint32

	// BitsPerPixel is the total bit width of one pixel.
	BitsPerPixel uint8

	// Stride is the byte distance between the starts of two consecutive
	// scanlines. It may exceed Width*bytes-per-pixel; it must never be
	// assumed equal to it.
	Stride uint32

	Red, Green, Blue Channel
}

// EncodeFunc writes exactly one pixel at dst[0:] in the layout chosen at
// resolve time: the little-endian word (r<<rs)|(g<<gs)|(b<<bs), 3 bytes for
// 24bpp and 4 for 32bpp.
//
// The write is unchecked for speed. Callers own bounds: dst must have at
// least bytes-per-pixel bytes of verified-accessible memory behind it.
type EncodeFunc func(dst []byte, r, g, b uint8)

// Resolved is a validated surface description plus its frozen encoder.
type Resolved struct {
	Encode EncodeFunc

	Base          uint64
	Stride        uint32
	Width, Height uint32
	BytesPerPixel uint32
}

// Resolve matches desc against the known truecolor layouts.
//
// The first rule handles a known firmware bug: one legacy video BIOS reports
// an all-zero channel description and a zero stride for what is in fact a
// valid 32bpp linear framebuffer. That signature is assumed to be the de
// facto XRGB layout (shifts 16/8/0) with the stride recomputed from the
// width; the reported zero stride is part of the bug and is not trusted.
func Resolve(desc Descriptor) (Resolved, error) {
	if quirkZeroDescriptor(desc) {
		// The recomputed stride must stay representable.
		if desc.Width > maxQuirkWidth {
			return Resolved{}, errors.Wrapf(ErrUnsupported,
				"zero-channel 32bpp report with width %d", desc.Width)
		}
		return Resolved{
			Encode:        encoder32(16, 8, 0),
			Base:          desc.Base,
			Stride:        4 * desc.Width,
			Width:         desc.Width,
			Height:        desc.Height,
			BytesPerPixel: 4,
		}, nil
	}

	if desc.Red.MaskSize != 8 || desc.Green.MaskSize != 8 || desc.Blue.MaskSize != 8 {
		return Resolved{}, errors.Wrapf(ErrUnsupported,
			"channel mask sizes %d/%d/%d (need 8/8/8 truecolor)",
			desc.Red.MaskSize, desc.Green.MaskSize, desc.Blue.MaskSize)
	}

	rs, gs, bs := desc.Red.Shift, desc.Green.Shift, desc.Blue.Shift

	var enc EncodeFunc
	switch desc.BitsPerPixel {
	case 32:
		switch [3]uint8{rs, gs, bs} {
		case [3]uint8{0, 8, 16}, [3]uint8{16, 8, 0}, [3]uint8{8, 16, 24}, [3]uint8{24, 16, 8}:
			enc = encoder32(rs, gs, bs)
		}
	case 24:
		switch [3]uint8{rs, gs, bs} {
		case [3]uint8{0, 8, 16}, [3]uint8{16, 8, 0}:
			enc = encoder24(rs, gs, bs)
		}
	}
	if enc == nil {
		return Resolved{}, errors.Wrapf(ErrUnsupported,
			"%dbpp with shifts %d/%d/%d", desc.BitsPerPixel, rs, gs, bs)
	}

	return Resolved{
		Encode:        enc,
		Base:          desc.Base,
		Stride:        desc.Stride,
		Width:         desc.Width,
		Height:        desc.Height,
		BytesPerPixel: uint32(desc.BitsPerPixel) / 8,
	}, nil
}

// maxQuirkWidth is the widest surface whose 4-byte-pixel stride fits uint32.
const maxQuirkWidth = ^uint32(0) / 4

// quirkZeroDescriptor detects the buggy all-zero firmware report described
// in Resolve.
func quirkZeroDescriptor(d Descriptor) bool {
	return d.BitsPerPixel == 32 &&
		d.Stride == 0 &&
		d.Red == Channel{} && d.Green == Channel{} && d.Blue == Channel{}
}

func encoder32(rs, gs, bs uint8) EncodeFunc {
	return func(dst []byte, r, g, b uint8) {
		v := uint32(r)<<rs | uint32(g)<<gs | uint32(b)<<bs
		dst[0] = byte(v)
		dst[1] = byte(v >> 8)
		dst[2] = byte(v >> 16)
		dst[3] = byte(v >> 24)
	}
}

func encoder24(rs, gs, bs uint8) EncodeFunc {
	return func(dst []byte, r, g, b uint8) {
		v := uint32(r)<<rs | uint32(g)<<gs | uint32(b)<<bs
		dst[0] = byte(v)
		dst[1] = byte(v >> 8)
		dst[2] = byte(v >> 16)
	}
}
