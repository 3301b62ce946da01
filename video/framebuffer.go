// Package video owns the bottom-most layer of display output: it turns an
// array of abstract colors into the bytes a video controller understands.
//
// A Framebuffer is created once during display bring-up from a raw hardware
// descriptor and lives for the lifetime of the system. Upper layers write
// colors into its backing buffer and call Flush to push a frame out; the
// package draws nothing itself.
package video

import (
	"github.com/cockroachdb/errors"

	"photon/gfx"
	"photon/hal"
	"photon/video/pixfmt"
)

// MaxDim is the largest width or height the display-properties domain can
// represent.
const MaxDim = 0xFFFF

// ErrResolutionRange reports a resolved width or height that does not fit
// the display-properties domain.
var ErrResolutionRange = errors.New("video: resolution exceeds representable range")

// ErrStrideRange reports a device stride shorter than one row of pixels.
// Flushing through such a stride would write past the verified device range.
var ErrStrideRange = errors.New("video: stride smaller than one pixel row")

// allocColorsFn allocates the backing buffer. A function var so tests can
// observe allocation order and inject failure.
var allocColorsFn = func(n int) ([]gfx.Color, error) {
	return make([]gfx.Color, n), nil
}

// MemoryKind tells upper layers how a display's pixels are addressed.
type MemoryKind uint8

const (
	// MemoryBuffered displays are written through a CPU-side backing
	// buffer that a later Flush copies out to the device.
	MemoryBuffered MemoryKind = iota + 1
)

// BufferView exposes the backing buffer to upper layers in the abstract
// color domain. Pix is row-major with a row length of exactly W (pixels,
// not bytes: scanline padding is a device-side concern).
type BufferView struct {
	W, H int
	Pix  []gfx.Color
}

// Set writes one pixel; out-of-bounds coordinates are ignored.
func (v BufferView) Set(x, y int, c gfx.Color) {
	if x < 0 || y < 0 || x >= v.W || y >= v.H {
		return
	}
	v.Pix[y*v.W+x] = c
}

// At reads one pixel; out-of-bounds coordinates return the zero color.
func (v BufferView) At(x, y int) gfx.Color {
	if x < 0 || y < 0 || x >= v.W || y >= v.H {
		return gfx.Color{}
	}
	return v.Pix[y*v.W+x]
}

// Fill sets every pixel of the view.
func (v BufferView) Fill(c gfx.Color) {
	for i := range v.Pix {
		v.Pix[i] = c
	}
}

// Properties describes a display to the surrounding driver framework.
type Properties struct {
	Width, Height uint16

	// Stride is the backing-buffer row length in pixels. It equals Width:
	// upper layers address colors, not device bytes.
	Stride uint16

	Kind   MemoryKind
	Buffer BufferView
}

// Config carries construction-time policy for a Framebuffer.
type Config struct {
	// Border is the color the backing buffer is initialized to before any
	// content is drawn. Zero value paints black.
	Border gfx.Color

	// Splash, if set, paints the first visible frame into the freshly
	// initialized backing buffer, before the construction-time flush.
	Splash func(BufferView)

	Logger hal.Logger
}

// Framebuffer drives one linear-framebuffer display.
//
// The backing buffer is the single deliberately shared resource in the
// model: upper layers mutate it between flushes, Flush reads it. The driver
// takes no lock of its own; callers must ensure a single display owner (or
// bring their own serialization), otherwise a concurrent flush observes an
// unspecified mix of old and new pixels.
type Framebuffer struct {
	res    pixfmt.Resolved
	dev    []byte // mapped device memory, verified accessible at construction
	buf    []gfx.Color
	width  uint16
	height uint16
	border gfx.Color
}

// New resolves a raw hardware descriptor and brings up a framebuffer driver
// on it.
//
// The gates run in a fixed order: format resolution, resolution range,
// stride consistency, device memory accessibility, backing buffer
// allocation. Nothing is mapped or allocated for a descriptor whose format
// is unsupported. On success the initial frame (border fill plus optional
// splash) has already been flushed to the device.
func New(desc pixfmt.Descriptor, mapper hal.RegionMapper, cfg Config) (*Framebuffer, error) {
	res, err := pixfmt.Resolve(desc)
	if err != nil {
		return nil, errors.Wrap(err, "video: resolve framebuffer format")
	}

	if res.Width > MaxDim || res.Height > MaxDim {
		return nil, errors.Wrapf(ErrResolutionRange, "%dx%d", res.Width, res.Height)
	}

	// Stride is hardware-reported and untrusted. An undersized stride would
	// make Flush write row pixels beyond [base, base+stride*height), the
	// only range the accessibility gate below ever verifies.
	if rowBytes := res.Width * res.BytesPerPixel; res.Stride < rowBytes {
		return nil, errors.Wrapf(ErrStrideRange, "stride %d for %d byte rows", res.Stride, rowBytes)
	}

	// The only accessibility check for the device range. Every unchecked
	// write Flush ever performs is justified by this succeeding.
	devLen := int(res.Stride) * int(res.Height)
	dev, err := mapper.Map(res.Base, devLen)
	if err != nil {
		return nil, errors.Wrap(err, "video: map device memory")
	}

	buf, err := allocColorsFn(int(res.Width) * int(res.Height))
	if err != nil {
		return nil, errors.Wrap(err, "video: allocate backing buffer")
	}

	fb := &Framebuffer{
		res:    res,
		dev:    dev,
		buf:    buf,
		width:  uint16(res.Width),
		height: uint16(res.Height),
		border: cfg.Border,
	}

	view := fb.view()
	view.Fill(fb.border)
	if cfg.Splash != nil {
		cfg.Splash(view)
	}
	fb.Flush()

	if cfg.Logger != nil {
		cfg.Logger.WriteLineString(describe(res))
	}
	return fb, nil
}

// Properties reports how upper layers should address this display.
func (fb *Framebuffer) Properties() Properties {
	return Properties{
		Width:  fb.width,
		Height: fb.height,
		Stride: fb.width,
		Kind:   MemoryBuffered,
		Buffer: fb.view(),
	}
}

// Flush encodes the backing buffer into device memory, row-major, exactly
// once per pixel. Rows advance by the device stride, never by width times
// pixel size: scanlines may be padded.
//
// Infallible by contract; the destination range was verified at
// construction. Safe to call at arbitrary frequency, does not allocate.
func (fb *Framebuffer) Flush() {
	var (
		enc     = fb.res.Encode
		dev     = fb.dev
		bpp     = int(fb.res.BytesPerPixel)
		stride  = int(fb.res.Stride)
		width   = int(fb.width)
		rowBase = 0
		off     = 0
		col     = 0
	)
	for _, c := range fb.buf {
		r, g, b := c.RGB888()
		enc(dev[rowBase+off:], r, g, b)
		off += bpp
		col++
		if col == width {
			col = 0
			off = 0
			rowBase += stride
		}
	}
}

func (fb *Framebuffer) view() BufferView {
	return BufferView{W: int(fb.width), H: int(fb.height), Pix: fb.buf}
}
