package hal

import "photon/video/pixfmt"

// Linux framebuffer ioctl numbers and screeninfo layouts (uapi linux/fb.h).
// The structs are declared portably so descriptor conversion stays testable
// off-Linux; only the syscall plumbing is build-tagged.

const (
	fbioGetVScreeninfo = 0x4600
	fbioGetFScreeninfo = 0x4602
)

// FBBitfield describes one color channel of a fbdev visual.
type FBBitfield struct {
	Offset   uint32 // bit position of the channel's LSB
	Length   uint32 // channel width in bits
	MSBRight uint32
}

// FBFixScreeninfo mirrors struct fb_fix_screeninfo.
type FBFixScreeninfo struct {
	ID         [16]byte
	SmemStart  uint64 // physical start of framebuffer memory
	SmemLen    uint32
	Type       uint32
	TypeAux    uint32
	Visual     uint32
	XPanStep   uint16
	YPanStep   uint16
	YWrapStep  uint16
	_          uint16
	LineLength uint32 // bytes per scanline
	MmioStart  uint64
	MmioLen    uint32
	Accel      uint32
	Caps       uint16
	_          [2]uint16
}

// FBVarScreeninfo mirrors struct fb_var_screeninfo.
type FBVarScreeninfo struct {
	XRes         uint32
	YRes         uint32
	XResVirtual  uint32
	YResVirtual  uint32
	XOffset      uint32
	YOffset      uint32
	BitsPerPixel uint32
	Grayscale    uint32
	Red          FBBitfield
	Green        FBBitfield
	Blue         FBBitfield
	Transp       FBBitfield
	NonStd       uint32
	Activate     uint32
	Height       uint32
	Width        uint32
	AccelFlags   uint32
	PixClock     uint32
	LeftMargin   uint32
	RightMargin  uint32
	UpperMargin  uint32
	LowerMargin  uint32
	HSyncLen     uint32
	VSyncLen     uint32
	Sync         uint32
	VMode        uint32
	Rotate       uint32
	Colorspace   uint32
	_            [4]uint32
}

// FBDescriptor assembles a raw framebuffer descriptor from the two fbdev
// info blocks, exactly as the kernel reported them.
func FBDescriptor(fix FBFixScreeninfo, v FBVarScreeninfo) pixfmt.Descriptor {
	return pixfmt.Descriptor{
		Base:         fix.SmemStart,
		Width:        v.XRes,
		Height:       v.YRes,
		BitsPerPixel: uint8(v.BitsPerPixel),
		Stride:       fix.LineLength,
		Red:          pixfmt.Channel{MaskSize: uint8(v.Red.Length), Shift: uint8(v.Red.Offset)},
		Green:        pixfmt.Channel{MaskSize: uint8(v.Green.Length), Shift: uint8(v.Green.Offset)},
		Blue:         pixfmt.Channel{MaskSize: uint8(v.Blue.Length), Shift: uint8(v.Blue.Offset)},
	}
}
