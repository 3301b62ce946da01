// Package multiboot reads the framebuffer description out of a multiboot2
// boot information block.
//
// Parsing works over a byte image of the info block rather than raw
// pointers, so descriptor assembly is testable and the single unsafe step
// (capturing the block the bootloader left in memory) stays with the
// platform layer.
package multiboot

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"

	"photon/video/pixfmt"
)

type tagType uint32

const (
	tagEnd             tagType = 0
	tagVBEInfo         tagType = 7
	tagFramebufferInfo tagType = 8
)

// FramebufferType is the multiboot framebuffer_type field.
type FramebufferType uint8

const (
	// FramebufferIndexed is a palette mode; no RGB descriptor exists.
	FramebufferIndexed FramebufferType = iota

	// FramebufferRGB is direct color with per-channel field positions.
	FramebufferRGB

	// FramebufferEGAText is the EGA text mode; width/height are characters.
	FramebufferEGAText
)

// ErrNoFramebufferTag reports an info block without a framebuffer tag: the
// bootloader did not initialize a display.
var ErrNoFramebufferTag = errors.New("multiboot: no framebuffer info tag")

// ErrNotRGB reports a framebuffer tag whose type carries no channel layout
// (indexed palette or EGA text).
var ErrNotRGB = errors.New("multiboot: framebuffer is not direct RGB")

var le = binary.LittleEndian

// Info is a parsed multiboot2 boot information block.
type Info struct {
	image []byte
}

// Parse validates the info block header against the image length.
func Parse(image []byte) (*Info, error) {
	if len(image) < 8 {
		return nil, errors.New("multiboot: info block shorter than header")
	}
	total := le.Uint32(image)
	if int(total) > len(image) {
		return nil, errors.Newf("multiboot: header claims %d bytes, image has %d", total, len(image))
	}
	return &Info{image: image[:total]}, nil
}

// Framebuffer returns the raw framebuffer descriptor the bootloader
// reported. The channel layout is only present for FramebufferRGB; indexed
// and text modes fail with ErrNotRGB.
func (inf *Info) Framebuffer() (pixfmt.Descriptor, FramebufferType, error) {
	tag, err := inf.findTag(tagFramebufferInfo)
	if err != nil {
		return pixfmt.Descriptor{}, 0, err
	}
	// addr u64, pitch u32, width u32, height u32, bpp u8, type u8,
	// reserved u16, then type-specific color info.
	if len(tag) < 22 {
		return pixfmt.Descriptor{}, 0, errors.Newf("multiboot: framebuffer tag truncated at %d bytes", len(tag))
	}

	fbType := FramebufferType(tag[21])
	desc := pixfmt.Descriptor{
		Base:         le.Uint64(tag[0:]),
		Stride:       le.Uint32(tag[8:]),
		Width:        le.Uint32(tag[12:]),
		Height:       le.Uint32(tag[16:]),
		BitsPerPixel: tag[20],
	}

	if fbType != FramebufferRGB {
		return desc, fbType, errors.Wrapf(ErrNotRGB, "framebuffer type %d", fbType)
	}

	// RGB color info: red position/size, green position/size, blue
	// position/size, one byte each.
	if len(tag) < 30 {
		return pixfmt.Descriptor{}, fbType, errors.Newf("multiboot: RGB color info truncated at %d bytes", len(tag))
	}
	desc.Red = pixfmt.Channel{Shift: tag[24], MaskSize: tag[25]}
	desc.Green = pixfmt.Channel{Shift: tag[26], MaskSize: tag[27]}
	desc.Blue = pixfmt.Channel{Shift: tag[28], MaskSize: tag[29]}
	return desc, fbType, nil
}

// VBE returns the raw VBE tag payload (control info, mode info and the
// current mode number) if the bootloader provided one.
func (inf *Info) VBE() (mode uint16, controlInfo, modeInfo []byte, err error) {
	tag, err := inf.findTag(tagVBEInfo)
	if err != nil {
		return 0, nil, nil, err
	}
	// mode u16, interface seg/off/len u16 each, control info 512 bytes,
	// mode info 256 bytes.
	if len(tag) < 8+512+256 {
		return 0, nil, nil, errors.Newf("multiboot: VBE tag truncated at %d bytes", len(tag))
	}
	return le.Uint16(tag[0:]), tag[8 : 8+512], tag[8+512 : 8+512+256], nil
}

// findTag walks the 8-byte aligned tag chain and returns the payload of the
// first tag of the wanted type, without its header.
func (inf *Info) findTag(want tagType) ([]byte, error) {
	off := 8
	for off+8 <= len(inf.image) {
		typ := tagType(le.Uint32(inf.image[off:]))
		size := int(le.Uint32(inf.image[off+4:]))
		if typ == tagEnd {
			break
		}
		if size < 8 || off+size > len(inf.image) {
			return nil, errors.Newf("multiboot: corrupt tag (type %d, size %d) at offset %d", typ, size, off)
		}
		if typ == want {
			return inf.image[off+8 : off+size], nil
		}
		off += (size + 7) &^ 7
	}
	if want == tagFramebufferInfo {
		return nil, ErrNoFramebufferTag
	}
	return nil, errors.Newf("multiboot: tag %d not present", want)
}
