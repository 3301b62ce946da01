// Package vbe parses VESA BIOS Extension information blocks for display
// bring-up diagnostics and descriptor assembly.
//
// The blocks arrive as raw byte images (multiboot forwards them verbatim
// from the video BIOS); nothing here talks to hardware.
package vbe

import (
	"encoding/binary"
	"fmt"

	"github.com/cockroachdb/errors"

	"photon/video/pixfmt"
)

var le = binary.LittleEndian

// Mode attribute bits (VBE 3.0 ModeInfoBlock.ModeAttributes).
const (
	AttrSupported   = 1 << 0
	AttrGraphics    = 1 << 4
	AttrLinearFrame = 1 << 7
)

// Memory models reported by the video BIOS.
const (
	MemPackedPixel = 0x04
	MemDirectColor = 0x06
)

// ControllerInfo is the parsed VBE controller information block header.
type ControllerInfo struct {
	Version     uint16
	TotalMemory uint32 // bytes
}

// ErrBadSignature reports a controller block that does not start with the
// "VESA" signature.
var ErrBadSignature = errors.New("vbe: bad controller info signature")

// ParseControllerInfo reads the 512-byte controller information block.
func ParseControllerInfo(block []byte) (ControllerInfo, error) {
	if len(block) < 20 {
		return ControllerInfo{}, errors.Newf("vbe: controller info truncated at %d bytes", len(block))
	}
	if string(block[0:4]) != "VESA" {
		return ControllerInfo{}, errors.Wrapf(ErrBadSignature, "%q", block[0:4])
	}
	return ControllerInfo{
		Version:     le.Uint16(block[4:]),
		TotalMemory: uint32(le.Uint16(block[18:])) * 64 * 1024,
	}, nil
}

// ModeInfo is the parsed VBE mode information block.
type ModeInfo struct {
	Attributes  uint16
	Pitch       uint16
	Width       uint16
	Height      uint16
	Bpp         uint8
	MemoryModel uint8

	RedMaskSize, RedPos     uint8
	GreenMaskSize, GreenPos uint8
	BlueMaskSize, BluePos   uint8

	PhysBase uint32
}

// ParseModeInfo reads the 256-byte mode information block.
func ParseModeInfo(block []byte) (ModeInfo, error) {
	if len(block) < 44 {
		return ModeInfo{}, errors.Newf("vbe: mode info truncated at %d bytes", len(block))
	}
	return ModeInfo{
		Attributes:    le.Uint16(block[0:]),
		Pitch:         le.Uint16(block[16:]),
		Width:         le.Uint16(block[18:]),
		Height:        le.Uint16(block[20:]),
		Bpp:           block[25],
		MemoryModel:   block[27],
		RedMaskSize:   block[31],
		RedPos:        block[32],
		GreenMaskSize: block[33],
		GreenPos:      block[34],
		BlueMaskSize:  block[35],
		BluePos:       block[36],
		PhysBase:      le.Uint32(block[40:]),
	}, nil
}

// Usable reports whether the mode is a supported graphics mode with a
// linear framebuffer.
func (m ModeInfo) Usable() bool {
	const need = AttrSupported | AttrGraphics | AttrLinearFrame
	return m.Attributes&need == need
}

// Descriptor assembles the raw framebuffer descriptor for this mode,
// exactly as the BIOS reported it. Resolution of the layout is pixfmt's
// job; this carries even nonsensical reports through untouched.
func (m ModeInfo) Descriptor() pixfmt.Descriptor {
	return pixfmt.Descriptor{
		Base:         uint64(m.PhysBase),
		Width:        uint32(m.Width),
		Height:       uint32(m.Height),
		BitsPerPixel: m.Bpp,
		Stride:       uint32(m.Pitch),
		Red:          pixfmt.Channel{MaskSize: m.RedMaskSize, Shift: m.RedPos},
		Green:        pixfmt.Channel{MaskSize: m.GreenMaskSize, Shift: m.GreenPos},
		Blue:         pixfmt.Channel{MaskSize: m.BlueMaskSize, Shift: m.BluePos},
	}
}

// String renders a one-line summary for the boot log.
func (m ModeInfo) String() string {
	return fmt.Sprintf("%dx%dx%d pitch=%d model=%#x attr=%#x base=%#x",
		m.Width, m.Height, m.Bpp, m.Pitch, m.MemoryModel, m.Attributes, m.PhysBase)
}
