//go:build !tinygo

package hal

import (
	"sync"

	"github.com/cockroachdb/errors"

	"photon/video/pixfmt"
)

// hostAdapterBase is the fake physical address the simulated card reports
// for its linear framebuffer.
const hostAdapterBase = 0xD0000000

// HostAdapter simulates a video card on a development host: it reports a
// firmware-style framebuffer descriptor and owns the "device memory" behind
// it. The scanlines carry padding so stride handling is exercised the same
// way real hardware would.
type HostAdapter struct {
	mu   sync.Mutex
	desc pixfmt.Descriptor
	mem  []byte
}

// NewHostAdapter creates a simulated 32bpp XRGB adapter at the given
// resolution.
func NewHostAdapter(width, height int) *HostAdapter {
	w := uint32(width)
	h := uint32(height)
	stride := w*4 + 64 // padded rows, as padded VESA modes report
	return &HostAdapter{
		desc: pixfmt.Descriptor{
			Base:         hostAdapterBase,
			Width:        w,
			Height:       h,
			BitsPerPixel: 32,
			Stride:       stride,
			Red:          pixfmt.Channel{MaskSize: 8, Shift: 16},
			Green:        pixfmt.Channel{MaskSize: 8, Shift: 8},
			Blue:         pixfmt.Channel{MaskSize: 8, Shift: 0},
		},
		mem: make([]byte, int(stride)*height),
	}
}

// Descriptor returns the adapter's raw framebuffer description.
func (a *HostAdapter) Descriptor() pixfmt.Descriptor { return a.desc }

// Map implements RegionMapper over the adapter's owned device memory.
func (a *HostAdapter) Map(base uint64, length int) ([]byte, error) {
	if base != a.desc.Base {
		return nil, errors.Wrapf(ErrRegionFault, "base %#x outside adapter aperture", base)
	}
	if length <= 0 || length > len(a.mem) {
		return nil, errors.Wrapf(ErrRegionFault, "length %d exceeds aperture of %d bytes", length, len(a.mem))
	}
	return a.mem[:length], nil
}

// Snapshot copies the current device memory into dst.
func (a *HostAdapter) Snapshot(dst []byte) {
	a.mu.Lock()
	defer a.mu.Unlock()
	copy(dst, a.mem)
}
