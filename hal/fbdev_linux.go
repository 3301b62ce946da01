//go:build linux && !tinygo

package hal

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"golang.org/x/sys/unix"

	"photon/video/pixfmt"
)

// FBDev is a Linux framebuffer device (/dev/fbN). It doubles as the
// RegionMapper for its own aperture: the mmap established at open time is
// the accessibility guarantee later flushes rely on.
type FBDev struct {
	fd    int
	fix   FBFixScreeninfo
	vinfo FBVarScreeninfo
	mmap  []byte
}

// OpenFBDev opens the framebuffer device, queries both screeninfo blocks and
// maps the whole aperture.
func OpenFBDev(dev string) (*FBDev, error) {
	fd, err := unix.Open(dev, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", dev)
	}
	d := &FBDev{fd: fd}

	if err := d.ioctl(fbioGetFScreeninfo, unsafe.Pointer(&d.fix)); err != nil {
		unix.Close(fd)
		return nil, errors.Wrap(err, "FBIOGET_FSCREENINFO")
	}
	if err := d.ioctl(fbioGetVScreeninfo, unsafe.Pointer(&d.vinfo)); err != nil {
		unix.Close(fd)
		return nil, errors.Wrap(err, "FBIOGET_VSCREENINFO")
	}

	d.mmap, err = unix.Mmap(fd, 0, int(d.fix.SmemLen), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		unix.Close(fd)
		return nil, errors.Wrap(err, "mmap framebuffer")
	}
	return d, nil
}

func (d *FBDev) ioctl(req uintptr, arg unsafe.Pointer) error {
	_, _, eno := unix.Syscall(unix.SYS_IOCTL, uintptr(d.fd), req, uintptr(arg))
	if eno != 0 {
		return eno
	}
	return nil
}

// Descriptor returns the raw framebuffer description the kernel reported.
func (d *FBDev) Descriptor() pixfmt.Descriptor {
	return FBDescriptor(d.fix, d.vinfo)
}

// Map implements RegionMapper over the device's mmapped aperture. The
// requested range must fall inside the mapping; fbdev reports the aperture
// base as a physical address, so only the length is meaningful here.
func (d *FBDev) Map(base uint64, length int) ([]byte, error) {
	if base != d.fix.SmemStart {
		return nil, errors.Wrapf(ErrRegionFault, "base %#x outside device aperture at %#x", base, d.fix.SmemStart)
	}
	if length <= 0 || length > len(d.mmap) {
		return nil, errors.Wrapf(ErrRegionFault, "length %d exceeds %d byte aperture", length, len(d.mmap))
	}
	return d.mmap[:length], nil
}

// Close unmaps the aperture and closes the device.
func (d *FBDev) Close() error {
	e1 := unix.Munmap(d.mmap)
	if e2 := unix.Close(d.fd); e2 != nil {
		return e2
	}
	return e1
}
