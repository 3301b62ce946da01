package hal

import (
	"unsafe"

	"github.com/cockroachdb/errors"
)

// IdentityMapper maps device memory on platforms where the firmware-reported
// physical framebuffer range is identity-mapped and writable (multiboot
// bring-up with a flat mapping).
//
// This is the one place in the subsystem where correctness depends on a
// guarantee the compiler cannot check: the caller asserts, by choosing this
// mapper, that [base, base+length) is mapped read/write for the lifetime of
// the display. Everything downstream (the unchecked per-pixel encoder
// writes) leans on that single assertion. On hosted platforms use a real
// mapper instead; this one can only reject obviously bogus ranges.
type IdentityMapper struct{}

func (IdentityMapper) Map(base uint64, length int) ([]byte, error) {
	if base == 0 {
		return nil, errors.Wrap(ErrRegionFault, "null framebuffer base")
	}
	if length <= 0 {
		return nil, errors.Wrapf(ErrRegionFault, "invalid region length %d", length)
	}
	if uint64(uintptr(base)) != base {
		return nil, errors.Wrapf(ErrRegionFault, "base %#x does not fit the address space", base)
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(uintptr(base))), length), nil
}
