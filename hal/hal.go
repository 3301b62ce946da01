// Package hal is the only contact point between the display subsystem and
// the platform: log sinks, and the primitive that turns a firmware-reported
// physical memory range into addressable bytes.
package hal

import "github.com/cockroachdb/errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// ErrRegionFault reports a device memory range that the platform cannot
// guarantee to be mapped and safe to read/write. Fatal to display bring-up:
// every later framebuffer write is unchecked and relies on this guarantee.
var ErrRegionFault = errors.New("hal: device memory region not accessible")

// RegionMapper verifies and maps a device memory range.
//
// Map must guarantee that the returned slice aliases [base, base+length) of
// the device's address space and that every byte of it is safe to read and
// write for the lifetime of the caller. A mapper that cannot give that
// guarantee must fail with ErrRegionFault, never return a partial range.
type RegionMapper interface {
	Map(base uint64, length int) ([]byte, error)
}

// NopLogger discards all lines. Useful for tests and tools.
type NopLogger struct{}

func (NopLogger) WriteLineString(string) {}
func (NopLogger) WriteLineBytes([]byte)  {}
