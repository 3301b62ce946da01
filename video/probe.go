package video

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"photon/hal"
	"photon/video/pixfmt"
)

// Source is one probed display surface: the raw descriptor a firmware or
// platform backend reported, plus the mapper that can make its memory
// addressable.
type Source struct {
	Name   string
	Desc   pixfmt.Descriptor
	Mapper hal.RegionMapper
}

// ProbeFn discovers a display surface. A probe that finds no usable
// hardware returns an error; probing order is the caller's policy.
type ProbeFn func() (Source, error)

// Detect tries each probe in order and brings up a driver on the first
// surface that resolves and constructs. Every attempt is logged through
// cfg.Logger so an unsupported mode is diagnosable from the boot log.
func Detect(cfg Config, probes ...ProbeFn) (*Framebuffer, error) {
	log := cfg.Logger
	if log == nil {
		log = hal.NopLogger{}
		cfg.Logger = log
	}

	var firstErr error
	for _, probe := range probes {
		src, err := probe()
		if err != nil {
			log.WriteLineString("[video] probe: " + err.Error())
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		fb, err := New(src.Desc, src.Mapper, cfg)
		if err != nil {
			log.WriteLineString(fmt.Sprintf("[video] %s: %v", src.Name, err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		log.WriteLineString(fmt.Sprintf("[video] %s: initialized", src.Name))
		return fb, nil
	}

	if firstErr == nil {
		firstErr = errors.New("video: no display hardware found")
	}
	return nil, firstErr
}

func describe(res pixfmt.Resolved) string {
	return fmt.Sprintf("[video] %dx%d %dbpp, stride %d bytes, base %#x",
		res.Width, res.Height, res.BytesPerPixel*8, res.Stride, res.Base)
}
