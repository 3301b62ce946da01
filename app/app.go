//go:build !tinygo

// Package app is the demo "upper layer": it owns the display, writes colors
// into the backing buffer between flushes and calls Flush once per tick.
// It exists to exercise the full pipeline on a host; a kernel would hang
// its console or compositor here instead.
package app

import (
	"photon/gfx"
	"photon/hal"
	"photon/splash"
	"photon/video"
)

// Config selects demo behavior.
type Config struct {
	// Pattern animates a test pattern after the splash instead of leaving
	// the splash on screen.
	Pattern bool
}

// App drives one framebuffer.
type App struct {
	fb   *video.Framebuffer
	cfg  Config
	tick uint64
	ramp []gfx.Color
}

// New probes the adapter, brings up the framebuffer driver (splash
// included) and returns the per-tick step function.
func New(adapter *hal.HostAdapter, log hal.Logger, cfg Config) (*App, error) {
	fb, err := video.Detect(
		video.Config{
			Border: gfx.BootBorder,
			Splash: splash.Paint,
			Logger: log,
		},
		func() (video.Source, error) {
			return video.Source{Name: "host-adapter", Desc: adapter.Descriptor(), Mapper: adapter}, nil
		},
	)
	if err != nil {
		return nil, err
	}
	return &App{
		fb:   fb,
		cfg:  cfg,
		ramp: gfx.Gradient(gfx.RGB(0x20, 0x60, 0xC0), gfx.RGB(0xE0, 0x40, 0x30), 256),
	}, nil
}

// Step runs once per tick: mutate the backing buffer, then flush.
func (a *App) Step() error {
	a.tick++
	if a.cfg.Pattern {
		a.drawPattern()
	}
	a.fb.Flush()
	return nil
}

// drawPattern writes a moving color ramp. Plain backing-buffer writes; the
// driver neither knows nor cares what the content is.
func (a *App) drawPattern() {
	view := a.fb.Properties().Buffer
	phase := int(a.tick)
	for y := 0; y < view.H; y++ {
		row := view.Pix[y*view.W : (y+1)*view.W]
		for x := range row {
			row[x] = a.ramp[(x+y+phase)&0xFF]
		}
	}
}
