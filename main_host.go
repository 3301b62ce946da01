//go:build !tinygo

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"photon/app"
	"photon/hal"
)

func main() {
	var cfg hal.HeadlessConfig
	var pattern bool
	var width, height int
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.BoolVar(&pattern, "pattern", false, "Animate a test pattern instead of the splash.")
	flag.IntVar(&width, "width", 640, "Simulated adapter width in pixels.")
	flag.IntVar(&height, "height", 400, "Simulated adapter height in pixels.")
	flag.Parse()

	adapter := hal.NewHostAdapter(width, height)
	a, err := app.New(adapter, hal.NewLogger(), app.Config{Pattern: pattern})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, cfg, a.Step); err != nil {
			if err == context.Canceled {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(adapter, a.Step); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
