//go:build linux

// Command fbprobe prints the raw framebuffer descriptor of a Linux fbdev
// device and whether the display subsystem would accept its pixel layout.
package main

import (
	"flag"
	"fmt"
	"os"

	"photon/hal"
	"photon/video/pixfmt"
)

func main() {
	dev := flag.String("dev", "/dev/fb0", "Framebuffer device to probe.")
	flag.Parse()

	d, err := hal.OpenFBDev(*dev)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer d.Close()

	desc := d.Descriptor()
	fmt.Printf("%s:\n", *dev)
	fmt.Printf("  base          %#x\n", desc.Base)
	fmt.Printf("  resolution    %dx%d\n", desc.Width, desc.Height)
	fmt.Printf("  bits/pixel    %d\n", desc.BitsPerPixel)
	fmt.Printf("  stride        %d bytes\n", desc.Stride)
	fmt.Printf("  red           size=%d shift=%d\n", desc.Red.MaskSize, desc.Red.Shift)
	fmt.Printf("  green         size=%d shift=%d\n", desc.Green.MaskSize, desc.Green.Shift)
	fmt.Printf("  blue          size=%d shift=%d\n", desc.Blue.MaskSize, desc.Blue.Shift)

	res, err := pixfmt.Resolve(desc)
	if err != nil {
		fmt.Printf("  layout        rejected: %v\n", err)
		os.Exit(2)
	}
	fmt.Printf("  layout        supported, %d bytes/pixel\n", res.BytesPerPixel)
}
