//go:build !linux

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "fbprobe: only supported on linux (fbdev)")
	os.Exit(1)
}
