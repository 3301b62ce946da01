//go:build !tinygo

package hal

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"photon/internal/buildinfo"
)

// RunWindow opens a desktop window presenting the adapter's device memory
// and invokes step once per frame. It blocks until the window closes.
//
// The window is a stand-in for a monitor: it decodes the raw XRGB bytes the
// flush engine wrote into the adapter, it never looks at any backing buffer.
func RunWindow(a *HostAdapter, step func() error) error {
	g := &hostGame{a: a, step: step}
	desc := a.Descriptor()
	ebiten.SetWindowTitle("photon (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(int(desc.Width)*2, int(desc.Height)*2)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	a       *HostAdapter
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	step    func() error
}

func (g *hostGame) Update() error {
	if g.step != nil {
		return g.step()
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	desc := g.a.Descriptor()
	w := int(desc.Width)
	h := int(desc.Height)

	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, w, h))
		g.scratch = make([]byte, int(desc.Stride)*h)
		g.fbImg = ebiten.NewImage(w, h)
	}

	g.a.Snapshot(g.scratch)

	// Device memory is 32bpp XRGB little-endian: bytes B, G, R, X.
	stride := int(desc.Stride)
	dst := g.img.Pix
	for y := 0; y < h; y++ {
		row := y * stride
		out := y * g.img.Stride
		for x := 0; x < w; x++ {
			src := row + x*4
			j := out + x*4
			dst[j+0] = g.scratch[src+2]
			dst[j+1] = g.scratch[src+1]
			dst[j+2] = g.scratch[src+0]
			dst[j+3] = 0xFF
		}
	}

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	desc := g.a.Descriptor()
	return int(desc.Width), int(desc.Height)
}
