// Package splash paints the first visible frame into a freshly initialized
// backing buffer, between buffer initialization and the construction-time
// flush. It draws in the abstract color domain only; device formats are
// none of its business.
package splash

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"photon/gfx"
	"photon/internal/buildinfo"
	"photon/video"
)

var (
	gradTop    = gfx.RGB(0x0B, 0x10, 0x1E)
	gradBottom = gfx.RGB(0x1E, 0x32, 0x5C)
	textColor  = color.RGBA{R: 0xE8, G: 0xEE, B: 0xF8, A: 0xFF}
	subColor   = color.RGBA{R: 0x88, G: 0xA6, B: 0xD6, A: 0xFF}
)

// Paint renders the boot splash: a vertical gradient plus the system name
// and build identifier.
func Paint(view video.BufferView) {
	if view.W <= 0 || view.H <= 0 {
		return
	}

	for y, c := range gfx.Gradient(gradTop, gradBottom, view.H) {
		row := view.Pix[y*view.W : (y+1)*view.W]
		for x := range row {
			row[x] = c
		}
	}

	font := &proggy.TinySZ8pt7b
	title := "photon"
	sub := buildinfo.Short()

	d := &viewDisplayer{view: view}
	_, titleW := tinyfont.LineWidth(font, title)
	tx := int16(view.W/2) - int16(titleW/2)
	ty := int16(view.H / 2)
	tinyfont.WriteLine(d, font, tx, ty, title, textColor)

	_, subW := tinyfont.LineWidth(font, sub)
	tinyfont.WriteLine(d, font, int16(view.W/2)-int16(subW/2), ty+14, sub, subColor)
}

// viewDisplayer adapts a backing-buffer view to the displayer interface the
// font renderer draws against.
type viewDisplayer struct {
	view video.BufferView
}

var _ drivers.Displayer = (*viewDisplayer)(nil)

func (d *viewDisplayer) Size() (x, y int16) {
	return int16(d.view.W), int16(d.view.H)
}

func (d *viewDisplayer) SetPixel(x, y int16, c color.RGBA) {
	d.view.Set(int(x), int(y), gfx.RGBA(c.R, c.G, c.B, c.A))
}

func (d *viewDisplayer) Display() error { return nil }
