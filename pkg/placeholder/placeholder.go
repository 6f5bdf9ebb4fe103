// Package placeholder draws the stand-in logo shown for clubs without one:
// the club initial on a blue to amber gradient.
package placeholder

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
	"golang.org/x/image/font/basicfont"
)

const (
	// canvas is the drawing size; basicfont is a 7x13 bitmap face, so the
	// letter is drawn small and scaled up.
	canvas = 24

	MinSize = 16
	MaxSize = 1024
)

var (
	from = color.RGBA{R: 59, G: 130, B: 246, A: 255}
	to   = color.RGBA{R: 245, G: 158, B: 11, A: 255}
)

// Image returns a size x size square with initial centred on the gradient.
// size is clamped to [MinSize, MaxSize].
func Image(initial string, size int) image.Image {
	size = clamp(size)

	dc := gg.NewContext(canvas, canvas)
	gradient := gg.NewLinearGradient(0, 0, canvas, canvas)
	gradient.AddColorStop(0, from)
	gradient.AddColorStop(1, to)
	dc.SetFillStyle(gradient)
	dc.DrawRectangle(0, 0, canvas, canvas)
	dc.Fill()

	dc.SetFontFace(basicfont.Face7x13)
	dc.SetColor(color.White)
	dc.DrawStringAnchored(initial, canvas/2, canvas/2, 0.5, 0.35)

	return resize.Resize(uint(size), uint(size), dc.Image(), resize.Bilinear)
}

func PNG(initial string, size int) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, Image(initial, size)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func clamp(size int) int {
	switch {
	case size < MinSize:
		return MinSize
	case size > MaxSize:
		return MaxSize
	default:
		return size
	}
}
