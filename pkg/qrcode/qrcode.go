package qr

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
	"github.com/skip2/go-qrcode"
)

type Config struct {
	Content        string
	Logo           image.Image // drawn in a circle at the centre when set
	Size           int
	LogoScale      float64
	Background     color.Color
	Foreground     color.Color
	DotScale       float64 // dot radius relative to a module, 0.5 fills the module
	RecoveryLevel  qrcode.RecoveryLevel
	QuietZone      int // modules of empty border around the code
	LogoBackground color.Color
	LogoBorder     float64
}

// Generate renders the QR code as a PNG.
func (c Config) Generate() ([]byte, error) {
	img, err := c.Image()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err = png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Image renders the QR code. Modules are drawn as dots; modules under the
// logo circle are skipped, so Config.RecoveryLevel must leave enough
// redundancy for the logo area.
func (c Config) Image() (image.Image, error) {
	code, err := qrcode.New(c.Content, c.RecoveryLevel)
	if err != nil {
		return nil, err
	}
	code.DisableBorder = true
	bitmap := code.Bitmap()

	modules := len(bitmap) + 2*c.QuietZone
	module := float64(c.Size) / float64(modules)
	center := float64(c.Size) / 2

	dc := gg.NewContext(c.Size, c.Size)
	dc.SetColor(c.Background)
	dc.Clear()

	logoSize := 0
	if c.Logo != nil {
		logoSize = int(float64(c.Size) * c.LogoScale)
	}
	logoRadius := float64(logoSize)/2 + module

	dc.SetColor(c.Foreground)
	for y, row := range bitmap {
		for x, dark := range row {
			if !dark {
				continue
			}
			px := (float64(x+c.QuietZone) + 0.5) * module
			py := (float64(y+c.QuietZone) + 0.5) * module
			if logoSize > 0 && inCircle(px, py, center, logoRadius) {
				continue
			}
			dc.DrawCircle(px, py, module*c.DotScale)
		}
	}
	dc.Fill()

	if logoSize > 0 {
		dc.DrawImageAnchored(c.circularLogo(logoSize), int(center), int(center), 0.5, 0.5)
	}

	return dc.Image(), nil
}

func (c Config) circularLogo(size int) image.Image {
	half := float64(size) / 2
	resized := resize.Resize(uint(size), uint(size), c.Logo, resize.Lanczos3)

	lc := gg.NewContext(size, size)
	lc.SetColor(c.LogoBackground)
	lc.DrawCircle(half, half, half)
	lc.Fill()

	lc.DrawCircle(half, half, half-c.LogoBorder)
	lc.Clip()
	lc.DrawImage(resized, 0, 0)
	lc.ResetClip()

	return lc.Image()
}

func inCircle(x, y, center, radius float64) bool {
	dx, dy := x-center, y-center
	return dx*dx+dy*dy <= radius*radius
}
