package qr

import (
	"image/color"

	"github.com/skip2/go-qrcode"
)

// Directory is the style used for club profile share codes.
var Directory = Config{
	Size:           512,
	LogoScale:      0.22,
	Background:     color.RGBA{R: 255, G: 255, B: 255, A: 255},
	Foreground:     color.RGBA{R: 15, G: 23, B: 42, A: 255},
	DotScale:       0.45,
	RecoveryLevel:  qrcode.Highest,
	QuietZone:      2,
	LogoBackground: color.RGBA{R: 255, G: 255, B: 255, A: 255},
	LogoBorder:     4,
}
