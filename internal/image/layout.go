package imagepkg

import (
	"image"
	"math"
)

const (
	logoWidthRatio  = 1.0 / 3
	logoAspectRatio = 0.93
	logoLift        = 1.25
)

// Layout places the logo and the artwork on the canvas.
type Layout struct {
	Logo    image.Rectangle
	Artwork image.Rectangle
}

// ComputeLayout puts the artwork as a full-width square at the bottom of the
// canvas and centers a logo one third of the width wide in the space above,
// lifted towards the top.
func ComputeLayout(size Size) Layout {
	w := float64(size.Width)
	h := float64(size.Height)

	artSide := w
	logoW := artSide * logoWidthRatio
	logoH := logoW * logoAspectRatio
	logoX := (artSide - logoW) / 2
	logoY := (h - artSide - logoH) / logoLift

	artX := (w - artSide) / 2
	artY := h - artSide

	return Layout{
		Logo:    rect(logoX, logoY, logoW, logoH),
		Artwork: rect(artX, artY, artSide, artSide),
	}
}

func rect(x, y, w, h float64) image.Rectangle {
	x0, y0 := int(math.Round(x)), int(math.Round(y))
	return image.Rect(x0, y0, x0+int(math.Round(w)), y0+int(math.Round(h)))
}
