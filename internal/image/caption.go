package imagepkg

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// drawCaption renders text with the built-in bitmap face, scales it up with
// nearest-neighbor so the glyphs stay crisp, and centers it in the gap
// between the logo and the artwork. canvas is returned unchanged if the gap
// is too small.
func drawCaption(canvas *image.NRGBA, text string, layout Layout, fg color.NRGBA) *image.NRGBA {
	glyphs := renderText(text, fg)
	if glyphs == nil {
		return canvas
	}
	gb := glyphs.Bounds()

	scale := canvas.Bounds().Dx() / 24 / gb.Dy()
	if scale < 1 {
		scale = 1
	}
	for scale > 1 && gb.Dx()*scale > canvas.Bounds().Dx()*9/10 {
		scale--
	}
	w, h := gb.Dx()*scale, gb.Dy()*scale

	top := layout.Logo.Max.Y
	if top < 0 {
		top = 0
	}
	gap := layout.Artwork.Min.Y - top
	if gap < h || w > canvas.Bounds().Dx() {
		return canvas
	}

	scaled := imaging.Resize(glyphs, w, h, imaging.NearestNeighbor)
	pt := image.Pt((canvas.Bounds().Dx()-w)/2, top+(gap-h)/2)
	return imaging.Overlay(canvas, scaled, pt, 1.0)
}

func renderText(text string, fg color.NRGBA) *image.NRGBA {
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()
	if width <= 0 {
		return nil
	}
	m := face.Metrics()
	height := (m.Ascent + m.Descent).Ceil()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  fixed.P(0, m.Ascent.Ceil()),
	}
	d.DrawString(text)
	return img
}
