package imagepkg

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// ComposeOptions tweaks ComposeWallpaper.
type ComposeOptions struct {
	// Caption is drawn between the logo and the artwork when there is room.
	Caption string
}

// Composition is a rendered wallpaper before encoding.
type Composition struct {
	Image      *image.NRGBA
	Background BackgroundSample
	Layout     Layout
}

// ComposeWallpaper fills the canvas with a color sampled from art, draws
// logo above and art as a full-width square at the bottom. A nil logo is
// skipped.
func ComposeWallpaper(art, logo image.Image, size Size, opts ComposeOptions) *Composition {
	bg := SampleBackground(art, size)
	layout := ComputeLayout(size)
	canvas := imaging.New(size.Width, size.Height, bg.Fill)

	if logo != nil && !layout.Logo.Empty() {
		l := imaging.Resize(logo, layout.Logo.Dx(), layout.Logo.Dy(), imaging.Lanczos)
		canvas = imaging.Overlay(canvas, l, layout.Logo.Min, 1.0)
	}

	if opts.Caption != "" {
		canvas = drawCaption(canvas, opts.Caption, layout, contrastColor(bg.Fill))
	}

	a := imaging.Resize(art, layout.Artwork.Dx(), layout.Artwork.Dy(), imaging.Lanczos)
	canvas = imaging.Overlay(canvas, a, layout.Artwork.Min, 1.0)

	return &Composition{Image: canvas, Background: bg, Layout: layout}
}

// contrastColor picks black or white text for a background.
func contrastColor(bg color.NRGBA) color.NRGBA {
	lum := 0.299*float64(bg.R) + 0.587*float64(bg.G) + 0.114*float64(bg.B)
	if lum >= 128 {
		return color.NRGBA{A: 0xff}
	}
	return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
}
