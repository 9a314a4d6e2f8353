package imagepkg

import (
	"fmt"
	"image"
	"image/color"
)

// SamplePoints are the canvas coordinates read to pick the background fill.
// They run down the left edge where the artwork shows its plain backdrop.
var SamplePoints = [3]image.Point{{X: 1, Y: 1}, {X: 1, Y: 200}, {X: 1, Y: 1700}}

// BackgroundSample holds the colors read at SamplePoints and the chosen fill.
type BackgroundSample struct {
	Samples [3]color.NRGBA
	Fill    color.NRGBA
}

// SampleBackground reads SamplePoints as if art were drawn at its natural
// size at the canvas origin. Points outside the canvas or the artwork read as
// transparent. The fill is the first non-transparent sample, made opaque, so
// for opaque artwork the top-left sample always wins.
func SampleBackground(art image.Image, size Size) BackgroundSample {
	var bs BackgroundSample
	canvas := image.Rect(0, 0, size.Width, size.Height)
	b := art.Bounds()
	for i, p := range SamplePoints {
		if !p.In(canvas) {
			continue
		}
		src := p.Add(b.Min)
		if !src.In(b) {
			continue
		}
		bs.Samples[i] = color.NRGBAModel.Convert(art.At(src.X, src.Y)).(color.NRGBA)
	}

	bs.Fill = color.NRGBA{A: 0xff}
	for _, c := range bs.Samples {
		if c.A != 0 {
			bs.Fill = color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
			break
		}
	}
	return bs
}

// CSSColor formats c the way a canvas fillStyle would receive it.
func CSSColor(c color.NRGBA) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}
