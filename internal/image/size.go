package imagepkg

import "fmt"

const (
	DefaultWidth  = 1170
	DefaultHeight = 2532

	MinSide = 64
	MaxSide = 4096
)

// Size is a canvas size in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// CanvasSize derives the wallpaper size from a screen size. A landscape
// screen is treated as desktop: the height is kept and the width becomes half
// of it, giving a phone shaped wallpaper. Missing dimensions fall back to def.
// A height above MaxSide scales both sides down, keeping the aspect ratio.
func CanvasSize(screenW, screenH int, def Size) Size {
	if def.Width <= 0 || def.Height <= 0 {
		def = Size{Width: DefaultWidth, Height: DefaultHeight}
	}
	if screenW <= 0 || screenH <= 0 {
		screenW, screenH = def.Width, def.Height
	}
	w, h := screenW, screenH
	if w > h {
		w = h / 2
	}
	if h > MaxSide {
		w = int(float64(w) * MaxSide / float64(h))
		h = MaxSide
	}
	h = clamp(h, MinSide, MaxSide)
	w = clamp(w, MinSide, h)
	return Size{Width: w, Height: h}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
