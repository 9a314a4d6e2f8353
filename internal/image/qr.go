package imagepkg

import (
	"bytes"
	"image"
	"image/png"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	DefaultQRSize = 256
	maxQRSize     = 1024
)

// GenerateQRPNG returns PNG bytes of a QR code for the given text.
// Sizes outside (0, 1024] fall back to DefaultQRSize.
func GenerateQRPNG(text string, size int) ([]byte, error) {
	if size <= 0 || size > maxQRSize {
		size = DefaultQRSize
	}
	return qrcode.Encode(text, qrcode.Medium, size)
}

// GenerateQRImage returns the QR code as an image.Image for further composition.
func GenerateQRImage(text string, size int) (image.Image, error) {
	b, err := GenerateQRPNG(text, size)
	if err != nil {
		return nil, err
	}
	return png.Decode(bytes.NewReader(b))
}
