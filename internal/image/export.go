package imagepkg

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

const pngDataURLPrefix = "data:image/png;base64,"

// EncodePNG encodes img as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// DataURL wraps PNG bytes into a data URL suitable for an <img> src.
func DataURL(pngBytes []byte) string {
	return pngDataURLPrefix + base64.StdEncoding.EncodeToString(pngBytes)
}
