package imagepkg

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"net/http"

	"github.com/disintegration/imaging"

	"github.com/youruser/wallpaperapp/internal/util"
)

// DownloadImage downloads an image from url and decodes it.
// Supported formats are the ones imaging.Decode understands (png, jpeg, gif, bmp, tiff).
func DownloadImage(ctx context.Context, client *http.Client, url string) (image.Image, error) {
	body, err := util.GetBytes(ctx, client, url)
	if err != nil {
		return nil, err
	}
	return DecodeImage(body)
}

// DecodeImage decodes raw image bytes, honoring EXIF orientation for jpeg.
func DecodeImage(b []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(b), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}
