package wallpaper

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"net/http"
	"os"
	"strings"
	"sync"

	imagepkg "github.com/youruser/wallpaperapp/internal/image"
)

// LogoSource provides the logo drawn above the artwork.
type LogoSource interface {
	Logo(ctx context.Context) (image.Image, error)
}

// CachedLogo loads the logo from a file path or an http(s) URL once and keeps
// it for the lifetime of the process. A failed load is retried on the next call.
type CachedLogo struct {
	source string
	client *http.Client

	mu   sync.Mutex
	logo image.Image
}

func NewLogoSource(pathOrURL string, client *http.Client) *CachedLogo {
	return &CachedLogo{source: strings.TrimSpace(pathOrURL), client: client}
}

func (c *CachedLogo) Logo(ctx context.Context) (image.Image, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.logo != nil {
		return c.logo, nil
	}
	if c.source == "" {
		return nil, errors.New("logo source is empty")
	}

	var (
		img image.Image
		err error
	)
	if isRemote(c.source) {
		img, err = imagepkg.DownloadImage(ctx, c.client, c.source)
	} else {
		var b []byte
		b, err = os.ReadFile(c.source)
		if err == nil {
			img, err = imagepkg.DecodeImage(b)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("load logo %s: %w", c.source, err)
	}
	log.Printf("[wallpaper] logo loaded source=%s size=%v", c.source, img.Bounds().Size())
	c.logo = img
	return img, nil
}

// StaticLogo serves an already decoded logo.
type StaticLogo struct {
	Image image.Image
}

func (s StaticLogo) Logo(context.Context) (image.Image, error) {
	return s.Image, nil
}

func isRemote(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
