package wallpaper

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	imagepkg "github.com/youruser/wallpaperapp/internal/image"
	"github.com/youruser/wallpaperapp/internal/token"
)

// ErrLogoUnavailable means the configured logo could not be loaded. It is a
// server side failure, unrelated to the requested token.
var ErrLogoUnavailable = errors.New("logo unavailable")

// MetadataFetcher returns the metadata of a token.
type MetadataFetcher interface {
	Fetch(ctx context.Context, id token.TokenID) (*token.Metadata, error)
}

// Publisher uploads a rendered wallpaper and returns its public URL.
type Publisher interface {
	Publish(ctx context.Context, name string, png []byte) (string, error)
}

// Generator runs the metadata -> images -> composite -> PNG pipeline.
type Generator struct {
	meta      MetadataFetcher
	logo      LogoSource
	client    *http.Client
	publisher Publisher
	size      imagepkg.Size
}

func NewGenerator(meta MetadataFetcher, logo LogoSource, client *http.Client) *Generator {
	return &Generator{
		meta:   meta,
		logo:   logo,
		client: client,
		size:   imagepkg.Size{Width: imagepkg.DefaultWidth, Height: imagepkg.DefaultHeight},
	}
}

// WithDefaultSize sets the canvas size used for requests without a size.
func (g *Generator) WithDefaultSize(size imagepkg.Size) *Generator {
	g.size = imagepkg.CanvasSize(size.Width, size.Height, imagepkg.Size{})
	return g
}

// DefaultSize is the canvas size used for requests without a size.
func (g *Generator) DefaultSize() imagepkg.Size {
	return g.size
}

// WithPublisher enables uploading of every generated wallpaper.
func (g *Generator) WithPublisher(p Publisher) *Generator {
	g.publisher = p
	return g
}

// Metadata fetches token metadata without rendering.
func (g *Generator) Metadata(ctx context.Context, id token.TokenID) (*token.Metadata, error) {
	return g.meta.Fetch(ctx, id)
}

// Generate renders the wallpaper of req.TokenID. The artwork and the logo are
// loaded concurrently once the metadata is known.
func (g *Generator) Generate(ctx context.Context, req Request) (*Wallpaper, error) {
	if !req.TokenID.Valid() {
		return nil, token.ErrInvalidTokenID
	}
	size := req.Size
	if size.Width <= 0 || size.Height <= 0 {
		size = g.size
	}
	start := time.Now()

	m, err := g.meta.Fetch(ctx, req.TokenID)
	if err != nil {
		return nil, err
	}

	var art, logo image.Image
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		img, err := imagepkg.DownloadImage(egCtx, g.client, m.Image)
		if err != nil {
			return fmt.Errorf("load artwork for token %s: %w", req.TokenID, err)
		}
		art = img
		return nil
	})
	eg.Go(func() error {
		if g.logo == nil {
			return nil
		}
		img, err := g.logo.Logo(egCtx)
		if err != nil {
			if ctxErr := egCtx.Err(); ctxErr != nil {
				return ctxErr
			}
			// %v keeps upstream statuses of the logo host out of the chain.
			return fmt.Errorf("%w: %v", ErrLogoUnavailable, err)
		}
		logo = img
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	opts := imagepkg.ComposeOptions{}
	if req.Caption {
		opts.Caption = caption(req.TokenID, m)
	}
	comp := imagepkg.ComposeWallpaper(art, logo, size, opts)
	b, err := imagepkg.EncodePNG(comp.Image)
	if err != nil {
		return nil, err
	}

	w := &Wallpaper{
		TokenID:    req.TokenID,
		Metadata:   m,
		Size:       size,
		Background: comp.Background.Fill,
		PNG:        b,
	}
	log.Printf("[wallpaper] generated token_id=%s size=%v bytes=%d took=%s",
		req.TokenID, size, len(b), time.Since(start).Round(time.Millisecond))

	if g.publisher != nil {
		u, err := g.publisher.Publish(ctx, ObjectName(req.TokenID, size), b)
		if err != nil {
			log.Printf("[wallpaper] WARN: publish token_id=%s failed: %v", req.TokenID, err)
		} else {
			w.PublishedURL = u
		}
	}
	return w, nil
}
