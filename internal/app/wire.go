package app

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/youruser/wallpaperapp/internal/api"
	"github.com/youruser/wallpaperapp/internal/config"
	imagepkg "github.com/youruser/wallpaperapp/internal/image"
	"github.com/youruser/wallpaperapp/internal/storage"
	"github.com/youruser/wallpaperapp/internal/token"
	"github.com/youruser/wallpaperapp/internal/wallpaper"
)

// Wire bundles the clients and services shared by the server and the CLI.
type Wire struct {
	Config    *config.Config
	Metadata  *token.Client
	Generator *wallpaper.Generator

	closers []func() error
}

// NewWire constructs the dependency graph from cfg. Publishing is set up only
// when a bucket is configured; a storage client failure disables it with a
// warning instead of failing startup.
func NewWire(ctx context.Context, cfg *config.Config) *Wire {
	meta := token.NewClient(cfg.MetadataAPIURL, cfg.ContractAddress, cfg.IPFSGateway, cfg.HTTPTimeout)
	logo := wallpaper.NewLogoSource(cfg.LogoSource, meta.HTTPClient())
	gen := wallpaper.NewGenerator(meta, logo, meta.HTTPClient()).
		WithDefaultSize(imagepkg.Size{Width: cfg.DefaultWidth, Height: cfg.DefaultHeight})

	w := &Wire{Config: cfg, Metadata: meta, Generator: gen}

	if cfg.PublishingEnabled() {
		client, err := storage.NewGCSClient(ctx, cfg.GCPCreds)
		if err != nil {
			log.Printf("[app] WARN: wallpaper publishing disabled: %v", err)
		} else {
			gen.WithPublisher(storage.NewGCSPublisher(client, cfg.Bucket, cfg.BucketPrefix, cfg.StoragePublicBaseURL))
			w.closers = append(w.closers, client.Close)
			log.Printf("[app] wallpaper publishing enabled bucket=%s prefix=%s", cfg.Bucket, cfg.BucketPrefix)
		}
	} else {
		log.Printf("[app] wallpaper publishing not configured (WALLPAPER_BUCKET empty)")
	}
	return w
}

// DefaultSize is the canvas size used when a request carries no screen size.
func (w *Wire) DefaultSize() imagepkg.Size {
	return w.Generator.DefaultSize()
}

// Router builds the gin engine with all routes registered.
func (w *Wire) Router() *gin.Engine {
	r := gin.Default()
	api.RegisterRoutes(r, api.NewHandler(w.Generator, w.DefaultSize(), w.Config.PublicBaseURL))
	return r
}

func (w *Wire) Close() {
	for _, c := range w.closers {
		if err := c(); err != nil {
			log.Printf("[app] close: %v", err)
		}
	}
}
