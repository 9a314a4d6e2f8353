package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultMetadataAPIURL  = "https://nft-apis.vercel.app/api/metadata"
	DefaultContractAddress = "0x3acce66cd37518a6d77d9ea3039e00b3a2955460"
	DefaultLogoSource      = "https://cdn.shopify.com/s/files/1/0637/4513/0718/files/WonderPals_Shop_Logo_700x.png"
	DefaultIPFSGateway     = "https://ipfs.io/ipfs/"
)

// Config holds the environment driven settings of the server and the CLI.
type Config struct {
	Port string

	// Metadata API
	MetadataAPIURL  string
	ContractAddress string
	IPFSGateway     string
	HTTPTimeout     time.Duration

	// LogoSource is a file path or an http(s) URL of a raster logo.
	LogoSource string

	DefaultWidth  int
	DefaultHeight int

	// Publishing is skipped when Bucket is empty.
	Bucket               string
	BucketPrefix         string
	GCPCreds             string
	PublicBaseURL        string
	StoragePublicBaseURL string
}

// Load reads the environment and returns a Config with defaults applied.
func Load() *Config {
	return &Config{
		Port:            getenvDefault("PORT", "8080"),
		MetadataAPIURL:  getenvDefault("METADATA_API_URL", DefaultMetadataAPIURL),
		ContractAddress: getenvDefault("CONTRACT_ADDRESS", DefaultContractAddress),
		IPFSGateway:     getenvDefault("IPFS_GATEWAY", DefaultIPFSGateway),
		HTTPTimeout:     time.Duration(getenvInt("HTTP_TIMEOUT", 12)) * time.Second,
		LogoSource:      getenvDefault("LOGO_SOURCE", DefaultLogoSource),
		DefaultWidth:    getenvInt("WALLPAPER_WIDTH", 1170),
		DefaultHeight:   getenvInt("WALLPAPER_HEIGHT", 2532),

		Bucket:               strings.TrimSpace(os.Getenv("WALLPAPER_BUCKET")),
		BucketPrefix:         getenvDefault("WALLPAPER_PREFIX", "wallpapers"),
		GCPCreds:             os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		PublicBaseURL:        strings.TrimRight(os.Getenv("PUBLIC_BASE_URL"), "/"),
		StoragePublicBaseURL: getenvDefault("STORAGE_PUBLIC_BASE_URL", "https://storage.googleapis.com"),
	}
}

// PublishingEnabled reports whether generated wallpapers are uploaded to GCS.
func (c *Config) PublishingEnabled() bool {
	return c.Bucket != ""
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
