package storage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path"
	"strings"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCSPublisher uploads rendered wallpapers to a Cloud Storage bucket.
//
// Object layout: {prefix}/{width}x{height}/wonderpals-{id}.png
//
// Objects are expected to be publicly readable through bucket level IAM
// (allUsers: Storage Object Viewer); no per-object ACL is set.
type GCSPublisher struct {
	Client *gcs.Client
	Bucket string
	Prefix string
	// Optional: if empty, uses https://storage.googleapis.com
	PublicBaseURL string
}

// NewGCSClient creates a storage client. credFile is optional; Application
// Default Credentials are used when it is empty.
func NewGCSClient(ctx context.Context, credFile string) (*gcs.Client, error) {
	var opts []option.ClientOption
	if f := strings.TrimSpace(credFile); f != "" {
		opts = append(opts, option.WithCredentialsFile(f))
	}
	c, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("storage.NewClient: %w", err)
	}
	return c, nil
}

func NewGCSPublisher(client *gcs.Client, bucket, prefix, publicBaseURL string) *GCSPublisher {
	return &GCSPublisher{
		Client:        client,
		Bucket:        strings.TrimSpace(bucket),
		Prefix:        strings.Trim(strings.TrimSpace(prefix), "/"),
		PublicBaseURL: publicBaseURL,
	}
}

// ObjectPath joins the configured prefix and name.
func (p *GCSPublisher) ObjectPath(name string) string {
	name = strings.TrimLeft(name, "/")
	if p.Prefix == "" {
		return name
	}
	return path.Join(p.Prefix, name)
}

// PublicURL returns the URL an object is served from.
func (p *GCSPublisher) PublicURL(objectPath string) string {
	base := strings.TrimRight(strings.TrimSpace(p.PublicBaseURL), "/")
	if base == "" {
		base = "https://storage.googleapis.com"
	}
	return fmt.Sprintf("%s/%s/%s", base, p.Bucket, objectPath)
}

// Publish writes png under name and returns its public URL.
func (p *GCSPublisher) Publish(ctx context.Context, name string, png []byte) (string, error) {
	if p == nil || p.Client == nil {
		return "", errors.New("gcs publisher: storage client is nil")
	}
	if p.Bucket == "" {
		return "", errors.New("gcs publisher: bucket is empty")
	}
	if len(png) == 0 {
		return "", errors.New("gcs publisher: image is empty")
	}

	obj := p.ObjectPath(name)
	w := p.Client.Bucket(p.Bucket).Object(obj).NewWriter(ctx)
	w.ContentType = "image/png"
	w.CacheControl = "public, max-age=86400"
	if _, err := w.Write(png); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("gcs publisher: write %s: %w", obj, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("gcs publisher: close %s: %w", obj, err)
	}
	log.Printf("[storage] published gs://%s/%s (%d bytes)", p.Bucket, obj, len(png))
	return p.PublicURL(obj), nil
}
