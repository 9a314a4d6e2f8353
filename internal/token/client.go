package token

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/youruser/wallpaperapp/internal/util"
)

// MetadataURL builds the metadata API request URL for one token.
func MetadataURL(base, contract string, id TokenID) string {
	q := url.Values{}
	q.Set("contract_address", contract)
	q.Set("token_id", id.String())
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + q.Encode()
}

// Client talks to the NFT metadata API.
type Client struct {
	http        *http.Client
	baseURL     string
	contract    string
	ipfsGateway string
}

func NewClient(baseURL, contract, ipfsGateway string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = util.DefaultTimeout
	}
	return &Client{
		http:        &http.Client{Timeout: timeout},
		baseURL:     strings.TrimSpace(baseURL),
		contract:    strings.TrimSpace(contract),
		ipfsGateway: ipfsGateway,
	}
}

// HTTPClient exposes the underlying client so image downloads share its timeout.
func (c *Client) HTTPClient() *http.Client {
	return c.http
}

// Fetch returns the metadata of id. The Image field is already resolved to an
// http(s) URL.
func (c *Client) Fetch(ctx context.Context, id TokenID) (*Metadata, error) {
	if !id.Valid() {
		return nil, ErrInvalidTokenID
	}
	u := MetadataURL(c.baseURL, c.contract, id)
	log.Printf("[token] fetch metadata token_id=%s", id)

	body, err := util.GetBytes(ctx, c.http, u)
	if err != nil {
		return nil, fmt.Errorf("fetch metadata for token %s: %w", id, err)
	}
	var m Metadata
	if err := json.Unmarshal(body, &m); err != nil {
		return nil, fmt.Errorf("decode metadata for token %s: %w", id, err)
	}
	if strings.TrimSpace(m.Image) == "" {
		return nil, fmt.Errorf("token %s: %w", id, ErrNoImage)
	}
	m.Image = ResolveImageURL(m.Image, c.ipfsGateway)
	return &m, nil
}
