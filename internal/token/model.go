package token

import (
	"encoding/json"
	"errors"
	"strings"
)

var ErrNoImage = errors.New("token metadata has no image")

// Metadata is the subset of the metadata API response the generator uses.
type Metadata struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Attributes  json.RawMessage `json:"attributes,omitempty"`
}

// Trait is one entry of the OpenSea style attributes array.
type Trait struct {
	TraitType string `json:"trait_type"`
	Value     any    `json:"value"`
}

// Traits decodes Attributes. Non-array attributes yield no traits.
func (m *Metadata) Traits() []Trait {
	if len(m.Attributes) == 0 {
		return nil
	}
	var out []Trait
	if err := json.Unmarshal(m.Attributes, &out); err != nil {
		return nil
	}
	return out
}

// ResolveImageURL turns ipfs:// URIs into gateway URLs. Other URLs pass through.
func ResolveImageURL(raw, ipfsGateway string) string {
	raw = strings.TrimSpace(raw)
	const scheme = "ipfs://"
	if !strings.HasPrefix(raw, scheme) || ipfsGateway == "" {
		return raw
	}
	p := strings.TrimPrefix(raw, scheme)
	p = strings.TrimPrefix(p, "ipfs/")
	if !strings.HasSuffix(ipfsGateway, "/") {
		ipfsGateway += "/"
	}
	return ipfsGateway + p
}
