package wallpaper

import (
	"fmt"
	"image/color"

	imagepkg "github.com/youruser/wallpaperapp/internal/image"
	"github.com/youruser/wallpaperapp/internal/token"
)

// Request describes one wallpaper render.
type Request struct {
	TokenID token.TokenID
	Size    imagepkg.Size
	// Caption draws the token name between the logo and the artwork.
	Caption bool
}

// Wallpaper is a rendered, PNG encoded wallpaper.
type Wallpaper struct {
	TokenID    token.TokenID
	Metadata   *token.Metadata
	Size       imagepkg.Size
	Background color.NRGBA
	PNG        []byte
	// PublishedURL is set when the wallpaper was uploaded to object storage.
	PublishedURL string
}

func (w *Wallpaper) DataURL() string {
	return imagepkg.DataURL(w.PNG)
}

func (w *Wallpaper) FileName() string {
	return FileName(w.TokenID)
}

func (w *Wallpaper) BackgroundCSS() string {
	return imagepkg.CSSColor(w.Background)
}

// FileName is the download name of a token's wallpaper.
func FileName(id token.TokenID) string {
	return fmt.Sprintf("wonderpals-%s.png", id)
}

// ObjectName is the storage object name of a rendered size of a token's wallpaper.
func ObjectName(id token.TokenID, size imagepkg.Size) string {
	return fmt.Sprintf("%s/wonderpals-%s.png", size, id)
}

func caption(id token.TokenID, m *token.Metadata) string {
	if m != nil && m.Name != "" {
		return m.Name
	}
	return "#" + id.String()
}
