package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	imagepkg "github.com/youruser/wallpaperapp/internal/image"
	"github.com/youruser/wallpaperapp/internal/token"
	"github.com/youruser/wallpaperapp/internal/util"
	"github.com/youruser/wallpaperapp/internal/wallpaper"
)

// Handler serves the pages and the JSON/PNG endpoints.
type Handler struct {
	gen           *wallpaper.Generator
	defaultSize   imagepkg.Size
	publicBaseURL string
}

func NewHandler(gen *wallpaper.Generator, defaultSize imagepkg.Size, publicBaseURL string) *Handler {
	return &Handler{gen: gen, defaultSize: defaultSize, publicBaseURL: publicBaseURL}
}

// health
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) metadataHandler(c *gin.Context) {
	id, err := token.ParseTokenID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m, err := h.gen.Metadata(c.Request.Context(), id)
	if err != nil {
		log.Printf("[api] metadata token_id=%s failed: %v", id, err)
		status, msg := publicError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, m)
}

// wallpaper PNG as a download
func (h *Handler) wallpaperPNGHandler(c *gin.Context) {
	w, ok := h.render(c)
	if !ok {
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", w.FileName()))
	c.Data(http.StatusOK, "image/png", w.PNG)
}

func (h *Handler) wallpaperDataURLHandler(c *gin.Context) {
	w, ok := h.render(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token_id":   int(w.TokenID),
		"width":      w.Size.Width,
		"height":     w.Size.Height,
		"background": w.BackgroundCSS(),
		"data_url":   w.DataURL(),
		"url":        w.PublishedURL,
	})
}

// render parses the id and size hints and runs the generator, writing a JSON
// error on failure.
func (h *Handler) render(c *gin.Context) (*wallpaper.Wallpaper, bool) {
	id, err := token.ParseTokenID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	w, err := h.gen.Generate(c.Request.Context(), h.request(c, id))
	if err != nil {
		log.Printf("[api] generate token_id=%s failed: %v", id, err)
		status, msg := publicError(err)
		c.JSON(status, gin.H{"error": msg})
		return nil, false
	}
	return w, true
}

func (h *Handler) request(c *gin.Context, id token.TokenID) wallpaper.Request {
	return wallpaper.Request{
		TokenID: id,
		Size:    imagepkg.CanvasSize(queryInt(c, "w"), queryInt(c, "h"), h.defaultSize),
		Caption: c.Query("caption") == "1" || c.Query("caption") == "true",
	}
}

// qr endpoint returns a PNG of a QR for "text" query param, or for the
// wallpaper page of "id".
func (h *Handler) qrHandler(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		id, err := token.ParseTokenID(c.Query("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "text or id is required"})
			return
		}
		text = h.pageURL(c, id)
	}
	b, err := imagepkg.GenerateQRPNG(text, queryInt(c, "size"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

// pageURL is the absolute URL of a token's wallpaper page.
func (h *Handler) pageURL(c *gin.Context, id token.TokenID) string {
	base := h.publicBaseURL
	if base == "" {
		scheme := "http"
		if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
			scheme = "https"
		}
		base = scheme + "://" + c.Request.Host
	}
	return base + "/" + id.String()
}

func queryInt(c *gin.Context, key string) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return v
}

func statusFor(err error) int {
	var (
		se *util.StatusError
		ne net.Error
	)
	switch {
	case errors.Is(err, token.ErrEmptyTokenID), errors.Is(err, token.ErrInvalidTokenID):
		return http.StatusBadRequest
	case errors.Is(err, wallpaper.ErrLogoUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, token.ErrNoImage):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &ne) && ne.Timeout():
		return http.StatusGatewayTimeout
	case errors.As(err, &se) && se.StatusCode == http.StatusNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

// publicError maps err to a status and a message safe to show users.
// Upstream URLs and statuses stay in the server log.
func publicError(err error) (int, string) {
	status := statusFor(err)
	switch status {
	case http.StatusBadRequest:
		if errors.Is(err, token.ErrEmptyTokenID) {
			return status, token.ErrEmptyTokenID.Error()
		}
		return status, token.ErrInvalidTokenID.Error()
	case http.StatusNotFound:
		if errors.Is(err, token.ErrNoImage) {
			return status, token.ErrNoImage.Error()
		}
		return status, "token artwork not found"
	case http.StatusGatewayTimeout:
		return status, "upstream service timed out, please try again"
	default:
		return status, "wallpaper could not be generated, please try again later"
	}
}
