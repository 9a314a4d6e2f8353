package api

import (
	"html/template"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	imagepkg "github.com/youruser/wallpaperapp/internal/image"
	"github.com/youruser/wallpaperapp/internal/token"
)

const (
	pageTitle   = "WonderPals Wallpaper Generator"
	headerLogo  = "https://cdn.shopify.com/s/files/1/0637/4513/0718/files/WonderPals_Shop_Logo_700x.png"
	shareQRSize = 160
)

type indexData struct {
	Title   string
	Logo    string
	TokenID string
	Error   string
	Min     int
	Max     int
}

func newIndexData(tokenID, errMsg string) indexData {
	return indexData{
		Title:   pageTitle,
		Logo:    headerLogo,
		TokenID: tokenID,
		Error:   errMsg,
		Min:     token.MinTokenID,
		Max:     token.MaxTokenID,
	}
}

func (h *Handler) indexPage(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", newIndexData("", ""))
}

// submitToken validates the form and redirects to the wallpaper page,
// forwarding the screen size the browser reported.
func (h *Handler) submitToken(c *gin.Context) {
	raw := c.PostForm("token_id")
	id, err := token.ParseTokenID(raw)
	if err != nil {
		c.HTML(http.StatusBadRequest, "index.html", newIndexData(raw, err.Error()))
		return
	}
	q := url.Values{}
	for _, k := range []string{"w", "h"} {
		if v, err := strconv.Atoi(c.PostForm(k)); err == nil && v > 0 {
			q.Set(k, strconv.Itoa(v))
		}
	}
	target := "/" + id.String()
	if len(q) > 0 {
		target += "?" + q.Encode()
	}
	c.Redirect(http.StatusSeeOther, target)
}

type wallpaperData struct {
	Title       string
	TokenID     string
	Name        string
	Image       template.URL
	Download    string
	FileName    string
	ShareURL    string
	ShareQR     template.URL
	Background  template.CSS
	Size        imagepkg.Size
	PublishedAt string
}

type errorData struct {
	Title  string
	Status int
	Error  string
}

func (h *Handler) wallpaperPage(c *gin.Context) {
	id, err := token.ParseTokenID(c.Param("id"))
	if err != nil {
		c.HTML(http.StatusBadRequest, "error.html", errorData{Title: pageTitle, Status: http.StatusBadRequest, Error: err.Error()})
		return
	}

	req := h.request(c, id)
	w, err := h.gen.Generate(c.Request.Context(), req)
	if err != nil {
		log.Printf("[api] wallpaper page token_id=%s failed: %v", id, err)
		status, msg := publicError(err)
		c.HTML(status, "error.html", errorData{Title: pageTitle, Status: status, Error: msg})
		return
	}

	share := h.pageURL(c, id)
	download := "/api/wallpaper/" + id.String() + "?" + url.Values{
		"w": {strconv.Itoa(req.Size.Width)},
		"h": {strconv.Itoa(req.Size.Height)},
	}.Encode()
	data := wallpaperData{
		Title:       pageTitle,
		TokenID:     id.String(),
		Image:       template.URL(w.DataURL()),
		FileName:    w.FileName(),
		ShareURL:    share,
		Background:  template.CSS(w.BackgroundCSS()),
		Size:        w.Size,
		PublishedAt: w.PublishedURL,
		Download:    download,
	}
	if w.Metadata != nil {
		data.Name = w.Metadata.Name
	}
	if qr, err := imagepkg.GenerateQRPNG(share, shareQRSize); err == nil {
		data.ShareQR = template.URL(imagepkg.DataURL(qr))
	} else {
		log.Printf("[api] share qr token_id=%s failed: %v", id, err)
	}
	c.HTML(http.StatusOK, "wallpaper.html", data)
}
