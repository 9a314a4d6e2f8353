package api

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.html")))

	r.GET("/", h.indexPage)
	r.POST("/", h.submitToken)
	r.GET("/:id", h.wallpaperPage)

	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.GET("/metadata/:id", h.metadataHandler)
		api.GET("/wallpaper/:id", h.wallpaperPNGHandler)
		api.GET("/wallpaper/:id/dataurl", h.wallpaperDataURLHandler)
		api.GET("/qr", h.qrHandler)
	}
}
