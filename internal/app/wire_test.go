package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/youruser/wallpaperapp/internal/config"
)

func TestNewWire_Router(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		MetadataAPIURL:  "http://127.0.0.1:0/metadata",
		ContractAddress: config.DefaultContractAddress,
		LogoSource:      "logo.png",
		DefaultWidth:    300,
		DefaultHeight:   900,
	}
	w := NewWire(context.Background(), cfg)
	defer w.Close()

	if got := w.DefaultSize(); got.Width != 300 || got.Height != 900 {
		t.Fatalf("default size: %v", got)
	}

	rec := httptest.NewRecorder()
	w.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("health: %d", rec.Code)
	}
}
