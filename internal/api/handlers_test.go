package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"

	imagepkg "github.com/youruser/wallpaperapp/internal/image"
	"github.com/youruser/wallpaperapp/internal/token"
	"github.com/youruser/wallpaperapp/internal/util"
	"github.com/youruser/wallpaperapp/internal/wallpaper"
)

// upstream fakes the metadata API and the artwork host. Token 404 has no
// image, token 500 fails upstream and token 504 never answers.
func upstream(t *testing.T) *httptest.Server {
	t.Helper()
	art := new(bytes.Buffer)
	if err := png.Encode(art, imaging.New(32, 32, color.NRGBA{R: 0x20, G: 0x80, B: 0xc0, A: 0xff})); err != nil {
		t.Fatalf("encode art: %v", err)
	}

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/metadata":
			id := r.URL.Query().Get("token_id")
			switch id {
			case "404":
				_, _ = w.Write([]byte(`{"name":"blank"}`))
				return
			case "500":
				http.Error(w, "boom", http.StatusInternalServerError)
				return
			case "504":
				select {
				case <-r.Context().Done():
				case <-time.After(5 * time.Second):
				}
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]string{
				"name":  "WonderPal #" + id,
				"image": srv.URL + "/art/" + id + ".png",
			})
		case "/art/7.png", "/art/8.png", "/logo.png":
			_, _ = w.Write(art.Bytes())
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	return newRouterWithLogo(t, func(string) wallpaper.LogoSource {
		return wallpaper.StaticLogo{Image: imaging.New(4, 4, color.NRGBA{A: 0xff})}
	})
}

// newRouterWithLogo builds the router against a fresh upstream; logo receives
// the upstream base URL.
func newRouterWithLogo(t *testing.T, logo func(base string) wallpaper.LogoSource) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	up := upstream(t)

	meta := token.NewClient(up.URL+"/metadata", "0xabc", "", 5*time.Second)
	gen := wallpaper.NewGenerator(meta, logo(up.URL), meta.HTTPClient())
	h := NewHandler(gen, imagepkg.Size{Width: 120, Height: 360}, "https://wall.example")

	r := gin.New()
	RegisterRoutes(r, h)
	return r
}

func do(r http.Handler, method, target string, body *strings.Reader) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, body)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(newTestRouter(t), http.MethodGet, "/api/health", nil)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Fatalf("health: %d %s", rec.Code, rec.Body.String())
	}
}

func TestIndexPage(t *testing.T) {
	rec := do(newTestRouter(t), http.MethodGet, "/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"WonderPals Wallpaper Generator", `name="token_id"`, `max="10000"`, "Generate Wallpaper!"} {
		if !strings.Contains(body, want) {
			t.Fatalf("index page missing %q", want)
		}
	}
}

func TestSubmitToken(t *testing.T) {
	r := newTestRouter(t)

	rec := do(r, http.MethodPost, "/", strings.NewReader(url.Values{"token_id": {"7"}, "w": {"540"}, "h": {"1080"}}.Encode()))
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/7?h=1080&w=540" {
		t.Fatalf("location: %q", loc)
	}

	cases := map[string]string{
		"":      "empty token id",
		"0":     "invalid token id",
		"10001": "invalid token id",
	}
	for in, want := range cases {
		rec := do(r, http.MethodPost, "/", strings.NewReader(url.Values{"token_id": {in}}.Encode()))
		if rec.Code != http.StatusBadRequest || !strings.Contains(rec.Body.String(), want) {
			t.Fatalf("token %q: %d, body lacks %q", in, rec.Code, want)
		}
	}
}

func TestWallpaperPage(t *testing.T) {
	rec := do(newTestRouter(t), http.MethodGet, "/7", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: %d %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	for _, want := range []string{
		`src="data:image/png;base64,`,
		`download="wonderpals-7.png"`,
		"/api/wallpaper/7?h=360&amp;w=120",
		"rgb(32,128,192)",
		"https://wall.example/7",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("wallpaper page missing %q", want)
		}
	}
}

func TestWallpaperPage_Errors(t *testing.T) {
	r := newTestRouter(t)
	if rec := do(r, http.MethodGet, "/abc", nil); rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid id: %d", rec.Code)
	}
	if rec := do(r, http.MethodGet, "/404", nil); rec.Code != http.StatusNotFound {
		t.Fatalf("no image: %d", rec.Code)
	}
	if rec := do(r, http.MethodGet, "/9", nil); rec.Code != http.StatusNotFound {
		t.Fatalf("missing artwork: %d", rec.Code)
	}
}

func TestWallpaperPNG(t *testing.T) {
	rec := do(newTestRouter(t), http.MethodGet, "/api/wallpaper/8?w=1920&h=1080", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: %d %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("content type: %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); cd != `attachment; filename="wonderpals-8.png"` {
		t.Fatalf("content disposition: %q", cd)
	}
	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 540 || img.Bounds().Dy() != 1080 {
		t.Fatalf("desktop sizing not applied: %v", img.Bounds())
	}
}

func TestWallpaperDataURL(t *testing.T) {
	rec := do(newTestRouter(t), http.MethodGet, "/api/wallpaper/7/dataurl", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: %d %s", rec.Code, rec.Body.String())
	}
	var out struct {
		TokenID    int    `json:"token_id"`
		Width      int    `json:"width"`
		Background string `json:"background"`
		DataURL    string `json:"data_url"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("json: %v", err)
	}
	if out.TokenID != 7 || out.Width != 120 || out.Background != "rgb(32,128,192)" {
		t.Fatalf("payload: %+v", out)
	}
	if !strings.HasPrefix(out.DataURL, "data:image/png;base64,") {
		t.Fatalf("data url prefix missing")
	}
}

func TestMetadataEndpoint(t *testing.T) {
	r := newTestRouter(t)
	rec := do(r, http.MethodGet, "/api/metadata/7", nil)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "WonderPal #7") {
		t.Fatalf("metadata: %d %s", rec.Code, rec.Body.String())
	}
	if rec := do(r, http.MethodGet, "/api/metadata/0", nil); rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid id: %d", rec.Code)
	}
	if rec := do(r, http.MethodGet, "/api/metadata/404", nil); rec.Code != http.StatusNotFound {
		t.Fatalf("no image: %d", rec.Code)
	}
}

func TestQR(t *testing.T) {
	r := newTestRouter(t)
	rec := do(r, http.MethodGet, "/api/qr?id=7&size=128", nil)
	if rec.Code != http.StatusOK || rec.Header().Get("Content-Type") != "image/png" {
		t.Fatalf("qr: %d", rec.Code)
	}
	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 128 {
		t.Fatalf("size: %d", img.Bounds().Dx())
	}
	if rec := do(r, http.MethodGet, "/api/qr", nil); rec.Code != http.StatusBadRequest {
		t.Fatalf("missing text: %d", rec.Code)
	}
}

func TestWallpaper_LogoUnavailable(t *testing.T) {
	r := newRouterWithLogo(t, func(base string) wallpaper.LogoSource {
		return wallpaper.NewLogoSource(base+"/missing-logo.png", nil)
	})

	rec := do(r, http.MethodGet, "/api/wallpaper/7", nil)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("api: got %d %s", rec.Code, rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "missing-logo") {
		t.Fatalf("upstream detail leaked: %s", rec.Body.String())
	}
	if rec := do(r, http.MethodGet, "/7", nil); rec.Code != http.StatusBadGateway {
		t.Fatalf("page: got %d", rec.Code)
	}
}

func TestWallpaper_LogoFromURL(t *testing.T) {
	r := newRouterWithLogo(t, func(base string) wallpaper.LogoSource {
		return wallpaper.NewLogoSource(base+"/logo.png", nil)
	})
	if rec := do(r, http.MethodGet, "/api/wallpaper/7", nil); rec.Code != http.StatusOK {
		t.Fatalf("got %d %s", rec.Code, rec.Body.String())
	}
}

func TestWallpaper_UpstreamFailure(t *testing.T) {
	r := newTestRouter(t)
	for _, target := range []string{"/api/wallpaper/500", "/api/wallpaper/500/dataurl", "/api/metadata/500", "/500"} {
		rec := do(r, http.MethodGet, target, nil)
		if rec.Code != http.StatusBadGateway {
			t.Fatalf("%s: got %d", target, rec.Code)
		}
		body := rec.Body.String()
		if strings.Contains(body, "127.0.0.1") || strings.Contains(body, "contract_address") {
			t.Fatalf("%s: upstream detail leaked: %s", target, body)
		}
	}
}

func TestWallpaper_Deadline(t *testing.T) {
	r := newTestRouter(t)
	for _, target := range []string{"/api/wallpaper/504", "/504"} {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		req := httptest.NewRequest(http.MethodGet, target, nil).WithContext(ctx)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		cancel()
		if rec.Code != http.StatusGatewayTimeout {
			t.Fatalf("%s: got %d %s", target, rec.Code, rec.Body.String())
		}
	}
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{token.ErrInvalidTokenID, http.StatusBadRequest},
		{fmt.Errorf("token 1: %w", token.ErrNoImage), http.StatusNotFound},
		{fmt.Errorf("fetch: %w", &util.StatusError{StatusCode: http.StatusNotFound}), http.StatusNotFound},
		{fmt.Errorf("fetch: %w", &util.StatusError{StatusCode: http.StatusServiceUnavailable}), http.StatusBadGateway},
		{fmt.Errorf("%w: load logo: not found", wallpaper.ErrLogoUnavailable), http.StatusBadGateway},
		{fmt.Errorf("fetch: %w", context.DeadlineExceeded), http.StatusGatewayTimeout},
		{errors.New("connection refused"), http.StatusBadGateway},
	}
	for _, tc := range cases {
		if got := statusFor(tc.err); got != tc.want {
			t.Fatalf("statusFor(%v): got %d want %d", tc.err, got, tc.want)
		}
	}
}
