package main

import (
	"context"
	"log"
	"net/http"

	"github.com/youruser/wallpaperapp/internal/app"
	"github.com/youruser/wallpaperapp/internal/config"
)

func main() {
	cfg := config.Load()
	w := app.NewWire(context.Background(), cfg)
	defer w.Close()

	r := w.Router()
	log.Println("starting server on http://localhost:" + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
