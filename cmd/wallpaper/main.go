package main

import (
	"os"

	"github.com/youruser/wallpaperapp/cmd/wallpaper/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
