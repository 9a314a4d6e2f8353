package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/youruser/wallpaperapp/internal/app"
	"github.com/youruser/wallpaperapp/internal/config"
)

var (
	cfg  *config.Config
	wire *app.Wire

	metadataURL string
	logoSource  string
)

func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

func newRootCmd() *cobra.Command {
	cfg = config.Load()

	root := &cobra.Command{
		Use:          "wallpaper",
		Short:        "WonderPals wallpaper generator",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if metadataURL != "" {
				cfg.MetadataAPIURL = metadataURL
			}
			if logoSource != "" {
				cfg.LogoSource = logoSource
			}
			wire = app.NewWire(context.Background(), cfg)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if wire != nil {
				wire.Close()
			}
		},
	}

	root.PersistentFlags().StringVar(&metadataURL, "metadata-url", "", "metadata API base URL (default $METADATA_API_URL)")
	root.PersistentFlags().StringVar(&logoSource, "logo", "", "logo file path or URL (default $LOGO_SOURCE)")

	root.AddCommand(generateCmd(), metadataCmd(), qrCmd(), serveCmd())
	return root
}
