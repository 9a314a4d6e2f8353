package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	imagepkg "github.com/youruser/wallpaperapp/internal/image"
	"github.com/youruser/wallpaperapp/internal/token"
	"github.com/youruser/wallpaperapp/internal/util"
	"github.com/youruser/wallpaperapp/internal/wallpaper"
)

func generateCmd() *cobra.Command {
	var (
		id            string
		width, height int
		out           string
		caption       bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render a token's wallpaper to a PNG file",
		RunE: func(cmd *cobra.Command, args []string) error {
			tid, err := token.ParseTokenID(id)
			if err != nil {
				return err
			}
			req := wallpaper.Request{
				TokenID: tid,
				Size:    imagepkg.CanvasSize(width, height, wire.DefaultSize()),
				Caption: caption,
			}
			w, err := wire.Generator.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}
			if out == "" {
				out = w.FileName()
			}
			if err := util.WriteFile(out, w.PNG); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%v, background %s)\n", out, w.Size, w.BackgroundCSS())
			if w.PublishedURL != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "published %s\n", w.PublishedURL)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "token id (1-10000)")
	cmd.Flags().IntVar(&width, "width", 0, "screen width in pixels")
	cmd.Flags().IntVar(&height, "height", 0, "screen height in pixels")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default wonderpals-<id>.png)")
	cmd.Flags().BoolVar(&caption, "caption", false, "draw the token name under the logo")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}
