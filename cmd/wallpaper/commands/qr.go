package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	imagepkg "github.com/youruser/wallpaperapp/internal/image"
	"github.com/youruser/wallpaperapp/internal/util"
)

func qrCmd() *cobra.Command {
	var (
		text string
		size int
		out  string
	)
	cmd := &cobra.Command{
		Use:   "qr",
		Short: "Write a QR code PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			if text == "" {
				return errors.New("--text is required")
			}
			b, err := imagepkg.GenerateQRPNG(text, size)
			if err != nil {
				return err
			}
			if err := util.WriteFile(out, b); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "text to encode")
	cmd.Flags().IntVar(&size, "size", imagepkg.DefaultQRSize, "image size in pixels")
	cmd.Flags().StringVarP(&out, "out", "o", "qr.png", "output file")
	return cmd
}
