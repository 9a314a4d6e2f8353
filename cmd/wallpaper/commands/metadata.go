package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/youruser/wallpaperapp/internal/token"
)

func metadataCmd() *cobra.Command {
	var id string
	cmd := &cobra.Command{
		Use:   "metadata",
		Short: "Print a token's metadata as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			tid, err := token.ParseTokenID(id)
			if err != nil {
				return err
			}
			m, err := wire.Metadata.Fetch(cmd.Context(), tid)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(m)
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "token id (1-10000)")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}
