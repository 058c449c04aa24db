package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/cloudvault/internal/filex"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(downloadCmd)
	downloadCmd.Flags().StringP("output", "o", "", "output path (default downloads/<key>)")
}

var downloadCmd = &cobra.Command{
	Use:   "download <key>",
	Short: "Download a stored object by its storage key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]

		c := newAPIClient(cmd)
		data, err := c.Download(cmd.Context(), key)
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("output")
		if out == "" {
			dir, err := filex.EnsureSubDir("downloads")
			if err != nil {
				return err
			}
			out = filepath.Join(dir, filepath.Base(key))
		}

		if err := os.WriteFile(out, data, 0o600); err != nil {
			return err
		}

		fmt.Printf("Saved %d bytes to %s\n", len(data), out)
		return nil
	},
}
