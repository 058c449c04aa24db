package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(filesCmd)
	rootCmd.AddCommand(deleteCmd)
}

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "List your uploaded files",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newAPIClient(cmd)
		files, err := c.ListFiles(cmd.Context())
		if err != nil {
			return err
		}

		if len(files) == 0 {
			fmt.Println("No files uploaded yet.")
			return nil
		}
		for _, f := range files {
			fmt.Printf("%d\t%s\n", f.ID, f.FileLink)
		}
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an uploaded file and its record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid file id: %s", args[0])
		}

		c := newAPIClient(cmd)
		if err := c.DeleteFile(cmd.Context(), id); err != nil {
			return err
		}

		fmt.Println("Deleted.")
		return nil
	},
}
