package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.Flags().StringP("username", "u", "", "display name")
	registerCmd.Flags().StringP("email", "e", "", "account email")
	registerCmd.Flags().StringP("password", "p", "", "account password")
	_ = registerCmd.MarkFlagRequired("username")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("password")
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("username")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		c := newAPIClient(cmd)
		if err := c.Register(cmd.Context(), username, email, password); err != nil {
			return err
		}

		fmt.Println("Account created. Run 'cloudvault login' to sign in.")
		return nil
	},
}
