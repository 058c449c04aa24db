package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringP("email", "e", "", "account email")
	loginCmd.Flags().StringP("password", "p", "", "account password")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and cache the bearer token",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		c := newAPIClient(cmd)
		token, user, err := c.Login(cmd.Context(), email, password)
		if err != nil {
			return err
		}

		cfg.Email = user.Email
		cfg.Token = token
		if v, _ := cmd.Flags().GetString("server"); v != "" {
			cfg.ServerURL = v
		}
		if err := saveConfig(); err != nil {
			return fmt.Errorf("token received but config save failed: %w", err)
		}

		fmt.Printf("Logged in as %s\n", user.Email)
		return nil
	},
}
