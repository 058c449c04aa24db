package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(usersCmd)
	usersCmd.Flags().StringP("search", "s", "", "filter by username or email substring")
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List other registered users",
	RunE: func(cmd *cobra.Command, args []string) error {
		search, _ := cmd.Flags().GetString("search")

		c := newAPIClient(cmd)
		users, err := c.ListUsers(cmd.Context(), search)
		if err != nil {
			return err
		}

		if len(users) == 0 {
			fmt.Println("No users found.")
			return nil
		}
		for _, u := range users {
			fmt.Printf("%d\t%s\t%s\n", u.ID, u.UserName, u.Email)
		}
		return nil
	},
}
