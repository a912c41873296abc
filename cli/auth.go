package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"storefront/notify"
)

func addAuthCommands(root *cobra.Command) {
	// login
	var email, password string
	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in (mock, any credentials)",
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := app.auth.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			app.notices.Add("Welcome back, "+u.Name, notify.Success, notify.DefaultTimeout)
			return nil
		},
	}
	loginCmd.Flags().StringVar(&email, "email", "", "email")
	loginCmd.Flags().StringVar(&password, "password", "", "password")
	root.AddCommand(loginCmd)

	// register
	var rEmail, rPassword, rName string
	registerCmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account (mock) and sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := app.auth.Register(cmd.Context(), rEmail, rPassword, rName)
			if err != nil {
				return err
			}
			app.notices.Add("Account created for "+u.Name, notify.Success, notify.DefaultTimeout)
			return nil
		},
	}
	registerCmd.Flags().StringVar(&rEmail, "email", "", "email")
	registerCmd.Flags().StringVar(&rPassword, "password", "", "password")
	registerCmd.Flags().StringVar(&rName, "name", "", "display name")
	root.AddCommand(registerCmd)

	// logout
	root.AddCommand(&cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.auth.Logout(cmd.Context())
		},
	})

	// whoami
	root.AddCommand(&cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			u, ok := app.auth.User()
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "not signed in")
				return nil
			}
			return printJSON(cmd.OutOrStdout(), u)
		},
	})
}
