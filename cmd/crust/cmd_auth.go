package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newLoginCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "login <email> <password>",
		Short: "Log in to your account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.session.Login(cmd.Context(), args[0], args[1]) {
				return fmt.Errorf("login failed")
			}
			return nil
		},
	}
}

func newRegisterCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "register <name> <email> <password>",
		Short: "Create a new account",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.session.Register(cmd.Context(), args[0], args[1], args[2]) {
				return fmt.Errorf("registration failed")
			}
			return nil
		},
	}
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and forget the stored session",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			a.session.Logout()
			fmt.Println("Logged out. See you next time!")
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			user, ok := a.session.User()
			if !ok {
				fmt.Println("Not logged in.")
				return
			}

			fmt.Printf("%s <%s>  role=%s  id=%d\n", user.Name, user.Email, user.Role, user.ID)
			if exp, ok := a.session.TokenExpiry(); ok {
				fmt.Printf("token expires %s\n", exp.Local().Format(time.RFC1123))
			}
		},
	}
}
