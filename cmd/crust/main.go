package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	app, err := newApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:           "crust",
		Short:         "Order pizza from your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// account
	rootCmd.AddCommand(newLoginCmd(app))
	rootCmd.AddCommand(newRegisterCmd(app))
	rootCmd.AddCommand(newLogoutCmd(app))
	rootCmd.AddCommand(newWhoamiCmd(app))

	// storefront
	rootCmd.AddCommand(newMenuCmd(app))
	rootCmd.AddCommand(newPizzaCmd(app))
	rootCmd.AddCommand(newCartCmd(app))
	rootCmd.AddCommand(newCheckoutCmd(app))
	rootCmd.AddCommand(newOrdersCmd(app))

	// admin
	rootCmd.AddCommand(newAdminCmd(app))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
