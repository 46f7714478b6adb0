package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"crust-connect/internal/client"
)

func newCartCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show and change your cart",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.cart.Refresh(cmd.Context())
			return renderCart(a.cart.Items(), a.cart.TotalItems(), a.cart.TotalPrice())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <pizza-id>",
		Short: "Add a pizza to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pizza id %q", args[0])
			}

			pizza, err := a.api.Pizza(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("%s", client.Message(err))
			}

			a.cart.Add(cmd.Context(), *pizza)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "update <pizza-id> <quantity>",
		Short: "Change the quantity of a cart item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pizza id %q", args[0])
			}
			quantity, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}
			if quantity < 1 {
				return fmt.Errorf("quantity must be at least 1; use 'cart remove' to drop an item")
			}

			a.cart.UpdateQuantity(cmd.Context(), id, quantity)
			return renderCart(a.cart.Items(), a.cart.TotalItems(), a.cart.TotalPrice())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <pizza-id>",
		Short: "Remove an item from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pizza id %q", args[0])
			}

			a.cart.Remove(cmd.Context(), id)
			return renderCart(a.cart.Items(), a.cart.TotalItems(), a.cart.TotalPrice())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			a.cart.Clear(cmd.Context())
			fmt.Println("Cart cleared.")
		},
	})

	return cmd
}
