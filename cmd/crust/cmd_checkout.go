package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"crust-connect/internal/client"
)

func newCheckoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "checkout",
		Short: "Place an order from the cart and pay",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if _, ok := a.session.User(); !ok {
				return fmt.Errorf("please log in before checking out")
			}

			a.cart.Refresh(ctx)
			if a.cart.TotalItems() == 0 {
				fmt.Println("Your cart is empty.")
				return nil
			}

			fmt.Printf("Complete your payment in the browser: %s\n", a.approval.URL())

			order, paid := a.checkout.Checkout(ctx)
			if order == nil {
				return fmt.Errorf("checkout failed")
			}
			if !paid {
				return fmt.Errorf("payment not completed; order #%d is kept, retry with 'crust checkout'", order.ID)
			}

			// land on the order history, same as the storefront does
			orders, err := a.api.Orders(ctx)
			if err != nil {
				return fmt.Errorf("%s", client.Message(err))
			}
			return renderOrders(orders)
		},
	}
}
