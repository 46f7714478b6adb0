package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"crust-connect/internal/client"
)

func newOrdersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Your order history",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List your orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, err := a.api.Orders(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s", client.Message(err))
			}
			return renderOrders(orders)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show one order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := a.fetchOrder(cmd, args[0])
			if err != nil {
				return err
			}
			return renderOrderDetail(order)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "track <id>",
		Short: "Track an order through its delivery stages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := a.fetchOrder(cmd, args[0])
			if err != nil {
				return err
			}
			renderTracker(order)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel an order (only while PLACED or CONFIRMED)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := a.fetchOrder(cmd, args[0])
			if err != nil {
				return err
			}

			// same rule the backend enforces; don't offer a doomed call
			if !order.OrderStatus.Cancellable() {
				return fmt.Errorf("order #%d is %s and can no longer be cancelled",
					order.ID, order.OrderStatus)
			}

			cancelled, err := a.api.CancelOrder(cmd.Context(), order.ID)
			if err != nil {
				return fmt.Errorf("%s", client.Message(err))
			}
			fmt.Printf("Order #%d cancelled.\n", cancelled.ID)
			return nil
		},
	})

	return cmd
}

func (a *app) fetchOrder(cmd *cobra.Command, arg string) (*client.OrderResponse, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid order id %q", arg)
	}

	order, err := a.api.Order(cmd.Context(), id)
	if err != nil {
		return nil, fmt.Errorf("%s", client.Message(err))
	}
	return order, nil
}
