package main

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"crust-connect/internal/client"
	"crust-connect/internal/model"
)

func newAdminCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Admin dashboard (requires the ADMIN role)",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// the backend enforces the role; this just avoids doomed calls
			if !a.session.IsAdmin() {
				return fmt.Errorf("admin access required")
			}
			return nil
		},
	}

	cmd.AddCommand(newAdminOrdersCmd(a))
	cmd.AddCommand(newAdminSetStatusCmd(a))
	cmd.AddCommand(newAdminPizzaCmd(a))

	return cmd
}

func newAdminOrdersCmd(a *app) *cobra.Command {
	var (
		page   int
		size   int
		status string
	)

	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List all customer orders, paged",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter model.OrderStatus
			if status != "" {
				parsed, err := model.ParseOrderStatus(status)
				if err != nil {
					return err
				}
				filter = parsed
			}

			result, err := a.api.AdminOrders(cmd.Context(), page, size, filter)
			if err != nil {
				return fmt.Errorf("%s", client.Message(err))
			}

			if err := renderOrders(result.Content); err != nil {
				return err
			}
			fmt.Printf("\npage %d/%d, %d order(s) total\n",
				result.Number+1, result.TotalPages, result.TotalElements)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "page number (zero-based)")
	cmd.Flags().IntVar(&size, "size", 20, "page size")
	cmd.Flags().StringVar(&status, "status", "", "filter by order status")
	return cmd
}

func newAdminSetStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <order-id> <status>",
		Short: "Move an order to a new status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid order id %q", args[0])
			}
			status, err := model.ParseOrderStatus(args[1])
			if err != nil {
				return err
			}

			order, err := a.api.UpdateOrderStatus(cmd.Context(), id, status)
			if err != nil {
				return fmt.Errorf("%s", client.Message(err))
			}
			fmt.Printf("Order #%d is now %s.\n", order.ID, order.OrderStatus)
			return nil
		},
	}
}

func newAdminPizzaCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pizza",
		Short: "Manage the menu",
	}

	cmd.AddCommand(newAdminPizzaAddCmd(a))
	cmd.AddCommand(newAdminPizzaUpdateCmd(a))
	cmd.AddCommand(newAdminPizzaRemoveCmd(a))

	return cmd
}

func pizzaFlags(cmd *cobra.Command, req *pizzaFlagValues) {
	cmd.Flags().StringVar(&req.name, "name", "", "pizza name")
	cmd.Flags().StringVar(&req.description, "description", "", "description")
	cmd.Flags().StringVar(&req.price, "price", "", "price, e.g. 12.99")
	cmd.Flags().StringVar(&req.category, "category", "VEG", "VEG or NON_VEG")
	cmd.Flags().StringVar(&req.imageURL, "image", "", "image URL")
	cmd.Flags().BoolVar(&req.available, "available", true, "available for ordering")
}

type pizzaFlagValues struct {
	name        string
	description string
	price       string
	category    string
	imageURL    string
	available   bool
}

func (v pizzaFlagValues) request() (client.PizzaRequest, error) {
	if v.name == "" || v.price == "" {
		return client.PizzaRequest{}, fmt.Errorf("--name and --price are required")
	}
	price, err := decimal.NewFromString(v.price)
	if err != nil {
		return client.PizzaRequest{}, fmt.Errorf("invalid price %q", v.price)
	}
	category := model.Category(v.category)
	if category != model.CategoryVeg && category != model.CategoryNonVeg {
		return client.PizzaRequest{}, fmt.Errorf("category must be VEG or NON_VEG")
	}

	return client.PizzaRequest{
		Name:        v.name,
		Description: v.description,
		Price:       price,
		Category:    category,
		ImageURL:    v.imageURL,
		Available:   v.available,
	}, nil
}

func newAdminPizzaAddCmd(a *app) *cobra.Command {
	var values pizzaFlagValues

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a pizza to the menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := values.request()
			if err != nil {
				return err
			}

			pizza, err := a.api.CreatePizza(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("%s", client.Message(err))
			}
			fmt.Printf("Added %q as #%d.\n", pizza.Name, pizza.ID)
			return nil
		},
	}

	pizzaFlags(cmd, &values)
	return cmd
}

func newAdminPizzaUpdateCmd(a *app) *cobra.Command {
	var values pizzaFlagValues

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a pizza",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pizza id %q", args[0])
			}
			req, err := values.request()
			if err != nil {
				return err
			}

			pizza, err := a.api.UpdatePizza(cmd.Context(), id, req)
			if err != nil {
				return fmt.Errorf("%s", client.Message(err))
			}
			fmt.Printf("Updated #%d %q.\n", pizza.ID, pizza.Name)
			return nil
		},
	}

	pizzaFlags(cmd, &values)
	return cmd
}

func newAdminPizzaRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a pizza from the menu",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pizza id %q", args[0])
			}

			if err := a.api.DeletePizza(cmd.Context(), id); err != nil {
				return fmt.Errorf("%s", client.Message(err))
			}
			fmt.Printf("Removed pizza #%d.\n", id)
			return nil
		},
	}
}
