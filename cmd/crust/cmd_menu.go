package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"crust-connect/internal/client"
	"crust-connect/internal/model"
)

func newMenuCmd(a *app) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Browse the pizza menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pizzas, err := a.api.Pizzas(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s", client.Message(err))
			}

			if category != "" {
				want := model.Category(category)
				filtered := pizzas[:0]
				for _, p := range pizzas {
					if p.Category == want {
						filtered = append(filtered, p)
					}
				}
				pizzas = filtered
			}

			return renderPizzas(pizzas)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "filter by category (VEG or NON_VEG)")
	return cmd
}

func newPizzaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pizza <id>",
		Short: "Show one pizza",
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

			return renderPizzas([]model.Pizza{*pizza})
		},
	}
}
