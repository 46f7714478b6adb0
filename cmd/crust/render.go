package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"crust-connect/internal/client"
	"crust-connect/internal/model"
)

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
}

func renderPizzas(pizzas []model.Pizza) error {
	if len(pizzas) == 0 {
		fmt.Println("The menu is empty.")
		return nil
	}

	w := newTable()
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tAVAILABLE\tDESCRIPTION")
	for _, p := range pizzas {
		available := "yes"
		if !p.Available {
			available = "no"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t$%s\t%s\t%s\n",
			p.ID, p.Name, p.Category, p.Price.StringFixed(2), available, p.Description)
	}
	return w.Flush()
}

func renderCart(items []model.CartItem, totalItems int, totalPrice decimal.Decimal) error {
	if len(items) == 0 {
		fmt.Println("Your cart is empty.")
		return nil
	}

	w := newTable()
	fmt.Fprintln(w, "ID\tPIZZA\tQTY\tUNIT\tSUBTOTAL")
	for _, item := range items {
		subtotal := item.Pizza.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		fmt.Fprintf(w, "%d\t%s\t%d\t$%s\t$%s\n",
			item.Pizza.ID, item.Pizza.Name, item.Quantity,
			item.Pizza.Price.StringFixed(2), subtotal.StringFixed(2))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d item(s), total $%s\n", totalItems, totalPrice.StringFixed(2))
	return nil
}

func renderOrders(orders []client.OrderResponse) error {
	if len(orders) == 0 {
		fmt.Println("No orders yet.")
		return nil
	}

	w := newTable()
	fmt.Fprintln(w, "ID\tPLACED\tSTATUS\tPAYMENT\tTOTAL")
	for _, o := range orders {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t$%s\n",
			o.ID, o.CreatedAt, o.OrderStatus, o.PaymentStatus, o.TotalAmount.StringFixed(2))
	}
	return w.Flush()
}

func renderOrderDetail(o *client.OrderResponse) error {
	fmt.Printf("Order #%d  status=%s  payment=%s  placed=%s\n\n",
		o.ID, o.OrderStatus, o.PaymentStatus, o.CreatedAt)

	w := newTable()
	fmt.Fprintln(w, "PIZZA\tQTY\tUNIT\tSUBTOTAL")
	for _, item := range o.Items {
		fmt.Fprintf(w, "%s\t%d\t$%s\t$%s\n",
			item.Pizza.Name, item.Quantity,
			item.Price.StringFixed(2), item.Subtotal.StringFixed(2))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nTotal $%s\n", o.TotalAmount.StringFixed(2))
	return nil
}

// renderTracker draws the delivery progression for one order.
func renderTracker(o *client.OrderResponse) {
	if o.OrderStatus == model.StatusCancelled {
		fmt.Printf("Order #%d was cancelled.\n", o.ID)
		return
	}

	reached := o.OrderStatus.ProgressIndex()
	fmt.Printf("Order #%d\n", o.ID)
	for i, status := range model.Progression() {
		mark := " "
		if i <= reached {
			mark = "x"
		}
		fmt.Printf("  [%s] %s\n", mark, status)
	}
}
