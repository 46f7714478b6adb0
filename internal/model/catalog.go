package model

import "github.com/shopspring/decimal"

// Category splits the menu into vegetarian and non-vegetarian pizzas.
type Category string

const (
	CategoryVeg    Category = "VEG"
	CategoryNonVeg Category = "NON_VEG"
)

// Pizza is a catalog item. The backend owns the catalog; this client only
// reads it (admins may write through the admin endpoints).
type Pizza struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    Category        `json:"category"`
	ImageURL    string          `json:"imageUrl"`
	Available   bool            `json:"available"`
}

// CartItem pairs a pizza snapshot with a quantity. It only ever exists
// inside the cart mirror, never on its own.
type CartItem struct {
	Pizza    Pizza
	Quantity int
}
