package model

import "fmt"

// OrderStatus is the server-authoritative delivery lifecycle. The client
// never transitions an order itself; it renders the current status and
// decides which controls to offer.
type OrderStatus string

const (
	StatusPlaced         OrderStatus = "PLACED"
	StatusConfirmed      OrderStatus = "CONFIRMED"
	StatusPreparing      OrderStatus = "PREPARING"
	StatusOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	StatusDelivered      OrderStatus = "DELIVERED"
	StatusCancelled      OrderStatus = "CANCELLED"
)

// Progression is the linear happy path of an order. CANCELLED sits outside
// it, reachable only from the first two stages.
func Progression() []OrderStatus {
	return []OrderStatus{
		StatusPlaced,
		StatusConfirmed,
		StatusPreparing,
		StatusOutForDelivery,
		StatusDelivered,
	}
}

// Cancellable reports whether the cancel control may be offered to the
// user. The backend enforces the same rule.
func (s OrderStatus) Cancellable() bool {
	return s == StatusPlaced || s == StatusConfirmed
}

// Terminal reports whether the order can no longer change status.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// ProgressIndex returns the position of s in the delivery progression, or
// -1 for CANCELLED and unknown values.
func (s OrderStatus) ProgressIndex() int {
	for i, st := range Progression() {
		if st == s {
			return i
		}
	}
	return -1
}

// ParseOrderStatus validates a user-supplied status string.
func ParseOrderStatus(v string) (OrderStatus, error) {
	switch s := OrderStatus(v); s {
	case StatusPlaced, StatusConfirmed, StatusPreparing,
		StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return s, nil
	}
	return "", fmt.Errorf("unknown order status %q", v)
}

// PaymentStatus is set by the payment collaborator.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentSuccess PaymentStatus = "SUCCESS"
	PaymentFailed  PaymentStatus = "FAILED"
)
