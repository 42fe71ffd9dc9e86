// Package warehouse holds the fulfilment records used as mapping
// destinations by the analyzer tests and the examples.
package warehouse

import (
	"time"
)

// Address is a shipping or billing address.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// Customer is the fulfilment view of a store customer.
type Customer struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	Addresses []Address `json:"addresses,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Order is a customer's purchase as seen by the warehouse.
type Order struct {
	ID          uint   `json:"id"`
	CustomerID  uint   `json:"customer_id"`
	OrderNumber string `json:"order_number"`
	Status      string `json:"status"`
	TotalAmount int64  `json:"total_amount"`

	ShippingAddress Address `json:"shipping_address"`

	PlacedAt  *time.Time `json:"placed_at,omitempty"`
	ShippedAt *time.Time `json:"shipped_at,omitempty"`
}

// OrderItem is a line item within an order.
type OrderItem struct {
	ProductID  uint  `json:"product_id"`
	Quantity   int   `json:"quantity"`
	UnitPrice  int64 `json:"unit_price"`
	TotalPrice int64 `json:"total_price"`
}
