// Package store holds the storefront records used as mapping sources by the
// analyzer tests and the examples.
package store

import (
	"time"
)

// Entity carries the identity shared by persisted records.
type Entity struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	revision int
}

// Audit records who touched a record.
type Audit struct {
	CreatedBy string `json:"created_by"`
	UpdatedBy string `json:"updated_by"`
}

// Signoff records the approval of a shipment.
type Signoff struct {
	UpdatedBy string    `json:"updated_by"`
	SignedAt  time.Time `json:"signed_at"`
}

// Product is an item available for sale. Prices are in cents.
type Product struct {
	Entity

	SKU         string `json:"sku"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PriceCents  int64  `json:"price_cents"`
	Inventory   int    `json:"inventory_count"`
}

// Customer is the user placing orders.
type Customer struct {
	Entity

	Email    string  `json:"email"`
	FullName string  `json:"full_name"`
	Address  *string `json:"address"`
	IsActive bool    `json:"is_active"`
}

// Order embeds Entity by pointer and shadows its CreatedAt.
type Order struct {
	*Entity
	Audit

	CustomerID int64       `json:"customer_id"`
	Status     OrderStatus `json:"status"`
	TotalCents int64       `json:"total_cents"`
	Items      []OrderItem `json:"items"`
	CreatedAt  time.Time   `json:"ordered_at"`

	note string
}

// OrderItem is a product line within an order.
type OrderItem struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

// Shipment promotes UpdatedBy from both Audit and Signoff, so neither is
// accessible through it.
type Shipment struct {
	Audit
	Signoff

	TrackingCode string `json:"tracking_code"`
}

// Category is a self-referencing tree node.
type Category struct {
	*Category

	Name string `json:"name"`
}

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)
