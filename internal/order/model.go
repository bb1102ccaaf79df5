package order

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusDelivered Status = "DELIVERED"
	StatusCancelled Status = "CANCELLED"
)

// Item is one order line, frozen at purchase time.
type Item struct {
	ID        int64   `json:"-"`
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Variant   *string `json:"variant"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type Order struct {
	ID            uuid.UUID  `json:"id"`
	OrderNumber   string     `json:"orderNumber"`
	Status        Status     `json:"status"`
	CustomerName  string     `json:"customerName"`
	CustomerPhone string     `json:"customerPhone"`
	Country       string     `json:"country"`
	Governorate   string     `json:"governorate"`
	District      string     `json:"district"`
	City          string     `json:"city"`
	StreetName    string     `json:"streetName"`
	BuildingName  *string    `json:"buildingName"`
	Items         []Item     `json:"items"`
	Subtotal      float64    `json:"subtotal"`
	Shipping      float64    `json:"shipping"`
	Total         float64    `json:"total"`
	PaymentMethod string     `json:"paymentMethod"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	DeliveredAt   *time.Time `json:"deliveredAt"`
}

// CheckoutItem is a cart line as submitted by the client; the cart calls
// the product field "id" while the order schema stores "productId".
type CheckoutItem struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Variant  string   `json:"variant"`
	Quantity int      `json:"quantity"`
	Price    *float64 `json:"price"`
}

// CheckoutInput mirrors the storefront checkout payload. Totals are
// pointers so "absent" and "zero" stay distinguishable.
type CheckoutInput struct {
	CustomerName  string         `json:"customerName"`
	CustomerPhone string         `json:"customerPhone"`
	Country       string         `json:"country"`
	Governorate   string         `json:"governorate"`
	District      string         `json:"district"`
	City          string         `json:"city"`
	StreetName    string         `json:"streetName"`
	BuildingName  string         `json:"buildingName"`
	Items         []CheckoutItem `json:"items"`
	Subtotal      *float64       `json:"subtotal"`
	Shipping      *float64       `json:"shipping"`
	Total         *float64       `json:"total"`
	PaymentMethod string         `json:"paymentMethod"`
}

// CreateResult is returned to the client after a successful checkout.
type CreateResult struct {
	OrderID     string `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
}

type ListOptions struct {
	Status string
	Limit  int
	Page   int
}
