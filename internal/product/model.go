package product

import "time"

type Product struct {
	ID          string
	Title       string
	Slug        string
	Description string
	Category    string
	Price       float64
	EnableSale  bool
	SalePrice   *float64
	// SaleEndDate is kept as the raw value written by the dashboard; it is
	// usually an ISO timestamp but has historically also held bare dates
	// and malformed strings. Parsing happens at pricing time.
	SaleEndDate *string
	Images      []string
	Stock       int
	IsFeatured  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ListOptions struct {
	FeaturedOnly bool
}
