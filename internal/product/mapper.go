package product

import (
	"strings"
	"time"
)

const placeholderImage = "/placeholder.svg"

// View is the catalog card shape served to the storefront. Price carries
// the display price; the base price moves to OriginalPrice so expired
// sales never leak a stale discount.
type View struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"originalPrice"`
	SalePrice     *float64 `json:"salePrice"`
	EnableSale    bool     `json:"enableSale"`
	Image         string   `json:"image"`
	Images        []string `json:"images"`
	Slug          string   `json:"slug"`
	Description   string   `json:"description"`
	Stock         int      `json:"stock"`
}

// DetailView is the product page shape.
type DetailView struct {
	ID            string   `json:"id"`
	SKU           string   `json:"sku"`
	Title         string   `json:"title"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"originalPrice"`
	SalePrice     *float64 `json:"salePrice"`
	EnableSale    bool     `json:"enableSale"`
	Description   string   `json:"description"`
	Images        []string `json:"images"`
	Image         string   `json:"image"`
	Stock         int      `json:"stock"`
	Slug          string   `json:"slug"`
	Category      string   `json:"category"`
}

func primaryImage(p *Product) string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return placeholderImage
}

func imagesOrEmpty(p *Product) []string {
	if p.Images == nil {
		return []string{}
	}
	return p.Images
}

func ToView(p *Product, now time.Time) *View {
	return &View{
		ID:            p.ID,
		Name:          p.Title,
		Price:         DisplayPrice(p, now),
		OriginalPrice: p.Price,
		SalePrice:     p.SalePrice,
		EnableSale:    EffectiveEnableSale(p, now),
		Image:         primaryImage(p),
		Images:        imagesOrEmpty(p),
		Slug:          p.Slug,
		Description:   p.Description,
		Stock:         p.Stock,
	}
}

func ToDetailView(p *Product, now time.Time) *DetailView {
	return &DetailView{
		ID:            p.ID,
		SKU:           strings.ToUpper(p.Slug),
		Title:         p.Title,
		Price:         DisplayPrice(p, now),
		OriginalPrice: p.Price,
		SalePrice:     p.SalePrice,
		EnableSale:    EffectiveEnableSale(p, now),
		Description:   p.Description,
		Images:        imagesOrEmpty(p),
		Image:         primaryImage(p),
		Stock:         p.Stock,
		Slug:          p.Slug,
		Category:      p.Category,
	}
}
