package product

import (
	"strings"
	"time"
)

// Layouts accepted for sale end dates, tried in order. The dashboard
// writes RFC3339 but older documents carry bare dates and local
// datetimes.
var saleEndLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseSaleEnd reports the parsed end date and whether parsing succeeded.
func ParseSaleEnd(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range saleEndLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// IsSaleActive reports whether a discounted price is honored at the given
// instant. A sale is active when the merchant toggle is on, the sale
// price is a positive number, and the end date (if any) has not passed.
//
// An end date that fails to parse keeps the sale active: legacy documents
// predate expiration support and must behave as "no expiration".
func IsSaleActive(p *Product, now time.Time) bool {
	if !p.EnableSale {
		return false
	}

	if p.SalePrice == nil || *p.SalePrice <= 0 {
		return false
	}

	if p.SaleEndDate == nil || strings.TrimSpace(*p.SaleEndDate) == "" {
		return true
	}

	end, ok := ParseSaleEnd(*p.SaleEndDate)
	if !ok {
		// fail open, see above
		return true
	}

	return end.After(now)
}

// DisplayPrice returns the sale price while the sale is active, the base
// price otherwise.
func DisplayPrice(p *Product, now time.Time) float64 {
	if IsSaleActive(p, now) {
		return *p.SalePrice
	}
	return p.Price
}

// EffectiveEnableSale is the sale flag clients should see: false once the
// sale expired by date even though the stored toggle is still true.
func EffectiveEnableSale(p *Product, now time.Time) bool {
	return IsSaleActive(p, now)
}
