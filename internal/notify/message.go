package notify

import (
	"fmt"
	"strings"

	"github.com/mohammad516/lc-website/internal/order"
)

// FormatOrderMessage renders the order summary sent to the store owner.
// Asterisks are Telegram Markdown bold, same markup WhatsApp uses.
func FormatOrderMessage(o *order.Order) string {
	var b strings.Builder

	b.WriteString("*New Order - LC ORGANIC*\n")
	fmt.Fprintf(&b, "Order Number: %s\n\n", o.OrderNumber)

	b.WriteString("*Customer Information:*\n")
	fmt.Fprintf(&b, "Name: %s\n", o.CustomerName)
	fmt.Fprintf(&b, "Phone: %s\n\n", o.CustomerPhone)

	b.WriteString("*Delivery Address:*\n")
	fmt.Fprintf(&b, "Country/Region: %s\n", o.Country)
	fmt.Fprintf(&b, "Governorate: %s\n", o.Governorate)
	fmt.Fprintf(&b, "District: %s\n", o.District)
	fmt.Fprintf(&b, "City/Town: %s\n", o.City)
	fmt.Fprintf(&b, "Street: %s", o.StreetName)
	if o.BuildingName != nil && *o.BuildingName != "" {
		fmt.Fprintf(&b, "\nBuilding: %s", *o.BuildingName)
	}
	b.WriteString("\n\n")

	b.WriteString("*Order Details:*\n")
	for i, item := range o.Items {
		if i > 0 {
			b.WriteString("\n\n")
		}
		name := item.Name
		if item.Variant != nil && *item.Variant != "" {
			name = fmt.Sprintf("%s (%s)", name, *item.Variant)
		}
		fmt.Fprintf(&b, "• %s\n  Quantity: %d\n  Price: $%s", name, item.Quantity, formatAmount(item.Price))
	}
	b.WriteString("\n\n")

	b.WriteString("*Order Summary:*\n")
	fmt.Fprintf(&b, "Subtotal: $%s\n", formatAmount(o.Subtotal))
	fmt.Fprintf(&b, "Shipping: $%.2f\n", o.Shipping)
	fmt.Fprintf(&b, "Total: $%s\n\n", formatAmount(o.Total))

	fmt.Fprintf(&b, "Payment Method: %s", o.PaymentMethod)

	return b.String()
}

// formatAmount drops trailing zeros so whole-dollar prices read as "24"
// rather than "24.00".
func formatAmount(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}
