package cart

// Package cart mirrors the storefront's client-side cart contract. The
// client owns persistence; this package only implements the merge,
// quantity, and stock reconciliation rules the checkout path relies on.

// Item is one cart line as sent by the client.
type Item struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Variant  *string `json:"variant,omitempty"`
	Quantity int     `json:"quantity"`
}

type Cart struct {
	items []Item
}

func New(items ...Item) *Cart {
	c := &Cart{}
	for _, it := range items {
		c.Add(it, it.Quantity)
	}
	return c
}

// Add puts qty units of item into the cart, merging with an existing
// line for the same product.
func (c *Cart) Add(item Item, qty int) {
	if qty <= 0 {
		qty = 1
	}

	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].Quantity += qty
			return
		}
	}

	item.Quantity = qty
	c.items = append(c.items, item)
}

// UpdateQuantity sets the quantity of a line; zero or negative removes it.
func (c *Cart) UpdateQuantity(id string, qty int) {
	if qty <= 0 {
		c.Remove(id)
		return
	}

	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity = qty
			return
		}
	}
}

func (c *Cart) Remove(id string) {
	kept := c.items[:0]
	for _, it := range c.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	c.items = kept
}

// Count is the badge number: total units across all lines.
func (c *Cart) Count() int {
	total := 0
	for _, it := range c.items {
		total += it.Quantity
	}
	return total
}

func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, it := range c.items {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}

func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// StockFunc reports live stock for a product id; ok is false when the
// product no longer exists.
type StockFunc func(productID string) (stock int, ok bool)

// Adjustment records one reconciliation change for client display.
type Adjustment struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	From      int    `json:"from"`
	To        int    `json:"to"` // 0 means the line was dropped
}

// Reconcile clamps line quantities to live stock and drops lines whose
// product disappeared or is out of stock. Returns the changes made.
func (c *Cart) Reconcile(stock StockFunc) []Adjustment {
	var adjustments []Adjustment
	kept := c.items[:0]

	for _, it := range c.items {
		available, ok := stock(it.ID)
		switch {
		case !ok || available <= 0:
			adjustments = append(adjustments, Adjustment{
				ProductID: it.ID, Name: it.Name, From: it.Quantity, To: 0,
			})
		case it.Quantity > available:
			adjustments = append(adjustments, Adjustment{
				ProductID: it.ID, Name: it.Name, From: it.Quantity, To: available,
			})
			it.Quantity = available
			kept = append(kept, it)
		default:
			kept = append(kept, it)
		}
	}

	c.items = kept
	return adjustments
}
