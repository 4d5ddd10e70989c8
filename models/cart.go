package models

// CartItem represents a single line in the user's cart. The product is
// embedded as a copy taken at add time, so later catalog edits never
// change an existing line.
type CartItem struct {
	ProductID       int             `json:"productId"`
	Product         Product         `json:"product"`
	Quantity        int             `json:"quantity"`
	SelectedAddOns  []AddOn         `json:"selectedAddOns"`
	SelectedVariant *ProductVariant `json:"selectedVariant,omitempty"`
	TotalPrice      int             `json:"totalPrice"`
}

// BasePrice is the variant price when a variant is selected, otherwise
// the product's own price.
func (ci *CartItem) BasePrice() int {
	if ci.SelectedVariant != nil {
		return ci.SelectedVariant.Price
	}
	return ci.Product.Price
}

// AddOnTotal sums the prices of the line's selected add-ons.
func (ci *CartItem) AddOnTotal() int {
	total := 0
	for _, a := range ci.SelectedAddOns {
		total += a.Price
	}
	return total
}

// Recompute restores the line-total invariant:
// totalPrice = (base price + add-on total) × quantity.
func (ci *CartItem) Recompute() {
	ci.TotalPrice = (ci.BasePrice() + ci.AddOnTotal()) * ci.Quantity
}
