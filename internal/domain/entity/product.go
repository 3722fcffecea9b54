package entity

// Product is a catalog item available for purchase.
type Product struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Description        string `json:"description"`
	Price              int    `json:"price"` // Unit price in the store currency's smallest unit; never negative.
	Image              string `json:"image"`
	Category           string `json:"category"`
	Stock              int    `json:"stock"` // Units on hand; never negative.
	Featured           bool   `json:"featured"`
	DiscountPercentage int    `json:"discount_percentage,omitempty"` // Zero when the product carries none.
}

// HasDiscount reports whether the product carries its own promotional discount.
func (p *Product) HasDiscount() bool {
	return p.DiscountPercentage > 0
}
