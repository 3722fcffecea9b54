package entity

// CartItem is a single pending line in a user's cart. Quantity is always
// positive; the referenced product must exist at the time the line is added.
// Name, Price and Image are a snapshot of the product taken when the line
// was added, so carts and orders render even if the catalog changes later.
type CartItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Quantity  int    `json:"quantity"`
	Image     string `json:"image,omitempty"`
}

// Cart is the mutable per-user collection of pending line items prior to
// checkout. A user owns at most one cart; items keep insertion order and
// each product appears on at most one line.
type Cart struct {
	UserID string     `json:"user_id"`
	Items  []CartItem `json:"items"`
}

// EmptyCart returns the canonical empty cart shape for a user without one.
func EmptyCart(userID string) *Cart {
	return &Cart{UserID: userID, Items: []CartItem{}}
}
