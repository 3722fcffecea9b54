package entity

import "time"

// Review is a customer's rating of a product. Reviews are never mutated
// after creation and a product may accumulate any number of them.
type Review struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ProductID string    `json:"product_id"`
	Rating    int       `json:"rating"` // Always within [1,5].
	Comment   string    `json:"comment"`
	UserName  string    `json:"user_name"` // Display name captured from the author at creation time.
	CreatedAt time.Time `json:"created_at"`
}
