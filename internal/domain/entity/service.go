package entity

// Service describes one of the store's offered services (home care,
// online pharmacy, and so on) as shown on the services page.
type Service struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Features    []string `json:"features"`
}
