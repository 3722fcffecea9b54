package entity

// Article is an editorial piece published on the store's magazine pages.
type Article struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Image   string `json:"image"`
	Summary string `json:"summary"`
	Date    string `json:"date"` // Display date as authored, not a machine timestamp.
	Author  string `json:"author"`
}
